package providers

import (
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByKind(t *testing.T) {
	assert.Equal(t, TypeSleep, GetLogTypeByKind(models.KindSleep))
	assert.Equal(t, TypeActivity, GetLogTypeByKind(models.KindActivity))
	assert.Equal(t, TypeApp, GetLogTypeByKind(models.LogKind("steps")))
}

func TestTypeEnum_String(t *testing.T) {
	assert.Equal(t, "token", TypeToken.String())
	assert.Equal(t, "sink", TypeSink.String())
	assert.Equal(t, "app", TypeApp.String())
}

func TestNewLogProvider_WritesLogFile(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		AppName: "FitHeat",
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)

	logger.Infof(TypeApp, "test message %d", 42)
	logger.Debugf(TypeSleep, "filtered out at info level")
	logger.Warnf(TypeToken, "token warning")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "fitheat.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test message 42")
	assert.Contains(t, string(data), `"type":"token"`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{Level: "loud", Mode: 0644, Dir: t.TempDir()},
	}
	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
