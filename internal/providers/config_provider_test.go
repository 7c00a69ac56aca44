package providers

import (
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
logger:
  level: info
  mode: 0644
  dir: %LOGDIR%
credentials:
  source: store
  filePath: /tmp/fitheat/tokens.json
planner:
  supportedYears: [2023, 2024, 2025]
output:
  dir: /tmp/fitheat/out
`

func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	body := baseConfig + extra
	body = strings.ReplaceAll(body, "%LOGDIR%", dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

const requiredSettings = `
token:
  expirationWindow: 300
score:
  earlyThresholdHour: 7
  activeMinutesTarget: 120
  timezone: UTC
`

func TestNewConfigProvider_LoadsFileAndDefaults(t *testing.T) {
	path := writeConfig(t, requiredSettings)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "FitHeat", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, 300, conf.Token.ExpirationWindow)
	assert.Equal(t, 7, conf.Score.EarlyThresholdHour)
	assert.Equal(t, 120.0, conf.Score.ActiveMinutesTarget)
	assert.Equal(t, 180.0, conf.Score.WakeWindowMinutes)
	assert.Equal(t, 100.0, conf.Score.MaxScore)
	assert.Equal(t, 3, conf.Planner.MonthsPerRange)
	assert.Equal(t, []int{2023, 2024, 2025}, conf.Planner.SupportedYears)
	assert.Equal(t, "https://api.fitbit.com", conf.Fitbit.ApiBaseURL)
	assert.ElementsMatch(t, []string{"sleep", "activity"}, conf.Kinds)
}

func TestNewConfigProvider_MissingThresholdHour(t *testing.T) {
	path := writeConfig(t, `
token:
  expirationWindow: 300
score:
  activeMinutesTarget: 120
`)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConfigMissing)
}

func TestNewConfigProvider_ThresholdFromEnv(t *testing.T) {
	t.Setenv("EARLY_THRESHOLD_HOUR", "6")
	path := writeConfig(t, `
token:
  expirationWindow: 300
score:
  activeMinutesTarget: 120
`)
	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, 6, conf.Score.EarlyThresholdHour)
}

func TestNewConfigProvider_MissingExpirationWindow(t *testing.T) {
	path := writeConfig(t, `
score:
  earlyThresholdHour: 7
  activeMinutesTarget: 120
`)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.ErrorIs(t, err, models.ErrConfigMissing)
}

func TestNewConfigProvider_OfflineNeedsArchive(t *testing.T) {
	path := writeConfig(t, requiredSettings)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, Offline: true})
	assert.ErrorIs(t, err, models.ErrConfigMissing)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_ExplicitZeroTargetRejected(t *testing.T) {
	path := writeConfig(t, `
token:
  expirationWindow: 300
score:
  earlyThresholdHour: 7
  activeMinutesTarget: 0
  timezone: UTC
`)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.ErrorIs(t, err, models.ErrConfigMissing)
}
