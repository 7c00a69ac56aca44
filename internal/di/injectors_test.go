package di

import (
	"bytes"
	"context"
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"fitheat/internal/testutil"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runDirs struct {
	root        string
	config      string
	credentials string
	output      string
	archive     string
	metrics     string
}

func writeRunConfig(t *testing.T, apiURL string) runDirs {
	t.Helper()
	root := t.TempDir()
	d := runDirs{
		root:        root,
		config:      filepath.Join(root, "config.yaml"),
		credentials: filepath.Join(root, "secrets", "fitbit.json"),
		output:      filepath.Join(root, "out"),
		archive:     filepath.Join(root, "archive"),
		metrics:     filepath.Join(root, "fitheat.prom"),
	}

	yaml := fmt.Sprintf(`logger:
  level: debug
  dir: %[1]s
fitbit:
  clientId: client
  clientSecret: secret
  tokenUrl: %[2]s/oauth2/token
  apiBaseUrl: %[2]s
  acceptLocale: ja_JP
  timeout: 5s
credentials:
  source: store
  filePath: %[3]s
token:
  expirationWindow: 300
planner:
  supportedYears: [2023, 2024]
score:
  earlyThresholdHour: 7
  activeMinutesTarget: 120
  timezone: UTC
output:
  dir: %[4]s
cache:
  enabled: true
  size: 64
archive:
  enabled: true
  dir: %[5]s
metrics:
  enabled: true
  textfile: %[6]s
`, root, apiURL, d.credentials, d.output, d.archive, d.metrics)
	require.NoError(t, os.WriteFile(d.config, []byte(yaml), 0600))

	require.NoError(t, os.MkdirAll(filepath.Dir(d.credentials), 0700))
	cred, err := json.Marshal(models.BearerCredential{
		AccessToken:  "stale-access",
		RefreshToken: "stale-refresh",
		ExpiresAt:    time.Now().Add(time.Minute),
		UserID:       "FAKE01",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(d.credentials, cred, 0600))
	return d
}

func TestInitApp_SleepRunEndToEnd(t *testing.T) {
	fake := testutil.NewFakeFitbit()
	defer fake.Close()
	dirs := writeRunConfig(t, fake.URL)

	var out bytes.Buffer
	app, cleanup, err := InitApp(&structures.CliFlags{ConfigPath: dirs.config}, &out)
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, app.Run(context.Background(), "sleep", 2024))

	assert.Equal(t, "183 / 366\n", out.String())
	assert.Equal(t, int32(1), fake.TokenRequests.Load())
	// heatmap and ratio share one load of the four quarters
	assert.Equal(t, int32(4), fake.SleepRequests.Load())
	assert.Equal(t, "Bearer fresh-access", fake.LastAuthHeader.Load())

	stored, err := os.ReadFile(dirs.credentials)
	require.NoError(t, err)
	var cred models.BearerCredential
	require.NoError(t, json.Unmarshal(stored, &cred))
	assert.Equal(t, "fresh-access", cred.AccessToken)
	assert.Equal(t, "fresh-refresh", cred.RefreshToken)

	for _, name := range []string{"sleep-2024.svg", "sleep-2024.json"} {
		_, err := os.Stat(filepath.Join(dirs.output, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dirs.archive, "sleep-2024.json.zst"))
	assert.NoError(t, err)

	prom, err := os.ReadFile(dirs.metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `fitheat_days_scored{kind="sleep"} 366`)
	assert.Contains(t, string(prom), `fitheat_token_refreshes_total{result="ok"} 1`)
	assert.Contains(t, string(prom), "fitheat_cache_hits_total 0")
	assert.Contains(t, string(prom), "fitheat_cache_misses_total 4")
}

func TestInitApp_RepeatedRunIsServedFromResponseCache(t *testing.T) {
	fake := testutil.NewFakeFitbit()
	defer fake.Close()
	dirs := writeRunConfig(t, fake.URL)

	var out bytes.Buffer
	app, cleanup, err := InitApp(&structures.CliFlags{ConfigPath: dirs.config}, &out)
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, app.Run(context.Background(), "sleep", 2024))
	require.NoError(t, app.Run(context.Background(), "sleep", 2024))

	assert.Equal(t, "183 / 366\n183 / 366\n", out.String())
	assert.Equal(t, int32(1), fake.TokenRequests.Load())
	assert.Equal(t, int32(4), fake.SleepRequests.Load())

	prom, err := os.ReadFile(dirs.metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "fitheat_cache_hits_total 4")
	assert.Contains(t, string(prom), "fitheat_cache_misses_total 4")
}

func TestInitApp_ActivityThenOfflineReplay(t *testing.T) {
	fake := testutil.NewFakeFitbit()
	dirs := writeRunConfig(t, fake.URL)

	app, cleanup, err := InitApp(&structures.CliFlags{ConfigPath: dirs.config}, &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), "activity", 2023))
	cleanup()
	fake.Close()

	assert.Equal(t, int32(1), fake.AzmRequests.Load())
	online, err := os.ReadFile(filepath.Join(dirs.output, "activity-2023.json"))
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dirs.output, "activity-2023.json")))

	offline, cleanupOffline, err := InitApp(&structures.CliFlags{ConfigPath: dirs.config, Offline: true}, &bytes.Buffer{})
	require.NoError(t, err)
	defer cleanupOffline()
	require.NoError(t, offline.Run(context.Background(), "activity", 2023))

	replayed, err := os.ReadFile(filepath.Join(dirs.output, "activity-2023.json"))
	require.NoError(t, err)
	assert.JSONEq(t, string(online), string(replayed))
}

func TestInitApp_UpstreamFailureWritesNothing(t *testing.T) {
	fake := testutil.NewFakeFitbit()
	defer fake.Close()
	fake.SleepStatus = 503
	dirs := writeRunConfig(t, fake.URL)

	var out bytes.Buffer
	app, cleanup, err := InitApp(&structures.CliFlags{ConfigPath: dirs.config}, &out)
	require.NoError(t, err)
	defer cleanup()

	err = app.Run(context.Background(), "sleep", 2024)
	assert.ErrorIs(t, err, models.ErrTransport)
	assert.Empty(t, out.String())
	_, statErr := os.Stat(filepath.Join(dirs.output, "sleep-2024.svg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInitApp_MissingRequiredSetting(t *testing.T) {
	fake := testutil.NewFakeFitbit()
	defer fake.Close()
	dirs := writeRunConfig(t, fake.URL)

	data, err := os.ReadFile(dirs.config)
	require.NoError(t, err)
	data = bytes.Replace(data, []byte("  earlyThresholdHour: 7\n"), nil, 1)
	require.NoError(t, os.WriteFile(dirs.config, data, 0600))

	_, _, err = InitApp(&structures.CliFlags{ConfigPath: dirs.config}, &bytes.Buffer{})
	assert.ErrorIs(t, err, models.ErrConfigMissing)
}
