package testutil

import (
	"context"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
	"slices"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Messages returns the formatted messages logged at level.
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, fmt.Sprintf(e.Format, e.Args...))
		}
	}
	return out
}

// MockCredentialStore implements credentials.StoreInterface in memory.
type MockCredentialStore struct {
	mu        sync.Mutex
	Cred      *models.BearerCredential
	LoadErr   error
	SaveErr   error
	SaveCalls []models.BearerCredential
}

func (m *MockCredentialStore) Load(_ context.Context) (*models.BearerCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cred == nil {
		return nil, models.ErrCredentialMissing
	}
	c := *m.Cred
	return &c, nil
}

func (m *MockCredentialStore) Save(_ context.Context, cred *models.BearerCredential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, *cred)
	if m.SaveErr != nil {
		return m.SaveErr
	}
	c := *cred
	m.Cred = &c
	return nil
}

// MockRefresher implements clients.RefresherInterface.
type MockRefresher struct {
	mu       sync.Mutex
	Result   *models.BearerCredential
	Err      error
	NotReady bool
	Received []string
}

func (m *MockRefresher) Ready() bool {
	return !m.NotReady
}

func (m *MockRefresher) Refresh(_ context.Context, refreshToken string) (*models.BearerCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Received = append(m.Received, refreshToken)
	if m.Err != nil {
		return nil, m.Err
	}
	c := *m.Result
	return &c, nil
}

func (m *MockRefresher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Received)
}

// MockFitbitClient implements clients.FitbitClientInterface with canned
// records per range.
type MockFitbitClient struct {
	mu            sync.Mutex
	Sleep         map[string][]models.RawLogRecord
	Activity      map[string][]models.RawLogRecord
	Err           error
	FailOnRange   string
	SleepCalls    []models.DateRange
	ActivityCalls []models.DateRange
}

func (m *MockFitbitClient) GetSleep(_ context.Context, _ *models.BearerCredential, r models.DateRange) ([]models.RawLogRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SleepCalls = append(m.SleepCalls, r)
	if m.Err != nil && (m.FailOnRange == "" || m.FailOnRange == r.String()) {
		return nil, m.Err
	}
	return m.Sleep[r.String()], nil
}

func (m *MockFitbitClient) GetActiveZoneMinutes(_ context.Context, _ *models.BearerCredential, r models.DateRange) ([]models.RawLogRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActivityCalls = append(m.ActivityCalls, r)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Activity[r.String()], nil
}

// MockArchive implements archive interfaces.ArchiveInterface in memory.
type MockArchive struct {
	mu        sync.Mutex
	Data      map[string][]models.RawLogRecord
	SaveErr   error
	SaveCalls int
}

func NewMockArchive() *MockArchive {
	return &MockArchive{Data: make(map[string][]models.RawLogRecord)}
}

func archiveKey(kind models.LogKind, year int) string {
	return fmt.Sprintf("%s-%d", kind, year)
}

func (m *MockArchive) Save(kind models.LogKind, year int, records []models.RawLogRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Data[archiveKey(kind, year)] = records
	return nil
}

func (m *MockArchive) Load(kind models.LogKind, year int) ([]models.RawLogRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records, ok := m.Data[archiveKey(kind, year)]
	if !ok {
		return nil, fmt.Errorf("no archive for %s", archiveKey(kind, year))
	}
	return records, nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor passes bytes through unless a hook is set.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	return slices.Clone(val), nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	return slices.Clone(val), nil
}

func (m *MockCompressor) Close() {}

// MockSeriesSink implements sinks.SeriesSinkInterface.
type MockSeriesSink struct {
	mu     sync.Mutex
	Err    error
	Writes []SeriesWrite
}

type SeriesWrite struct {
	Kind   models.LogKind
	Year   int
	Series []models.DailyScore
}

func (m *MockSeriesSink) WriteSeries(kind models.LogKind, year int, series []models.DailyScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes = append(m.Writes, SeriesWrite{Kind: kind, Year: year, Series: series})
	return m.Err
}

// FixedClock returns a clock function pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// TestConfig is a complete configuration for pipeline tests.
func TestConfig() *structures.Config {
	return &structures.Config{
		AppName: "FitHeat",
		Fitbit: structures.FitbitConfig{
			TokenURL:     "https://api.fitbit.com/oauth2/token",
			ApiBaseURL:   "https://api.fitbit.com",
			AcceptLocale: "ja_JP",
		},
		Credentials: structures.CredentialsConfig{Source: "store"},
		Token:       structures.TokenConfig{ExpirationWindow: 300},
		Planner: structures.PlannerConfig{
			SupportedYears: []int{2023, 2024, 2025},
			MonthsPerRange: 3,
		},
		Score: structures.ScoreConfig{
			EarlyThresholdHour:  7,
			ActiveMinutesTarget: 120,
			WakeWindowMinutes:   180,
			MaxScore:            100,
			Timezone:            "UTC",
		},
		Kinds: []string{"sleep", "activity"},
	}
}

// NoopMetrics returns the disabled metrics provider.
func NoopMetrics() providers.MetricsProviderInterface {
	return providers.NewMetricsProvider(&structures.Config{})
}

// MockFetchService implements services.FetchServiceInterface with canned
// records per kind.
type MockFetchService struct {
	mu       sync.Mutex
	Records  map[models.LogKind][]models.RawLogRecord
	Err      error
	Requests []structures.JobRequest
}

func (m *MockFetchService) FetchLogs(_ context.Context, _ *models.BearerCredential, _ []models.DateRange, kind models.LogKind) ([]models.RawLogRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records[kind], nil
}

func (m *MockFetchService) Load(_ context.Context, req *structures.JobRequest) ([]models.RawLogRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, *req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records[req.Kind], nil
}

// MockRatioReporter implements sinks.RatioReporterInterface.
type MockRatioReporter struct {
	mu      sync.Mutex
	Err     error
	Reports []models.RatioReport
}

func (m *MockRatioReporter) Report(_ models.LogKind, _ int, report models.RatioReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reports = append(m.Reports, report)
	return m.Err
}

// MockTokenService implements services.TokenServiceInterface.
type MockTokenService struct {
	mu    sync.Mutex
	Cred  *models.BearerCredential
	Err   error
	Calls int
}

func (m *MockTokenService) ObtainValidCredential(_ context.Context) (*models.BearerCredential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Cred, nil
}
