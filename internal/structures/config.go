package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	Offline    bool
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type FitbitConfig struct {
	ClientID     string        `yaml:"clientId"`
	ClientSecret string        `yaml:"clientSecret"`
	TokenURL     string        `yaml:"tokenUrl" validate:"required|fullUrl"`
	ApiBaseURL   string        `yaml:"apiBaseUrl" validate:"required|fullUrl"`
	AcceptLocale string        `yaml:"acceptLocale"`
	Timeout      time.Duration `yaml:"timeout"`
}

// CredentialsConfig selects where the bearer credential comes from. The
// static source takes the token fields from configuration or environment.
type CredentialsConfig struct {
	Source       string `yaml:"source" validate:"required|in:store,static"`
	FilePath     string `yaml:"filePath" validate:"unixPath"`
	AccessToken  string `yaml:"accessToken"`
	RefreshToken string `yaml:"refreshToken"`
	ExpiresAt    string `yaml:"expiresAt"`
	UserID       string `yaml:"userId"`
	Scope        string `yaml:"scope"`
	TokenType    string `yaml:"tokenType"`
}

type TokenConfig struct {
	// ExpirationWindow is the refresh lead time in seconds.
	ExpirationWindow int `yaml:"expirationWindow" validate:"min:0"`
}

type PlannerConfig struct {
	SupportedYears []int `yaml:"supportedYears" validate:"required"`
	MonthsPerRange int   `yaml:"monthsPerRange" validate:"required|min:1|max:12"`
}

type ScoreConfig struct {
	EarlyThresholdHour  int     `yaml:"earlyThresholdHour" validate:"min:0|max:23"`
	ActiveMinutesTarget float64 `yaml:"activeMinutesTarget" validate:"required|gt:0"`
	WakeWindowMinutes   float64 `yaml:"wakeWindowMinutes" validate:"required|gt:0"`
	MaxScore            float64 `yaml:"maxScore" validate:"required|gt:0"`
	Timezone            string  `yaml:"timezone" validate:"required"`
}

type OutputConfig struct {
	Dir string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir" validate:"unixPath"`
	Level   string `yaml:"level"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AppName     string
	Debug       bool
	Offline     bool
	Path        string
	Logger      LoggerConfig      `yaml:"logger"`
	Fitbit      FitbitConfig      `yaml:"fitbit"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Token       TokenConfig       `yaml:"token"`
	Planner     PlannerConfig     `yaml:"planner"`
	Score       ScoreConfig       `yaml:"score"`
	Kinds       []string          `yaml:"kinds" validate:"required"`
	Output      OutputConfig      `yaml:"output"`
	Cache       CacheConfig       `yaml:"cache"`
	Archive     ArchiveConfig     `yaml:"archive"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}
