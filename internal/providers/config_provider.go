package providers

import (
	"fitheat/internal/engine"
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
)

// requiredKeys must be present in the file or the environment; zero is a
// legitimate value for each of them so the validator cannot tell.
var requiredKeys = []string{
	"score.earlyThresholdHour",
	"score.activeMinutesTarget",
	"token.expirationWindow",
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	setDefaults(v)

	v.BindEnv("logger.level", "FITHEAT_LOG_LEVEL")
	v.BindEnv("fitbit.clientId", "FITHEAT_CLIENT_ID")
	v.BindEnv("fitbit.clientSecret", "FITHEAT_CLIENT_SECRET")
	v.BindEnv("credentials.source", "FITHEAT_CREDENTIAL_SOURCE")
	v.BindEnv("credentials.accessToken", "FITHEAT_ACCESS_TOKEN")
	v.BindEnv("credentials.refreshToken", "FITHEAT_REFRESH_TOKEN")
	v.BindEnv("credentials.expiresAt", "FITHEAT_EXPIRES_AT")
	v.BindEnv("credentials.userId", "FITHEAT_USER_ID")
	v.BindEnv("score.earlyThresholdHour", "EARLY_THRESHOLD_HOUR")
	v.BindEnv("score.activeMinutesTarget", "FITHEAT_ACTIVE_MINUTES_TARGET")
	v.BindEnv("token.expirationWindow", "FITHEAT_EXPIRATION_WINDOW")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: %s", models.ErrConfigMissing, key)
		}
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrConfigMissing, err)
	}

	conf.AppName = "FitHeat"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode
	conf.Offline = flags.Offline

	if conf.Offline && !conf.Archive.Enabled {
		return nil, fmt.Errorf("%w: offline mode needs archive.enabled", models.ErrConfigMissing)
	}

	return &conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("fitbit.tokenUrl", "https://api.fitbit.com/oauth2/token")
	v.SetDefault("fitbit.apiBaseUrl", "https://api.fitbit.com")
	v.SetDefault("credentials.source", "store")
	v.SetDefault("planner.monthsPerRange", 3)
	v.SetDefault("score.wakeWindowMinutes", engine.DefaultWakeWindow.Minutes())
	v.SetDefault("score.maxScore", engine.DefaultMaxScore)
	v.SetDefault("score.timezone", "Local")
	v.SetDefault("kinds", []string{"sleep", "activity"})
	v.SetDefault("output.dir", ".")
	v.SetDefault("cache.ttl", "10m")
}
