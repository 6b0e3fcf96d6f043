package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TT"

// ConfigFileFlag names the flag holding an optional YAML config file.
const ConfigFileFlag = "config"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with a config file, when one is named
// 3. Override with TT_* environment variables
// 4. Override with command line flags that were set explicitly
func (l *Loader) Load(flags *pflag.FlagSet) (*Config, error) {
	setDefaults(l.v, NewConfig())

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
	if err := l.v.BindEnv(KeyAppEnv, EnvPrefix+"_APP_ENV", EnvPrefix+"_ENV"); err != nil {
		return nil, fmt.Errorf("error binding environment variable: %w", err)
	}

	if flags != nil {
		if err := l.bindFlags(flags); err != nil {
			return nil, err
		}
		if err := l.readConfigFile(flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FlagName returns the command line flag that overrides a setting key,
// e.g. "db.query_timeout" becomes "db-query-timeout".
func FlagName(key string) string {
	return strings.NewReplacer(".", "-", "_", "-").Replace(key)
}

func (l *Loader) bindFlags(flags *pflag.FlagSet) error {
	for _, key := range allKeys {
		flag := flags.Lookup(FlagName(key))
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag.Name, err)
		}
	}
	return nil
}

func (l *Loader) readConfigFile(flags *pflag.FlagSet) error {
	flag := flags.Lookup(ConfigFileFlag)
	if flag == nil || flag.Value.String() == "" {
		return nil
	}

	l.v.SetConfigType("yaml")
	l.v.SetConfigFile(flag.Value.String())
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", flag.Value.String(), err)
	}
	return nil
}

var allKeys = []string{
	KeyDBDir, KeyDBFilename, KeyDBQueryTimeout, KeyDBWriteTimeout, KeyDBDirPermissions,
	KeyTitleMinLength, KeyTitleMaxLength, KeyDescriptionMaxLength,
	KeyRecommendLimit, KeyDueSoonDays,
	KeyAppTimeout, KeyAppEnv,
	KeyLogLevel,
	KeyServerAddr, KeyShutdownTimeout,
	KeyOutputFormat,
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault(KeyDBDir, d.Database.Dir)
	v.SetDefault(KeyDBFilename, d.Database.Filename)
	v.SetDefault(KeyDBQueryTimeout, d.Database.QueryTimeout)
	v.SetDefault(KeyDBWriteTimeout, d.Database.WriteTimeout)
	v.SetDefault(KeyDBDirPermissions, d.Database.DirPermissions)
	v.SetDefault(KeyTitleMinLength, d.Validation.TitleMinLength)
	v.SetDefault(KeyTitleMaxLength, d.Validation.TitleMaxLength)
	v.SetDefault(KeyDescriptionMaxLength, d.Validation.DescriptionMaxLength)
	v.SetDefault(KeyRecommendLimit, d.Recommend.Limit)
	v.SetDefault(KeyDueSoonDays, d.Recommend.DueSoonDays)
	v.SetDefault(KeyAppTimeout, d.Application.Timeout)
	v.SetDefault(KeyAppEnv, string(d.Application.Environment))
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyServerAddr, d.Server.Addr)
	v.SetDefault(KeyShutdownTimeout, d.Server.ShutdownTimeout)
	v.SetDefault(KeyOutputFormat, d.Output.Format)
}
