package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/openkraft/kraftreview/internal/adapters/outbound/config"
	"github.com/openkraft/kraftreview/internal/domain"
)

const envPrefix = "KRAFTREVIEW"

// Config keys, matching the yaml paths in .kraftreview.yaml.
const (
	keyServerAddr       = "server.addr"
	keyServerStaticDir  = "server.static_dir"
	keyServerOrigins    = "server.allowed_origins"
	keyServerReadHeader = "server.read_header_timeout"
	keyServerShutdown   = "server.shutdown_timeout"
	keyLogLevel         = "log.level"
	keyLogFormat        = "log.format"
	keyLogFile          = "log.file"
	keyLogMaxSizeMB     = "log.max_size_mb"
	keyLogMaxBackups    = "log.max_backups"
	keyLogMaxAgeDays    = "log.max_age_days"
	keyLogCompress      = "log.compress"
	keyMetricsEnabled   = "metrics.enabled"
	keyMetricsPath      = "metrics.path"
)

// flagKeys maps serve flags to the config keys they override.
var flagKeys = map[string]string{
	"addr":       keyServerAddr,
	"static-dir": keyServerStaticDir,
	"log-level":  keyLogLevel,
	"log-format": keyLogFormat,
	"log-file":   keyLogFile,
}

// resolveConfig loads the config file, then layers KRAFTREVIEW_* environment
// variables and explicitly set flags on top. The result is validated.
func resolveConfig(path string, flags *pflag.FlagSet) (domain.Config, error) {
	fileCfg, err := config.New().Load(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v, fileCfg)

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return domain.Config{}, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	cfg := domain.Config{
		Server: domain.ServerConfig{
			Addr:              v.GetString(keyServerAddr),
			StaticDir:         v.GetString(keyServerStaticDir),
			AllowedOrigins:    v.GetStringSlice(keyServerOrigins),
			ReadHeaderTimeout: v.GetDuration(keyServerReadHeader),
			ShutdownTimeout:   v.GetDuration(keyServerShutdown),
		},
		Log: domain.LogConfig{
			Level:      v.GetString(keyLogLevel),
			Format:     v.GetString(keyLogFormat),
			File:       v.GetString(keyLogFile),
			MaxSizeMB:  v.GetInt(keyLogMaxSizeMB),
			MaxBackups: v.GetInt(keyLogMaxBackups),
			MaxAgeDays: v.GetInt(keyLogMaxAgeDays),
			Compress:   v.GetBool(keyLogCompress),
		},
		Metrics: domain.MetricsConfig{
			Enabled: v.GetBool(keyMetricsEnabled),
			Path:    v.GetString(keyMetricsPath),
		},
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg domain.Config) {
	v.SetDefault(keyServerAddr, cfg.Server.Addr)
	v.SetDefault(keyServerStaticDir, cfg.Server.StaticDir)
	v.SetDefault(keyServerOrigins, cfg.Server.AllowedOrigins)
	v.SetDefault(keyServerReadHeader, cfg.Server.ReadHeaderTimeout)
	v.SetDefault(keyServerShutdown, cfg.Server.ShutdownTimeout)
	v.SetDefault(keyLogLevel, cfg.Log.Level)
	v.SetDefault(keyLogFormat, cfg.Log.Format)
	v.SetDefault(keyLogFile, cfg.Log.File)
	v.SetDefault(keyLogMaxSizeMB, cfg.Log.MaxSizeMB)
	v.SetDefault(keyLogMaxBackups, cfg.Log.MaxBackups)
	v.SetDefault(keyLogMaxAgeDays, cfg.Log.MaxAgeDays)
	v.SetDefault(keyLogCompress, cfg.Log.Compress)
	v.SetDefault(keyMetricsEnabled, cfg.Metrics.Enabled)
	v.SetDefault(keyMetricsPath, cfg.Metrics.Path)
}
