package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultGRPCAddress is used when GRPC_IPPORT is unset
const DefaultGRPCAddress = "0.0.0.0:50051"

// GRPCServerConfig represents gRPC server configuration
type GRPCServerConfig struct {
	Address          string          `mapstructure:"address" yaml:"address" json:"address" validate:"required,listen_addr"`
	MaxWorkers       int             `mapstructure:"max_workers" yaml:"max_workers" json:"max_workers" validate:"gt=0"`
	MaxRecvMsgSize   int             `mapstructure:"max_recv_msg_size" yaml:"max_recv_msg_size" json:"max_recv_msg_size" validate:"gte=0"`
	MaxSendMsgSize   int             `mapstructure:"max_send_msg_size" yaml:"max_send_msg_size" json:"max_send_msg_size" validate:"gte=0"`
	EnableReflection bool            `mapstructure:"enable_reflection" yaml:"enable_reflection" json:"enable_reflection"`
	ShutdownTimeout  time.Duration   `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
	KeepAlive        KeepAliveConfig `mapstructure:"keep_alive" yaml:"keep_alive" json:"keep_alive"`
}

// KeepAliveConfig represents gRPC keepalive configuration
type KeepAliveConfig struct {
	Time                time.Duration `mapstructure:"time" yaml:"time" json:"time"`
	Timeout             time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
	MinTime             time.Duration `mapstructure:"min_time" yaml:"min_time" json:"min_time"`
	PermitWithoutStream bool          `mapstructure:"permit_without_stream" yaml:"permit_without_stream" json:"permit_without_stream"`
	MaxConnectionIdle   time.Duration `mapstructure:"max_connection_idle" yaml:"max_connection_idle" json:"max_connection_idle"`
}

// HTTPServerConfig configures the ops endpoint serving /health and /metrics.
// An empty address disables it.
type HTTPServerConfig struct {
	Address         string        `mapstructure:"address" yaml:"address" json:"address" validate:"omitempty,listen_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" yaml:"driver" json:"driver" validate:"oneof=sqlite postgres"`
	DSN             string        `mapstructure:"dsn" yaml:"dsn" json:"dsn" validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" yaml:"max_open_conns" json:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" yaml:"max_idle_conns" json:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime" json:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate" yaml:"auto_migrate" json:"auto_migrate"`
	LogSQL          bool          `mapstructure:"log_sql" yaml:"log_sql" json:"log_sql"`
}

// Config represents the application configuration
type Config struct {
	GRPC     GRPCServerConfig `mapstructure:"grpc" yaml:"grpc" json:"grpc"`
	HTTP     HTTPServerConfig `mapstructure:"http" yaml:"http" json:"http"`
	Database DatabaseConfig   `mapstructure:"database" yaml:"database" json:"database"`
	Log      struct {
		Level string `mapstructure:"level" yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	} `mapstructure:"log" yaml:"log" json:"log"`
	Tracing struct {
		Enabled     bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
		ServiceName string `mapstructure:"service_name" yaml:"service_name" json:"service_name"`
	} `mapstructure:"tracing" yaml:"tracing" json:"tracing"`
}

// envBindings maps configuration keys to the environment variables that override them
var envBindings = map[string]string{
	"grpc.address":               "GRPC_IPPORT",
	"grpc.max_workers":           "GRPC_MAX_WORKERS",
	"grpc.enable_reflection":     "GRPC_ENABLE_REFLECTION",
	"grpc.shutdown_timeout":      "GRPC_SHUTDOWN_TIMEOUT",
	"http.address":               "METRICS_ADDR",
	"database.driver":            "DATABASE_DRIVER",
	"database.dsn":               "DATABASE_DSN",
	"database.max_open_conns":    "DATABASE_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DATABASE_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DATABASE_CONN_MAX_LIFETIME",
	"database.auto_migrate":      "DATABASE_AUTO_MIGRATE",
	"database.log_sql":           "DATABASE_LOG_SQL",
	"log.level":                  "LOG_LEVEL",
	"tracing.enabled":            "TRACING_ENABLED",
}

func setDefaults(v *viper.Viper) {
	// gRPC defaults
	v.SetDefault("grpc.address", DefaultGRPCAddress)
	v.SetDefault("grpc.max_workers", 10)
	v.SetDefault("grpc.max_recv_msg_size", 4<<20) // 4MB
	v.SetDefault("grpc.max_send_msg_size", 4<<20) // 4MB
	v.SetDefault("grpc.enable_reflection", true)
	v.SetDefault("grpc.shutdown_timeout", 30*time.Second)
	v.SetDefault("grpc.keep_alive.time", 2*time.Hour)
	v.SetDefault("grpc.keep_alive.timeout", 20*time.Second)
	v.SetDefault("grpc.keep_alive.min_time", 5*time.Minute)
	v.SetDefault("grpc.keep_alive.permit_without_stream", false)
	v.SetDefault("grpc.keep_alive.max_connection_idle", 2*time.Hour)

	v.SetDefault("http.address", "")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "templates.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_sql", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "templates")
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence. When configFile
// is empty the usual locations are searched and a missing file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/templates")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
