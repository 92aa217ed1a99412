package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
	Auth     AuthConfig     `yaml:"auth"     validate:"required"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Notifier NotifierConfig `yaml:"notifier" validate:"required"`
	CORS     CORSConfig     `yaml:"cors"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	// URL, when set, wins over the discrete host/port fields.
	URL          string        `yaml:"url"            env:"DATABASE_URL"`
	Host         string        `yaml:"host"           env:"DB_HOST"           env-default:"localhost" validate:"required"`
	Port         int           `yaml:"port"           env:"DB_PORT"           env-default:"5432"      validate:"required,min=1,max=65535"`
	User         string        `yaml:"user"           env:"DB_USER"           env-default:"postgres"  validate:"required"`
	Password     string        `yaml:"password"       env:"DB_PASSWORD"       env-default:"postgres"  validate:"required"`
	Database     string        `yaml:"database"       env:"DB_NAME"           env-default:"events"    validate:"required"`
	SSLMode      string        `yaml:"sslmode"        env:"DB_SSLMODE"        env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"        validate:"min=1"`
	MaxIdleConns int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"         validate:"min=1"`
	ConnLifetime time.Duration `yaml:"conn_lifetime"  env:"DB_CONN_LIFETIME"  env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	Secret     string        `yaml:"secret"      env:"AUTH_SECRET"      env-default:"change-me" validate:"required"`
	AccessTTL  time.Duration `yaml:"access_ttl"  env:"AUTH_ACCESS_TTL"  env-default:"15m"       validate:"gt=0"`
	RefreshTTL time.Duration `yaml:"refresh_ttl" env:"AUTH_REFRESH_TTL" env-default:"168h"      validate:"gt=0"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"     env:"SMTP_HOST"     env-default:""`
	Port     int    `yaml:"port"     env:"SMTP_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME" env-default:""`
	Password string `yaml:"password" env:"SMTP_PASSWORD" env-default:""`
	From     string `yaml:"from"     env:"EMAIL_FROM"    env-default:"no-reply@events.local"`
}

// Enabled reports whether outbound email is configured at all.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

type NotifierConfig struct {
	QueueSize   int           `yaml:"queue_size"   env:"NOTIFIER_QUEUE_SIZE"   env-default:"256" validate:"min=1"`
	SendTimeout time.Duration `yaml:"send_timeout" env:"NOTIFIER_SEND_TIMEOUT" env-default:"15s" validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"*"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
