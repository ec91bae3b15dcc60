package config

import "time"

// Config is the root application configuration. It is constructed once at
// startup and passed by reference into every component constructor; business
// logic never reads the environment directly.
type Config struct {
	Env        string           `yaml:"env"        env:"APP_ENV"        env-default:"development"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Uploads    UploadConfig     `yaml:"uploads"`
	Export     ExportConfig     `yaml:"export"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	CORS       CORSConfig       `yaml:"cors"`
	Log        LogConfig        `yaml:"log"`
	Pagination PaginationConfig `yaml:"pagination"`
}

// IsProduction reports whether the app runs in production mode. Error
// responses include internal detail only when this is false.
func (c *Config) IsProduction() bool { return c.Env == "production" }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"4000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token signing and password hashing settings. Access and
// refresh tokens are signed with distinct secrets so leaking one does not
// compromise the other's signing key.
type AuthConfig struct {
	AccessSecret    string        `yaml:"access_secret"     env:"JWT_ACCESS_SECRET"  env-required:"true"`
	RefreshSecret   string        `yaml:"refresh_secret"    env:"JWT_REFRESH_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"JWT_ACCESS_TTL"     env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"JWT_REFRESH_TTL"    env-default:"168h"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"BCRYPT_COST"        env-default:"12"`
}

// UploadConfig holds photo upload settings.
type UploadConfig struct {
	Directory    string `yaml:"directory"      env:"UPLOAD_DIR"        env-default:"uploads"`
	MaxFileSize  int64  `yaml:"max_file_size"  env:"UPLOAD_MAX_SIZE"   env-default:"5242880"`
	MaxFiles     int    `yaml:"max_files"      env:"UPLOAD_MAX_FILES"  env-default:"10"`
	AllowedTypes string `yaml:"allowed_types"  env:"UPLOAD_MIME_TYPES" env-default:"image/jpeg,image/png,image/gif,image/webp"`
}

// ExportConfig holds CSV/XLSX export settings.
type ExportConfig struct {
	MaxRecords int `yaml:"max_records" env:"EXPORT_MAX_RECORDS" env-default:"10000"`
}

// RateLimitConfig holds per-IP request limits (requests per minute).
type RateLimitConfig struct {
	AuthPerMinute   int `yaml:"auth_per_minute"   env:"RATE_LIMIT_AUTH"   env-default:"20"`
	APIPerMinute    int `yaml:"api_per_minute"    env:"RATE_LIMIT_API"    env-default:"100"`
	ExportPerMinute int `yaml:"export_per_minute" env:"RATE_LIMIT_EXPORT" env-default:"5"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000,http://localhost:5173"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// PaginationConfig holds default page sizing.
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"DEFAULT_PAGE_SIZE" env-default:"10"`
}
