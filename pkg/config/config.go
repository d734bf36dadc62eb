package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	LoginLimit   LoginRateLimitConfig
	FeatureFlags FeatureFlagsConfig
	Customizer   CustomizerConfig
	Cart         CartConfig
	AI           AIConfig
	Sheets       SheetsConfig
	GCP          GCPConfig
	GCS          GCSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GOLFBALL_APP_ENV" required:"true"`
	Port         string `envconfig:"GOLFBALL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GOLFBALL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GOLFBALL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"GOLFBALL_DB_DSN"`

	LegacyHost     string `envconfig:"GOLFBALL_DB_HOST"`
	LegacyPort     int    `envconfig:"GOLFBALL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GOLFBALL_DB_USER"`
	LegacyPassword string `envconfig:"GOLFBALL_DB_PASSWORD"`
	LegacyName     string `envconfig:"GOLFBALL_DB_NAME"`
	LegacySSLMode  string `envconfig:"GOLFBALL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GOLFBALL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GOLFBALL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GOLFBALL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GOLFBALL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GOLFBALL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GOLFBALL_REDIS_ADDR"`
	Password     string        `envconfig:"GOLFBALL_REDIS_PASSWORD"`
	DB           int           `envconfig:"GOLFBALL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GOLFBALL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GOLFBALL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GOLFBALL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GOLFBALL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GOLFBALL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"GOLFBALL_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"GOLFBALL_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"GOLFBALL_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"GOLFBALL_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GOLFBALL_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GOLFBALL_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GOLFBALL_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GOLFBALL_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GOLFBALL_ARGON_KEY_LEN" default:"32"`
}

type LoginRateLimitConfig struct {
	Window     time.Duration `envconfig:"GOLFBALL_LOGIN_RATE_LIMIT_WINDOW" default:"1m"`
	EmailLimit int           `envconfig:"GOLFBALL_LOGIN_RATE_LIMIT_EMAIL_LIMIT" default:"5"`
	IPLimit    int           `envconfig:"GOLFBALL_LOGIN_RATE_LIMIT_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"GOLFBALL_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"GOLFBALL_AUTO_MIGRATE" default:"false"`
}

// CustomizerConfig tunes the in-session ball customizer and its renderer.
type CustomizerConfig struct {
	SessionTTL    time.Duration `envconfig:"GOLFBALL_CUSTOMIZER_SESSION_TTL" default:"24h"`
	BaseImagePath string        `envconfig:"GOLFBALL_CUSTOMIZER_BASE_IMAGE" default:"assets/ball-base.png"`
	FontPath      string        `envconfig:"GOLFBALL_CUSTOMIZER_FONT_PATH"`
	MaxLogoBytes  int64         `envconfig:"GOLFBALL_CUSTOMIZER_MAX_LOGO_BYTES" default:"2097152"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"GOLFBALL_CART_TTL" default:"720h"`
}

// AIConfig points at the generative preview collaborator.
type AIConfig struct {
	BaseURL string        `envconfig:"GOLFBALL_AI_BASE_URL"`
	APIKey  string        `envconfig:"GOLFBALL_AI_API_KEY"`
	Timeout time.Duration `envconfig:"GOLFBALL_AI_TIMEOUT" default:"60s"`
}

// SheetsConfig points at the spreadsheet order/lead log.
type SheetsConfig struct {
	CredentialsPath string `envconfig:"GOLFBALL_SHEETS_CREDENTIALS"`
	SpreadsheetID   string `envconfig:"GOLFBALL_SHEETS_SPREADSHEET_ID"`
	OrdersSheet     string `envconfig:"GOLFBALL_SHEETS_ORDERS_SHEET" default:"Orders"`
	LeadsSheet      string `envconfig:"GOLFBALL_SHEETS_LEADS_SHEET" default:"Leads"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"GOLFBALL_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"GOLFBALL_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"GOLFBALL_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName        string        `envconfig:"GOLFBALL_GCS_BUCKET_NAME"`
	DownloadURLExpiry time.Duration `envconfig:"GOLFBALL_GCS_DOWNLOAD_URL_EXPIRY" default:"15m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
