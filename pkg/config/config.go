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
	Valuation    ValuationConfig
	Intake       IntakeConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"RECELL_APP_ENV" required:"true"`
	Port         string `envconfig:"RECELL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RECELL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RECELL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RECELL_DB_DSN"`
	Driver string `envconfig:"RECELL_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"RECELL_DB_HOST"`
	Port     int    `envconfig:"RECELL_DB_PORT" default:"5432"`
	User     string `envconfig:"RECELL_DB_USER"`
	Password string `envconfig:"RECELL_DB_PASSWORD"`
	Name     string `envconfig:"RECELL_DB_NAME"`
	SSLMode  string `envconfig:"RECELL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RECELL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RECELL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RECELL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RECELL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"RECELL_REDIS_URL"`
	Address      string        `envconfig:"RECELL_REDIS_ADDR"`
	Password     string        `envconfig:"RECELL_REDIS_PASSWORD"`
	DB           int           `envconfig:"RECELL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RECELL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RECELL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RECELL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RECELL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RECELL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"RECELL_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"RECELL_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"RECELL_JWT_EXPIRATION_MINUTES" default:"60"`
}

// AccessTokenTTL returns the access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RECELL_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RECELL_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RECELL_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RECELL_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RECELL_ARGON_KEY_LEN" default:"32"`
}

// ValuationConfig carries the global default deduction parameters applied when
// a variant's pricing record leaves an override unset. Amounts are whole
// currency units; percentages are whole percents.
type ValuationConfig struct {
	DefaultChargerDeduction int64 `envconfig:"RECELL_DEFAULT_CHARGER_DEDUCTION" default:"200"`
	DefaultBoxDeduction     int64 `envconfig:"RECELL_DEFAULT_BOX_DEDUCTION" default:"100"`
	DefaultBillDeduction    int64 `envconfig:"RECELL_DEFAULT_BILL_DEDUCTION" default:"150"`

	DefaultGoodPct         int64 `envconfig:"RECELL_DEFAULT_GOOD_PCT" default:"0"`
	DefaultAveragePct      int64 `envconfig:"RECELL_DEFAULT_AVERAGE_PCT" default:"10"`
	DefaultBelowAveragePct int64 `envconfig:"RECELL_DEFAULT_BELOW_AVERAGE_PCT" default:"20"`
}

type IntakeConfig struct {
	IdempotencyTTL time.Duration `envconfig:"RECELL_INTAKE_IDEMPOTENCY_TTL" default:"24h"`
	SubmitWindow   time.Duration `envconfig:"RECELL_INTAKE_SUBMIT_WINDOW" default:"1m"`
	SubmitIPLimit  int64         `envconfig:"RECELL_INTAKE_SUBMIT_IP_LIMIT" default:"10"`
	ResolveTimeout time.Duration `envconfig:"RECELL_INTAKE_RESOLVE_TIMEOUT" default:"3s"`
	PersistTimeout time.Duration `envconfig:"RECELL_INTAKE_PERSIST_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"RECELL_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"RECELL_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
