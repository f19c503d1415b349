package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAppID              = "ram-bank"
	defaultTimezone           = "Local"
	defaultUserTokenTTL       = 30 * 24 * time.Hour
	defaultAdminTokenTTL      = 7 * 24 * time.Hour
	defaultMaxOpenConns       = 5
	defaultAcquireTimeout     = 30 * time.Second
	defaultIdleTimeout        = 10 * time.Second
	defaultSQLitePath         = "./database.sqlite"
	defaultMongoDatabase      = "counterhub"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Database Database `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	Admin AdminConfig `json:"admin" yaml:"admin"`

	Counter CounterConfig `json:"counter" yaml:"counter"`
}

type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	CORS               struct {
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"cors" yaml:"cors"`
	RateLimit struct {
		RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
		Burst             int     `json:"burst" yaml:"burst"`
	} `json:"rateLimit" yaml:"rateLimit"`
	Timeouts struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

// Database selects exactly one storage backend and carries the parameters for every backend.
// Only the section matching Type is read.
type Database struct {
	Type     string        `json:"type" yaml:"type"`
	Schema   string        `json:"schema" yaml:"schema"`
	Pool     PoolConfig    `json:"pool" yaml:"pool"`
	MongoDB  MongoDBConfig `json:"mongodb" yaml:"mongodb"`
	MySQL    SQLServer     `json:"mysql" yaml:"mysql"`
	Postgres SQLServer     `json:"postgres" yaml:"postgres"`
	SQLite   SQLiteConfig  `json:"sqlite" yaml:"sqlite"`
}

// PoolConfig bounds the connection pool of whichever backend is selected.
type PoolConfig struct {
	MaxOpenConns   int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MinIdleConns   int           `json:"minIdleConns" yaml:"minIdleConns"`
	AcquireTimeout time.Duration `json:"acquireTimeout" yaml:"acquireTimeout"`
	IdleTimeout    time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	MaxLifetime    time.Duration `json:"maxLifetime" yaml:"maxLifetime"`
}

type MongoDBConfig struct {
	URI      string `json:"uri" yaml:"uri"`
	Database string `json:"database" yaml:"database"`
	// Transactions requires a replica set or sharded cluster.
	Transactions bool `json:"transactions" yaml:"transactions"`
}

// SQLServer holds connection parameters shared by the MySQL and PostgreSQL dialects.
type SQLServer struct {
	DSN      string `json:"dsn" yaml:"dsn"`
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`
}

type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

type Log struct {
	Pretty bool    `json:"pretty" yaml:"pretty"`
	Level  string  `json:"level" yaml:"level"`
	File   LogFile `json:"file" yaml:"file"`
}

// LogFile enables a rotating file sink next to stdout when Path is set.
type LogFile struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

type AuthConfig struct {
	UserTokenTTL  time.Duration `json:"userTokenTTL" yaml:"userTokenTTL"`
	AdminTokenTTL time.Duration `json:"adminTokenTTL" yaml:"adminTokenTTL"`
}

// AdminConfig holds the single administrator account. PasswordHash (bcrypt) wins over Password.
type AdminConfig struct {
	Username     string `json:"username" yaml:"username"`
	Password     string `json:"password" yaml:"password"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
}

type CounterConfig struct {
	DefaultAppID string `json:"defaultAppId" yaml:"defaultAppId"`
	// Timezone decides where a calendar day starts and ends for daily summaries.
	Timezone string `json:"timezone" yaml:"timezone"`
}

// Location resolves the configured timezone.
func (c CounterConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid counter timezone %q", c.Timezone)
	}

	return loc, nil
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DATABASE_POOL_MAXOPENCONNS -> database.pool.maxOpenConns
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every zero value that has a sensible default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Counter.DefaultAppID == "" {
		c.Counter.DefaultAppID = defaultAppID
	}
	if c.Counter.Timezone == "" {
		c.Counter.Timezone = defaultTimezone
	}
	if c.Auth.UserTokenTTL == 0 {
		c.Auth.UserTokenTTL = defaultUserTokenTTL
	}
	if c.Auth.AdminTokenTTL == 0 {
		c.Auth.AdminTokenTTL = defaultAdminTokenTTL
	}

	db := &c.Database
	db.Type = strings.ToLower(strings.TrimSpace(db.Type))
	if db.Type == "" {
		db.Type = "mongodb"
	}
	if db.Pool.MaxOpenConns == 0 {
		db.Pool.MaxOpenConns = defaultMaxOpenConns
		if db.Type == "sqlite" {
			// SQLite allows a single writer; extra connections only queue on the file lock.
			db.Pool.MaxOpenConns = 1
		}
	}
	if db.Pool.AcquireTimeout == 0 {
		db.Pool.AcquireTimeout = defaultAcquireTimeout
	}
	if db.Pool.IdleTimeout == 0 {
		db.Pool.IdleTimeout = defaultIdleTimeout
	}
	if db.MySQL.Port == "" {
		db.MySQL.Port = "3306"
	}
	if db.Postgres.Port == "" {
		db.Postgres.Port = "5432"
	}
	if db.Postgres.SSLMode == "" {
		db.Postgres.SSLMode = "disable"
	}
	if db.SQLite.Path == "" {
		db.SQLite.Path = defaultSQLitePath
	}
	if db.MongoDB.Database == "" {
		db.MongoDB.Database = defaultMongoDatabase
	}
}

// Validate rejects configurations the process must not start with.
func (c *Config) Validate() error {
	switch c.Database.Type {
	case "mongodb", "mysql", "postgres", "sqlite":
	default:
		return errors.Errorf("unsupported database type: %s", c.Database.Type)
	}

	switch c.Database.Schema {
	case "", "sync", "reset", "none":
	default:
		return errors.Errorf("unsupported schema mode: %s", c.Database.Schema)
	}

	if c.Database.Pool.MinIdleConns > c.Database.Pool.MaxOpenConns {
		return errors.Errorf("database.pool.minIdleConns (%d) exceeds maxOpenConns (%d)",
			c.Database.Pool.MinIdleConns, c.Database.Pool.MaxOpenConns)
	}

	if c.SecretKey.Access == "" {
		return errors.New("secretKey.access must be provided")
	}

	if _, err := c.Counter.Location(); err != nil {
		return err
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
