package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"paws-sync/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

// Config del servicio. Se arma con defaults, después el YAML (opcional)
// y por último las variables de entorno, que siempre ganan.
type Config struct {
	Port string    `yaml:"port"`
	Log  LogConfig `yaml:"log"`

	Database DatabaseConfig `yaml:"database"`
	Blobs    BlobConfig     `yaml:"blobs"`
	Auth     AuthConfig     `yaml:"auth"`
	DogAPI   DogAPIConfig   `yaml:"dogApi"`
	Stream   StreamConfig   `yaml:"stream"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

// DatabaseConfig: sin DSN se usa el store en memoria.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// BlobConfig: sin Dir se usa el blobstore en memoria.
type BlobConfig struct {
	Dir     string `yaml:"dir"`
	BaseURL string `yaml:"baseUrl"`
}

// AuthConfig: JWT tiene prioridad sobre Odin; sin ninguno, modo dev.
type AuthConfig struct {
	JWTSecret   string `yaml:"jwtSecret"`
	JWTIssuer   string `yaml:"jwtIssuer"`
	OdinBaseURL string `yaml:"odinBaseUrl"`
	OdinAPIKey  string `yaml:"odinApiKey"`
}

type DogAPIConfig struct {
	BaseURL string        `yaml:"baseUrl"`
	APIKey  string        `yaml:"apiKey"`
	Timeout time.Duration `yaml:"timeout"`
}

type StreamConfig struct {
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	PingTimeout  time.Duration `yaml:"pingTimeout"`
}

func Default() Config {
	return Config{
		Port: "8080",
		Log:  LogConfig{Level: "info", Format: "text", App: "paws-sync"},
		Blobs: BlobConfig{
			BaseURL: "http://localhost:8080/blobs",
		},
		DogAPI: DogAPIConfig{
			BaseURL: "https://api.thedogapi.com",
			Timeout: 10 * time.Second,
		},
		Stream: StreamConfig{
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  60 * time.Second,
			PingTimeout:  20 * time.Second,
		},
	}
}

// Load lee path (si no es "") y aplica el entorno del proceso.
func Load(path string) (Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith es Load con el lookup de env inyectable.
func LoadWith(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if p := strings.TrimSpace(path); p != "" {
		raw, err := os.ReadFile(p)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse config %s: %w", p, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("PORT", &c.Port)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("APP_NAME", &c.Log.App)
	str("DB_DSN", &c.Database.DSN)
	str("BLOB_DIR", &c.Blobs.Dir)
	str("BLOB_BASE_URL", &c.Blobs.BaseURL)
	str("JWT_SECRET", &c.Auth.JWTSecret)
	str("JWT_ISSUER", &c.Auth.JWTIssuer)
	str("ODIN_BASE_URL", &c.Auth.OdinBaseURL)
	str("ODIN_API_KEY", &c.Auth.OdinAPIKey)
	str("DOG_API_BASE_URL", &c.DogAPI.BaseURL)
	str("DOG_API_KEY", &c.DogAPI.APIKey)

	if v, ok := lookup("DOG_API_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("DOG_API_TIMEOUT: %w", err)
		}
		c.DogAPI.Timeout = d
	}
	return nil
}

// parseDuration acepta "10s" o segundos sueltos ("10").
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}

// Addr devuelve ":PORT".
func (c Config) Addr() string {
	p := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if p == "" {
		p = "8080"
	}
	return ":" + p
}

func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
	})
}
