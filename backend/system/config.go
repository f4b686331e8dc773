package system

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the service settings. Values come from defaults, then an
// optional YAML file, then ROSTER_* environment variables.
type Config struct {
	Listen         string `yaml:"listen"`
	DBPath         string `yaml:"db_path"`
	LogDir         string `yaml:"log_dir"`
	JWTSecret      string `yaml:"jwt_secret"`
	SeedFile       string `yaml:"seed_file"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
}

// insecureJWTSecret is the placeholder shipped in older sample configs.
const insecureJWTSecret = "super-secret-key-change-me"

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Listen:         ":3000",
		DBPath:         "roster.db",
		LogDir:         "./logs",
		MetricsEnabled: true,
	}
}

// LoadConfig builds a Config from path (may be empty) and the environment
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "reading config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing config %s", path)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ROSTER_LISTEN"); ok {
		c.Listen = v
	}
	if v, ok := lookup("ROSTER_DB_PATH"); ok {
		c.DBPath = v
	}
	if v, ok := lookup("ROSTER_LOG_DIR"); ok {
		c.LogDir = v
	}
	if v, ok := lookup("ROSTER_JWT_SECRET"); ok {
		c.JWTSecret = v
	}
	if v, ok := lookup("ROSTER_SEED_FILE"); ok {
		c.SeedFile = v
	}
	if v, ok := lookup("ROSTER_METRICS"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "ROSTER_METRICS=%q", v)
		}
		c.MetricsEnabled = enabled
	}
	return nil
}

// Validate rejects settings the service cannot start with
func (c Config) Validate() error {
	switch {
	case c.Listen == "":
		return errors.New("listen address is required")
	case c.DBPath == "":
		return errors.New("database path is required")
	case c.JWTSecret == insecureJWTSecret:
		return errors.New("jwt secret must be changed from the sample value")
	}
	return nil
}

// ResolveJWTSecret fills an empty JWT secret with random bytes. Tokens signed
// with a generated secret do not survive a restart.
func (c *Config) ResolveJWTSecret() (generated bool, err error) {
	if c.JWTSecret != "" {
		return false, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return false, errors.Wrap(err, "generating jwt secret")
	}
	c.JWTSecret = hex.EncodeToString(buf)
	return true, nil
}
