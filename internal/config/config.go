package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Balance holds progression tuning. Defaults match the original game values.
type Balance struct {
	// GrowthFactor multiplies the XP threshold on each level-up.
	GrowthFactor float64 `yaml:"growth_factor"`
	// BaseXPToNextLevel is the level-1 threshold for fresh profiles.
	BaseXPToNextLevel int `yaml:"base_xp_to_next_level"`
}

func DefaultBalance() Balance {
	return Balance{
		GrowthFactor:      1.5,
		BaseXPToNextLevel: 200,
	}
}

// Config is everything the CLI needs to run. The database path is resolved
// separately by the storage package.
type Config struct {
	Balance Balance
}

// Load builds the runtime configuration. Order: defaults, optional YAML file
// (ARISE_CONFIG or ~/.arise.yaml), then environment overrides. A missing file
// is not an error; a malformed one is.
func Load() (*Config, error) {
	// Best effort; a missing .env is the common case.
	_ = godotenv.Load()

	cfg := &Config{Balance: DefaultBalance()}

	path := os.Getenv("ARISE_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + "/.arise.yaml"
		}
	}
	if path != "" {
		if err := loadYAML(path, &cfg.Balance); err != nil {
			return nil, err
		}
	}

	applyEnv(&cfg.Balance)
	cfg.Balance = cfg.Balance.sanitized()
	return cfg, nil
}

func loadYAML(path string, b *Balance) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, b); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(b *Balance) {
	if v := getEnvFloat("ARISE_GROWTH_FACTOR"); v > 0 {
		b.GrowthFactor = v
	}
	if v := getEnvInt("ARISE_BASE_XP"); v > 0 {
		b.BaseXPToNextLevel = v
	}
}

func (b Balance) sanitized() Balance {
	def := DefaultBalance()
	if b.GrowthFactor <= 1 {
		b.GrowthFactor = def.GrowthFactor
	}
	if b.BaseXPToNextLevel <= 0 {
		b.BaseXPToNextLevel = def.BaseXPToNextLevel
	}
	return b
}

func getEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func getEnvFloat(key string) float64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
