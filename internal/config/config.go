package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Runtime configuration for the service.
//
// Resolution order: built-in defaults, then the optional YAML file named
// by CONFIG_PATH, then environment variables. An empty RedisAddr disables
// the matrix cache.
type Config struct {
	Port           string
	RedisAddr      string
	MatrixCacheTTL time.Duration
	MaxPlaces      int
	Solver         SolverConfig
}

// Genetic solver tuning. Zero values defer to the solver's own defaults.
type SolverConfig struct {
	PopulationSize int     `yaml:"population_size"`
	Generations    int     `yaml:"generations"`
	MutationRate   float64 `yaml:"mutation_rate"`
	EliteCount     int     `yaml:"elite_count"`
}

type fileConfig struct {
	Port           string       `yaml:"port"`
	RedisAddr      string       `yaml:"redis_addr"`
	MatrixCacheTTL string       `yaml:"matrix_cache_ttl"`
	MaxPlaces      int          `yaml:"max_places"`
	Solver         SolverConfig `yaml:"solver"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           "8080",
		MatrixCacheTTL: 24 * time.Hour,
		MaxPlaces:      100,
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %q: %w", path, err)
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.RedisAddr != "" {
		c.RedisAddr = fc.RedisAddr
	}
	if fc.MatrixCacheTTL != "" {
		ttl, err := time.ParseDuration(fc.MatrixCacheTTL)
		if err != nil {
			return fmt.Errorf("parse matrix_cache_ttl %q: %w", fc.MatrixCacheTTL, err)
		}
		c.MatrixCacheTTL = ttl
	}
	if fc.MaxPlaces > 0 {
		c.MaxPlaces = fc.MaxPlaces
	}
	if fc.Solver.PopulationSize > 0 {
		c.Solver.PopulationSize = fc.Solver.PopulationSize
	}
	if fc.Solver.Generations > 0 {
		c.Solver.Generations = fc.Solver.Generations
	}
	if fc.Solver.MutationRate > 0 {
		c.Solver.MutationRate = fc.Solver.MutationRate
	}
	if fc.Solver.EliteCount > 0 {
		c.Solver.EliteCount = fc.Solver.EliteCount
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("MATRIX_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse MATRIX_CACHE_TTL %q: %w", v, err)
		}
		c.MatrixCacheTTL = ttl
	}

	var err error
	if c.MaxPlaces, err = intEnv("MAX_PLACES", c.MaxPlaces); err != nil {
		return err
	}
	if c.Solver.PopulationSize, err = intEnv("GA_POPULATION_SIZE", c.Solver.PopulationSize); err != nil {
		return err
	}
	if c.Solver.Generations, err = intEnv("GA_GENERATIONS", c.Solver.Generations); err != nil {
		return err
	}
	if c.Solver.EliteCount, err = intEnv("GA_ELITE_COUNT", c.Solver.EliteCount); err != nil {
		return err
	}

	if v := os.Getenv("GA_MUTATION_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse GA_MUTATION_RATE %q: %w", v, err)
		}
		c.Solver.MutationRate = rate
	}

	return nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, v, err)
	}
	return n, nil
}
