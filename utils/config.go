// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the shop parameters.
type Config struct {
	// Positional arguments
	Customers int   `json:"customers"` // Number of customer actors to spawn
	Chairs    int   `json:"chairs"`    // Waiting-room capacity
	Seed      int64 `json:"seed"`      // Seed for the random delay source

	// Limits
	MaxCustomers int `json:"maxCustomers"` // Upper bound accepted for Customers

	// Timing
	MaxTravelSeconds  int           `json:"maxTravelSeconds"`  // Customers travel 1..MaxTravelSeconds units
	MaxHaircutSeconds int           `json:"maxHaircutSeconds"` // A haircut takes 1..MaxHaircutSeconds units
	TimeUnit          time.Duration `json:"timeUnit"`          // Length of one delay unit (a second by default)
	ShutdownTimeout   time.Duration `json:"shutdownTimeout"`   // Grace period for the actor engine to drain
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		Customers: 1,
		Chairs:    1,
		Seed:      0,

		MaxCustomers: 16,

		MaxTravelSeconds:  5,
		MaxHaircutSeconds: 3,
		TimeUnit:          time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// Environment variables read by LoadEnv.
const (
	EnvMaxCustomers      = "BARBER_MAX_CUSTOMERS"
	EnvMaxTravelSeconds  = "BARBER_MAX_TRAVEL_SECONDS"
	EnvMaxHaircutSeconds = "BARBER_MAX_HAIRCUT_SECONDS"
	EnvTimeUnit          = "BARBER_TIME_UNIT"
)

// LoadEnv loads the given dotenv files (missing ones are skipped) into the
// process environment and applies any BARBER_* overrides on top of cfg.
// Variables already set in the environment win over the files.
func LoadEnv(cfg Config, files ...string) (Config, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("reading %s: %w", f, err)
		}
		existing = append(existing, f)
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return cfg, fmt.Errorf("loading env files: %w", err)
		}
	}

	var err error
	if cfg.MaxCustomers, err = envInt(EnvMaxCustomers, cfg.MaxCustomers); err != nil {
		return cfg, err
	}
	if cfg.MaxTravelSeconds, err = envInt(EnvMaxTravelSeconds, cfg.MaxTravelSeconds); err != nil {
		return cfg, err
	}
	if cfg.MaxHaircutSeconds, err = envInt(EnvMaxHaircutSeconds, cfg.MaxHaircutSeconds); err != nil {
		return cfg, err
	}
	if s, ok := os.LookupEnv(EnvTimeUnit); ok && s != "" {
		unit, err := time.ParseDuration(s)
		if err != nil || unit < 0 {
			return cfg, fmt.Errorf("%w: invalid duration for %s: %q", ErrBadEnv, EnvTimeUnit, s)
		}
		cfg.TimeUnit = unit
	}
	return cfg, nil
}

// envInt returns the integer value of key, or fallback when it is unset.
func envInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback, fmt.Errorf("%w: invalid int for %s: %q", ErrBadEnv, key, s)
	}
	return n, nil
}

// ParseArgs reads the three positional arguments
// (customers, chairs, seed) into cfg and validates the result.
func ParseArgs(cfg Config, args []string) (Config, error) {
	if len(args) != 3 {
		return cfg, fmt.Errorf("%w: expected 3 arguments, got %d", ErrUsage, len(args))
	}

	customers, err := strconv.Atoi(args[0])
	if err != nil {
		return cfg, fmt.Errorf("%w: customers %q is not a number", ErrUsage, args[0])
	}
	chairs, err := strconv.Atoi(args[1])
	if err != nil {
		return cfg, fmt.Errorf("%w: chairs %q is not a number", ErrUsage, args[1])
	}
	seed, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("%w: %q", ErrBadSeed, args[2])
	}

	cfg.Customers = customers
	cfg.Chairs = chairs
	cfg.Seed = seed
	return cfg, cfg.Validate()
}

// Validate checks the configuration before any actor is spawned.
// A shop without waiting-room chairs can never admit anyone, so it is
// rejected here rather than left to hang.
func (c Config) Validate() error {
	switch {
	case c.Customers < 1:
		return fmt.Errorf("%w: got %d", ErrNoCustomers, c.Customers)
	case c.MaxCustomers > 0 && c.Customers > c.MaxCustomers:
		return fmt.Errorf("%w: %d > %d", ErrTooManyCustomers, c.Customers, c.MaxCustomers)
	case c.Chairs < 1:
		return fmt.Errorf("%w: got %d", ErrNoChairs, c.Chairs)
	case c.MaxTravelSeconds < 1 || c.MaxHaircutSeconds < 1:
		return fmt.Errorf("%w: delay bounds must be at least 1 (travel %d, haircut %d)",
			ErrBadEnv, c.MaxTravelSeconds, c.MaxHaircutSeconds)
	}
	return nil
}
