// File: utils/config_test.go
package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 16, cfg.MaxCustomers)
	assert.Equal(t, 5, cfg.MaxTravelSeconds)
	assert.Equal(t, 3, cfg.MaxHaircutSeconds)
	assert.Equal(t, time.Second, cfg.TimeUnit)
	assert.NoError(t, cfg.Validate())
}

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"valid", []string{"5", "2", "99"}, nil},
		{"maximum customers", []string{"16", "1", "0"}, nil},
		{"negative seed", []string{"1", "1", "-4"}, nil},
		{"no arguments", nil, ErrUsage},
		{"too many arguments", []string{"1", "2", "3", "4"}, ErrUsage},
		{"customers not a number", []string{"x", "2", "3"}, ErrUsage},
		{"chairs not a number", []string{"1", "two", "3"}, ErrUsage},
		{"seed not a number", []string{"1", "2", "seed"}, ErrBadSeed},
		{"too many customers", []string{"17", "2", "3"}, ErrTooManyCustomers},
		{"no customers", []string{"0", "2", "3"}, ErrNoCustomers},
		{"no chairs", []string{"3", "0", "3"}, ErrNoChairs},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseArgs(DefaultConfig(), tc.args)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.args[0], itoa(cfg.Customers))
			assert.Equal(t, tc.args[1], itoa(cfg.Chairs))
		})
	}
}

func TestParseArgs_CustomerCapIsConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCustomers = 64
	parsed, err := ParseArgs(cfg, []string{"40", "3", "1"})
	require.NoError(t, err)
	assert.Equal(t, 40, parsed.Customers)
	assert.Equal(t, int64(1), parsed.Seed)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv(EnvMaxCustomers, "32")
	t.Setenv(EnvTimeUnit, "10ms")
	t.Setenv(EnvMaxHaircutSeconds, "")

	cfg, err := LoadEnv(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.MaxCustomers)
	assert.Equal(t, 10*time.Millisecond, cfg.TimeUnit)
	assert.Equal(t, 3, cfg.MaxHaircutSeconds, "empty values keep the default")
}

func TestLoadEnv_ReadsDotenvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BARBER_MAX_TRAVEL_SECONDS=9\n"), 0o600))
	// Registered so t.Setenv restores the variable after godotenv sets it.
	t.Setenv(EnvMaxTravelSeconds, "")
	require.NoError(t, os.Unsetenv(EnvMaxTravelSeconds))

	cfg, err := LoadEnv(DefaultConfig(), filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.MaxTravelSeconds)
}

func TestLoadEnv_ProcessEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BARBER_MAX_TRAVEL_SECONDS=9\n"), 0o600))
	t.Setenv(EnvMaxTravelSeconds, "2")

	cfg, err := LoadEnv(DefaultConfig(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxTravelSeconds)
}

func TestLoadEnv_BadValues(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		t.Setenv(EnvMaxCustomers, "many")
		_, err := LoadEnv(DefaultConfig())
		assert.ErrorIs(t, err, ErrBadEnv)
	})
	t.Run("duration", func(t *testing.T) {
		t.Setenv(EnvTimeUnit, "soon")
		_, err := LoadEnv(DefaultConfig())
		assert.ErrorIs(t, err, ErrBadEnv)
	})
}

func TestValidate_DelayBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHaircutSeconds = 0
	assert.ErrorIs(t, cfg.Validate(), ErrBadEnv)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
