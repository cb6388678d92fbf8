package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_SQLiteWithDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
driver = "sqlite"
path = "/tmp/booking.db"

[booking]
timezone = "Europe/Paris"

[admin]
password = "from-file"
jwt_secret = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 100, cfg.Booking.ReservationListLimit)
	assert.Equal(t, "Europe/Paris", cfg.Booking.Location().String())
	assert.Equal(t, 12*time.Hour, cfg.Admin.SessionDuration())
	assert.Equal(t, 3*time.Second, cfg.Dashboard.ReadTimeoutDuration())
	assert.Equal(t, "file:/tmp/booking.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Database.DSN())
	assert.False(t, cfg.Retention.Enabled)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	path := writeConfig(t, `
[database]
driver = "sqlite"
path = "x.db"

[admin]
password = "from-file"
jwt_secret = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Admin.Password)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{
			Database: DatabaseConfig{Driver: "postgres", Host: "db", DBName: "booking"},
			Admin:    AdminConfig{Password: "p", JWTSecret: "s"},
		}
		cfg.applyDefaults()
		return cfg
	}

	require.NoError(t, base().Validate())

	cases := map[string]func(c *Config){
		"unknown driver":      func(c *Config) { c.Database.Driver = "mysql" },
		"sqlite without path": func(c *Config) { c.Database.Driver = "sqlite" },
		"bad timezone":        func(c *Config) { c.Booking.Timezone = "Mars/Olympus" },
		"no admin password":   func(c *Config) { c.Admin.Password = "" },
		"no jwt secret":       func(c *Config) { c.Admin.JWTSecret = "" },
		"mailer without url":  func(c *Config) { c.Mailer.Enabled = true },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
