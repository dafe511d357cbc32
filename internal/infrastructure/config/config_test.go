package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func validConfig() *Config {
	return &Config{
		App:      AppConfig{Timezone: "UTC"},
		Server:   ServerConfig{Port: 5000},
		Database: DatabaseConfig{Driver: DriverSQLite, Path: "missions.db"},
		Auth: AuthConfig{
			Accounts:            map[string]string{"ufaq": "secret"},
			AllowHeaderIdentity: true,
			IdentityHeader:      "X-Current-User",
		},
		JWT: JWTConfig{Secret: "0123456789abcdef", ExpiresIn: time.Hour},
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
app:
  timezone: UTC
server:
  port: 6000
auth:
  accounts:
    ufaq: one
    zia: two
jwt:
  secret: a-long-enough-test-secret
database:
  driver: sqlite
  path: /tmp/test.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, map[string]string{"ufaq": "one", "zia": "two"}, cfg.Auth.Accounts)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Auth.AllowHeaderIdentity)
	assert.Equal(t, "X-Current-User", cfg.Auth.IdentityHeader)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
auth:
  accounts:
    ufaq: one
jwt:
  secret: a-long-enough-test-secret
`)
	t.Setenv("AUTH_ACCOUNTS", "Ufaq:x,Zia:y:z")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("AUTH_ALLOW_HEADER_IDENTITY", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"Ufaq": "x", "Zia": "y:z"}, cfg.Auth.Accounts)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.False(t, cfg.Auth.AllowHeaderIdentity)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsMissingAccounts(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: a-long-enough-test-secret
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account")
}

func TestParseAccounts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]string
		wantErr bool
	}{
		{"single", "ufaq:secret", map[string]string{"ufaq": "secret"}, false},
		{"several with spaces", " ufaq:a , zia:b ", map[string]string{"ufaq": "a", "zia": "b"}, false},
		{"trailing comma", "ufaq:a,", map[string]string{"ufaq": "a"}, false},
		{"bcrypt secret keeps colons", "ufaq:$2a$10$abc:def", map[string]string{"ufaq": "$2a$10$abc:def"}, false},
		{"missing secret", "ufaq:", nil, true},
		{"missing separator", "ufaq", nil, true},
		{"duplicate", "ufaq:a,ufaq:b", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccounts(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"sqlite without path", func(c *Config) { c.Database.Path = "" }},
		{"postgres without host", func(c *Config) {
			c.Database.Driver = DriverPostgres
			c.Database.Name = "db"
		}},
		{"short jwt secret", func(c *Config) { c.JWT.Secret = "short" }},
		{"no accounts", func(c *Config) { c.Auth.Accounts = nil }},
		{"header identity without header", func(c *Config) { c.Auth.IdentityHeader = "" }},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }},
		{"bad timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }},
	}

	require.NoError(t, Validate(validConfig()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestAppConfig_Location(t *testing.T) {
	loc, err := (&AppConfig{Timezone: "Local"}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&AppConfig{Timezone: "Asia/Karachi"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Karachi", loc.String())
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: DriverSQLite, Path: "data/m.db"}
	assert.Contains(t, sqlite.GetDSN(), "data/m.db?_pragma=foreign_keys(1)")

	pg := DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", pg.GetDSN())
}
