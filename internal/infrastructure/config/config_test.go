package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  path: /tmp/library.db
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTokenExpire)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.RefreshTokenExpire)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "/tmp/library.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Database.DSN())
	assert.False(t, cfg.MQ.Enabled)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
database:
  driver: mysql
  host: db
  dbname: library
  user: app
  password: from-file
`)
	t.Setenv("LIBRARY_DATABASE_PASSWORD", "from-env")
	t.Setenv("LIBRARY_SERVER_PORT", "9100")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "app:from-env@tcp(db:3306)/library?charset=utf8mb4&parseTime=true&loc=Local", cfg.Database.DSN())
}

func TestDSN_Postgres(t *testing.T) {
	d := DatabaseConfig{Driver: DriverPostgres, Host: "pg", Port: 5432, User: "u", Password: "p", DBName: "library", SSLMode: "disable"}
	assert.Equal(t, "host=pg port=5432 user=u password=p dbname=library sslmode=disable", d.DSN())
}

func TestValidate(t *testing.T) {
	t.Run("未知驱动", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: oracle\n")
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "database")
	})

	t.Run("release模式禁止默认密钥", func(t *testing.T) {
		path := writeConfig(t, "server:\n  mode: release\n")
		_, err := LoadFrom(path)
		assert.True(t, errors.Is(err, ErrDefaultSecretInRelease))
	})

	t.Run("启用MQ必须配置URL", func(t *testing.T) {
		path := writeConfig(t, "mq:\n  enabled: true\n  url: \"\"\n")
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "mq")
	})

	t.Run("bcrypt cost越界", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  bcrypt_cost: 40\n")
		_, err := LoadFrom(path)
		assert.ErrorContains(t, err, "auth")
	})
}
