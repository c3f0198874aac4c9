package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  mode: test
database:
  driver: sqlite
  dbname: ":memory:"
jwt:
  secret: test-secret
auth:
  staff_usernames: [admin, root]
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.DSN())
	assert.Equal(t, []string{"admin", "root"}, cfg.Auth.StaffUsernames)
	// 默认值
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "topic", cfg.MQ.ExchangeType)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o644))
	t.Chdir(dir)
	t.Setenv("BOOKSTORE_JWT_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080, Mode: "debug"},
			Database: DatabaseConfig{Driver: DriverMySQL},
			JWT:      JWTConfig{Secret: "s"},
		}
	}

	assert.NoError(t, validate(valid()))

	cfg := valid()
	cfg.Server.Port = 0
	assert.Error(t, validate(cfg))

	cfg = valid()
	cfg.Server.Mode = "production"
	assert.Error(t, validate(cfg))

	cfg = valid()
	cfg.Database.Driver = "postgres"
	assert.Error(t, validate(cfg))

	cfg = valid()
	cfg.JWT.Secret = "your-secret-key-change-in-production"
	cfg.Server.Mode = "release"
	assert.Error(t, validate(cfg))

	cfg = valid()
	cfg.MQ.Enabled = true
	assert.Error(t, validate(cfg))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Driver: DriverMySQL, Host: "localhost", Port: 3306, User: "root", Password: "pw",
		DBName: "bookstore", Charset: "utf8mb4", ParseTime: true, Loc: "Asia/Shanghai",
	}
	assert.Equal(t, "root:pw@tcp(localhost:3306)/bookstore?charset=utf8mb4&parseTime=true&loc=Asia%2FShanghai", d.DSN())
}
