package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 8083
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "scheduling"
password = "from-file"
dbname = "scheduling"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "sc-scheduling-service"

[club_service]
url = "http://localhost:8081"
timeout = 5
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "scheduling", cfg.Database.DBName)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://localhost:8081", cfg.ClubService.URL)
}

func TestLoad_EnvPasswordOverride(t *testing.T) {
	t.Setenv("SCHEDULING_DB_PASSWORD", "from-env")

	cfg, err := Load(writeTestConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_Validation(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
		require.Error(t, err)
	})

	t.Run("missing club service url", func(t *testing.T) {
		broken := strings.Replace(testConfig, `url = "http://localhost:8081"`, "", 1)
		_, err := Load(writeTestConfig(t, broken))
		require.Error(t, err)
	})
}
