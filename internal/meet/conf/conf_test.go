package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[log]
output = "stdout"
level = "DEBUG"

[http]
host = "127.0.0.1"
port = 9000
bodyLimit = 4
exposeMetrics = true
accessLog = true

[http.auth]
secretKey = "unit-test-key"
accessExpire = "2h"
refreshExpire = "168h"

[database]
host = "127.0.0.1"
port = 3306
username = "scrutiny"
name = "scrutiny"

[redis]
mode = "single"
address = "127.0.0.1:6379"

[invite]
gatewayUrl = "https://api.example.com"
webBaseUrl = "https://app.example.com"
ttl = "24h"

[mail]
endpoint = "https://api.resend.com"
from = "Scrutiny <no-reply@example.com>"
`

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(sampleConfig), 0o644))

	appConf, err := LoadConfigFile(file)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", appConf.Log.Level)
	assert.Equal(t, "127.0.0.1", appConf.Http.Host)
	assert.Equal(t, 9000, appConf.Http.Port)
	assert.True(t, appConf.Http.ExposeMetrics)

	// duration strings unmarshal into time.Duration
	assert.Equal(t, 2*time.Hour, appConf.Http.Auth.AccessExpire)
	assert.Equal(t, 168*time.Hour, appConf.Http.Auth.RefreshExpire)
	assert.Equal(t, 24*time.Hour, appConf.Invite.Ttl)

	assert.Equal(t, "unit-test-key", appConf.Http.Auth.SecretKey)
	assert.Equal(t, "scrutiny", appConf.Database.Name)
	assert.Equal(t, "127.0.0.1:6379", appConf.Redis.Address)
	assert.Equal(t, "https://api.example.com", appConf.Invite.GatewayUrl)
	assert.Equal(t, "https://api.resend.com", appConf.Mail.Endpoint)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
