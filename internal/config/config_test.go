package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASS", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, ":4000", cfg.Addr())
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.Equal(t, "admin-auth", cfg.AdminToken)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "data.db", cfg.DBPath)
	assert.Equal(t, 2*1024*1024, cfg.BodyLimit)
	assert.False(t, cfg.KafkaEnabled())
}

func TestLoadKafkaBrokers(t *testing.T) {
	t.Setenv("ADMIN_PASS", "secret")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.KafkaEnabled())
}

func TestLoadProxySettings(t *testing.T) {
	t.Setenv("ADMIN_PASS", "secret")
	t.Setenv("PROXY_HEADER", "X-Forwarded-For")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.0/8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "X-Forwarded-For", cfg.ProxyHeader)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.0/8"}, cfg.TrustedProxies)
}

func TestValidate(t *testing.T) {
	base := Config{AdminPass: "x", AdminToken: "t", DBDriver: DriverSQLite, BodyLimit: 1}
	require.NoError(t, base.Validate())

	noPass := base
	noPass.AdminPass = ""
	assert.Error(t, noPass.Validate())

	hashOnly := noPass
	hashOnly.AdminPassHash = "$2a$10$abc"
	assert.NoError(t, hashOnly.Validate())

	blankToken := base
	blankToken.AdminToken = "  "
	assert.Error(t, blankToken.Validate())

	badDriver := base
	badDriver.DBDriver = "mysql"
	assert.Error(t, badDriver.Validate())
}
