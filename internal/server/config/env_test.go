package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnvFile(t *testing.T, path string) {
	t.Helper()
	orig := envFile
	envFile = path
	t.Cleanup(func() { envFile = orig })
}

func TestParseEnv(t *testing.T) {
	withEnvFile(t, filepath.Join(t.TempDir(), "none.env"))

	t.Setenv("FRIENDSDIR_ADDRESS", ":9999")
	t.Setenv("FRIENDSDIR_DATABASE_DRIVER", "sqlite")
	t.Setenv("FRIENDSDIR_BCRYPT_COST", "12")
	t.Setenv("FRIENDSDIR_TOKEN_VALIDITY", "30m")
	t.Setenv("FRIENDSDIR_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("FRIENDSDIR_RESET_PASSWORD", "1234567890")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, DriverSQLite, c.DatabaseDriver)
	assert.Equal(t, 12, c.BcryptCost)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "1234567890", c.ResetPassword)
	assert.Equal(t, "secretKey", c.SecretKey, "unset vars keep defaults")
}

func TestParseEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FRIENDSDIR_ADMIN_EMAIL=root@x.com\nFRIENDSDIR_ADMIN_PASSWORD=rootpw\n"), 0o600))
	withEnvFile(t, path)

	// godotenv writes into the process env; register cleanup before loading
	t.Setenv("FRIENDSDIR_ADMIN_EMAIL", "")
	t.Setenv("FRIENDSDIR_ADMIN_PASSWORD", "")
	require.NoError(t, os.Unsetenv("FRIENDSDIR_ADMIN_EMAIL"))
	require.NoError(t, os.Unsetenv("FRIENDSDIR_ADMIN_PASSWORD"))

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, "root@x.com", c.AdminEmail)
	assert.Equal(t, "rootpw", c.AdminPassword)
}

func TestParseEnv_BadValues(t *testing.T) {
	withEnvFile(t, filepath.Join(t.TempDir(), "none.env"))

	t.Run("cost", func(t *testing.T) {
		t.Setenv("FRIENDSDIR_BCRYPT_COST", "ten")
		var c Config
		require.Error(t, parseEnv(&c))
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("FRIENDSDIR_TOKEN_VALIDITY", "forever")
		var c Config
		require.Error(t, parseEnv(&c))
	})
}
