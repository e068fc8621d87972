package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "FRIENDSDIR_"

// envFile is the dotenv file read before the environment is consulted.
// Variables already present in the process environment are not overwritten.
var envFile = ".env"

// parseEnv overlays FRIENDSDIR_* variables onto config.
func parseEnv(config *Config) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}
	str("ADDRESS", &config.EndpointAddr)
	str("DATABASE_DRIVER", &config.DatabaseDriver)
	str("DATABASE_DSN", &config.DatabaseDSN)
	str("SECRET_KEY", &config.SecretKey)
	str("RESET_PASSWORD", &config.ResetPassword)
	str("ADMIN_NAME", &config.AdminName)
	str("ADMIN_EMAIL", &config.AdminEmail)
	str("ADMIN_PASSWORD", &config.AdminPassword)
	str("LOG_LEVEL", &config.LogLevel)

	if v, ok := os.LookupEnv(envPrefix + "BCRYPT_COST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sBCRYPT_COST: %w", envPrefix, err)
		}
		config.BcryptCost = n
	}

	for name, dst := range map[string]*time.Duration{
		"TOKEN_VALIDITY":   &config.TokenValidityDuration,
		"SHUTDOWN_TIMEOUT": &config.ShutdownTimeout,
	} {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = d
	}
	return nil
}
