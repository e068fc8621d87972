package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/friendsdir/internal/flagx"
	"github.com/dmitrijs2005/friendsdir/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept "1h" as well
// as integer nanoseconds. Absent or zero fields leave Config untouched.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDriver        string         `json:"database_driver"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	ResetPassword         string         `json:"reset_password"`
	AdminName             string         `json:"admin_name"`
	AdminEmail            string         `json:"admin_email"`
	AdminPassword         string         `json:"admin_password"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout"`
	LogLevel              string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, onto config.
func parseJson(config *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setStr(&config.EndpointAddr, c.EndpointAddr)
	setStr(&config.DatabaseDriver, c.DatabaseDriver)
	setStr(&config.DatabaseDSN, c.DatabaseDSN)
	setStr(&config.SecretKey, c.SecretKey)
	setStr(&config.ResetPassword, c.ResetPassword)
	setStr(&config.AdminName, c.AdminName)
	setStr(&config.AdminEmail, c.AdminEmail)
	setStr(&config.AdminPassword, c.AdminPassword)
	setStr(&config.LogLevel, c.LogLevel)

	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}
