// Package config holds application configuration, loaded from an optional
// YAML file with environment-variable overrides (prefix CONTACTS_).
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	AppName         string `mapstructure:"app_name"`
	ListenIP        string `mapstructure:"listen_ip"`
	ListenPort      int    `mapstructure:"listen_port"`
	SessionKey      string `mapstructure:"session_key"`
	ContactsFile    string `mapstructure:"contacts_file"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

var AppConfig Config

const keyPlaceholder = "CHANGE_ME_IN_PRODUCTION"

// Load reads config.yml from dir (if present) and environment overrides
// into AppConfig. A missing file is fine; defaults cover everything except
// the session key, which falls back to a random value.
func Load(dir string) error {
	AppConfig = Config{}

	v := viper.New()
	v.SetDefault("app_name", "Contact Tracker")
	v.SetDefault("listen_ip", "127.0.0.1")
	v.SetDefault("listen_port", 8080)
	v.SetDefault("contacts_file", "data/contacts.yml")
	v.SetDefault("credentials_file", "data/users.yml")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("CONTACTS")
	v.AutomaticEnv()
	if err := v.BindEnv("session_key"); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	// Without a stable key, sessions are invalidated on every restart.
	if AppConfig.SessionKey == "" || AppConfig.SessionKey == keyPlaceholder {
		log.Println("WARNING: No session key configured. Generating a random key. Sessions will be invalidated on restart.")
		randomKey := make([]byte, 32)
		if _, err := rand.Read(randomKey); err != nil {
			return err
		}
		AppConfig.SessionKey = hex.EncodeToString(randomKey)
	}

	return nil
}
