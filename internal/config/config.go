package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Razorpay RazorpayConfig
	Gemini   GeminiConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration. Tokens are issued by the
// external auth service; this process only validates them.
type JWTConfig struct {
	Secret string
}

// RazorpayConfig holds payment-gateway credentials. Empty credentials mean
// the gateway is unconfigured and payment operations fail fast.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

// Configured reports whether gateway credentials are present
func (c RazorpayConfig) Configured() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

// GeminiConfig holds evaluation-service credentials
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Configured reports whether evaluation-service credentials are present
func (c GeminiConfig) Configured() bool {
	return c.APIKey != ""
}

// Load loads configuration from environment variables and config files.
// Missing external-service credentials are not an error here: the respective
// operations fail fast at call time instead of crashing the process.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	bindEnvOverrides(&config)

	return &config, nil
}

// bindEnvOverrides maps the flat env variable names the deployment uses onto
// the nested config sections. Explicit env values win over file values.
func bindEnvOverrides(config *Config) {
	if v := viper.GetString("PORT"); v != "" {
		config.Server.Port = v
	}
	if v := viper.GetString("MONGODB_URI"); v != "" {
		config.MongoDB.URI = v
	}
	if v := viper.GetString("MONGODB_DATABASE"); v != "" {
		config.MongoDB.Database = v
	}
	if v := viper.GetString("JWT_SECRET"); v != "" {
		config.JWT.Secret = v
	}
	if v := viper.GetString("RAZORPAY_KEY_ID"); v != "" {
		config.Razorpay.KeyID = v
	}
	if v := viper.GetString("RAZORPAY_KEY_SECRET"); v != "" {
		config.Razorpay.KeySecret = v
	}
	if v := viper.GetString("GEMINI_API_KEY"); v != "" {
		config.Gemini.APIKey = v
	}
	if v := viper.GetString("GEMINI_MODEL"); v != "" {
		config.Gemini.Model = v
	}
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"http://localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "hackbridge")
	viper.SetDefault("Gemini.Model", "gemini-2.0-flash")
	viper.SetDefault("LogLevel", "info")
}
