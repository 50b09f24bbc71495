package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// App holds the loaded configuration for the running process
var App *Config

// Config holds all configuration for the application
type Config struct {
	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	Port                  string
	Env                   string
}

// LoadConfig loads configuration from environment variables. The
// Razorpay credentials and webhook secret have no fallback values;
// startup fails if any of them is unset.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject env vars directly
	_ = godotenv.Load()

	config := &Config{
		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		Port:                  os.Getenv("PORT"),
		Env:                   os.Getenv("ENV"),
	}

	var missing []string
	for _, required := range []struct {
		name  string
		value string
	}{
		{"RAZORPAY_KEY_ID", config.RazorpayKeyID},
		{"RAZORPAY_KEY_SECRET", config.RazorpayKeySecret},
		{"RAZORPAY_WEBHOOK_SECRET", config.RazorpayWebhookSecret},
	} {
		if required.value == "" {
			missing = append(missing, required.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if config.Port == "" {
		config.Port = "8080"
	}

	App = config
	return config, nil
}
