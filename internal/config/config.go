package config

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()
}

type Config struct {
	Log  LogConfig
	Demo DemoConfig
}

type LogConfig struct {
	Mode string // "debug" or "release"
}

// DemoConfig holds the resource names the ndep demo binary uses when
// composing example requests.
type DemoConfig struct {
	FabricName     string
	SwitchSerial   string
	NetworkName    string
	VrfName        string
	PermissiveMode bool // disable assignment-time constraint enforcement
}

func Load() *Config {
	return &Config{
		Log: LogConfig{
			Mode: getEnv("LOG_MODE", "debug"),
		},
		Demo: DemoConfig{
			FabricName:     getEnv("ND_FABRIC_NAME", "Easy-Fabric"),
			SwitchSerial:   getEnv("ND_SWITCH_SERIAL", "FOC12345678"),
			NetworkName:    getEnv("ND_NETWORK_NAME", "MyNetwork1"),
			VrfName:        getEnv("ND_VRF_NAME", "MyVRF1"),
			PermissiveMode: getEnvBool("ND_PERMISSIVE_VALIDATION", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}
