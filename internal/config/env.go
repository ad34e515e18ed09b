package config

import (
	"os"
	"strconv"
	"strings"
)

func envOrDefault(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}
	return defaultValue
}

// portEnvOrDefault accepts integers in [0, 65535]. Anything else is disregarded in
// favour of the default and returned as rejected so the caller can report it.
func portEnvOrDefault(key, defaultValue string) (port string, rejected string) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, ""
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 || val > maxPort {
		return defaultValue, raw
	}
	return strconv.Itoa(val), ""
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}
