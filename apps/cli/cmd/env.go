package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// lookupEnvDuration reports whether key is set and rejects values that do not parse.
func lookupEnvDuration(key string) (time.Duration, bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, false, fmt.Errorf("%s: invalid duration %q", key, val)
	}
	return d, true, nil
}

func lookupEnvInt(key string) (int, bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("%s: invalid number %q", key, val)
	}
	return i, true, nil
}

func lookupEnvBool(key string) (bool, bool, error) {
	switch val := os.Getenv(key); val {
	case "":
		return false, false, nil
	case "true", "1", "yes":
		return true, true, nil
	case "false", "0", "no":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("%s: invalid boolean %q", key, val)
	}
}
