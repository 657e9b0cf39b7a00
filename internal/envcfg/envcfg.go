// Package envcfg reads environment-style configuration with fallbacks.
package envcfg

import "os"

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
