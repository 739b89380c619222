package utils

import (
	"fmt"
	"os"
	"strconv"
)

// GetEnv reads an environment variable into a string, int or bool, falling
// back to defaultValue when the variable is unset or empty.
func GetEnv[T string | int | bool](name string, defaultValue T) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}

	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s is not valid: '%s' is not an integer", name, raw))
		}
		*ptr = v
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s is not valid: '%s' is not a boolean", name, raw))
		}
		*ptr = v
	}
	return out
}

// GetRequiredEnv is GetEnv for variables the process cannot run without.
func GetRequiredEnv[T string | int | bool](name string) T {
	if raw, ok := os.LookupEnv(name); !ok || raw == "" {
		panic(fmt.Sprintf("%s environment variable is required", name))
	}
	var zero T
	return GetEnv(name, zero)
}
