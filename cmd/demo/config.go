package main

import "os"

// Config carries the demo's runtime switches.
//
// Flags take precedence over the environment; LoadFromEnv only supplies
// defaults.
type Config struct {
	// Seeded controls whether the store starts with the two sample records.
	Seeded bool

	// Color controls the status markers on step output.
	Color bool
}

// LoadFromEnv is intentionally simple for a demo binary.
func LoadFromEnv() Config {
	return Config{
		Seeded: !getenvBool("USTORE_EMPTY"),
		Color:  !getenvBool("USTORE_NO_COLOR"),
	}
}

func getenvBool(k string) bool {
	switch os.Getenv(k) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}
