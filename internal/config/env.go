package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with ONEDATE_* environment variables. A .env
// file in the working directory is loaded first if present; real
// environment variables win over the file, per godotenv semantics.
//
// Supported variables:
//
//	ONEDATE_DB_PATH             store file path
//	ONEDATE_POOL_PATH           candidate pool JSON file
//	ONEDATE_MATCH_LIMIT         max search results
//	ONEDATE_AGE_WINDOW          age interval half-width
//	ONEDATE_DEFAULT_EVENT       fallback event label
//	ONEDATE_DEFAULT_LOCATION    fallback location
//	ONEDATE_RECOMPUTE_STATUS    recompute booking status on read (bool)
//	ONEDATE_HASH_PASSWORDS      store bcrypt hashes instead of plaintext (bool)
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("ONEDATE_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("ONEDATE_POOL_PATH"); v != "" {
		cfg.PoolPath = v
	}
	if v := os.Getenv("ONEDATE_MATCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MatchLimit = n
		}
	}
	if v := os.Getenv("ONEDATE_AGE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AgeWindow = n
		}
	}
	if v := os.Getenv("ONEDATE_DEFAULT_EVENT"); v != "" {
		cfg.DefaultEvent = v
	}
	if v := os.Getenv("ONEDATE_DEFAULT_LOCATION"); v != "" {
		cfg.DefaultLocation = v
	}
	if v := os.Getenv("ONEDATE_RECOMPUTE_STATUS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RecomputeStatusOnRead = b
		}
	}
	if v := os.Getenv("ONEDATE_HASH_PASSWORDS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HashPasswords = b
		}
	}
}
