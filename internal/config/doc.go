// Package config loads runtime configuration for the OneDate data layer.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults) — the original
//     site's behavior.
//  2. Environment variables, with an optional .env file (ONEDATE_*).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// JSON schema example:
//
//	{
//	  "database_path": "onedate.db",
//	  "match_limit": 2,
//	  "recompute_status_on_read": true
//	}
package config
