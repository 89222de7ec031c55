package config

import (
	"encoding/json"
	"os"

	"github.com/onedate/onedate/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so the file only
// overrides what it mentions.
type JsonConfig struct {
	DatabasePath          *string `json:"database_path"`
	PoolPath              *string `json:"pool_path"`
	MatchLimit            *int    `json:"match_limit"`
	AgeWindow             *int    `json:"age_window"`
	DefaultEvent          *string `json:"default_event"`
	DefaultLocation       *string `json:"default_location"`
	RecomputeStatusOnRead *bool   `json:"recompute_status_on_read"`
	HashPasswords         *bool   `json:"hash_passwords"`
}

// parseJson overlays Config with values loaded from the JSON file named
// by the -c/-config flag. No flag means no JSON is loaded. Read or
// unmarshal errors panic; configuration is load-time only.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

// apply copies the fields the JSON file mentioned onto cfg.
func (jc JsonConfig) apply(cfg *Config) {
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.PoolPath != nil {
		cfg.PoolPath = *jc.PoolPath
	}
	if jc.MatchLimit != nil {
		cfg.MatchLimit = *jc.MatchLimit
	}
	if jc.AgeWindow != nil {
		cfg.AgeWindow = *jc.AgeWindow
	}
	if jc.DefaultEvent != nil {
		cfg.DefaultEvent = *jc.DefaultEvent
	}
	if jc.DefaultLocation != nil {
		cfg.DefaultLocation = *jc.DefaultLocation
	}
	if jc.RecomputeStatusOnRead != nil {
		cfg.RecomputeStatusOnRead = *jc.RecomputeStatusOnRead
	}
	if jc.HashPasswords != nil {
		cfg.HashPasswords = *jc.HashPasswords
	}
}
