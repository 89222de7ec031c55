package config

// Config holds runtime settings for the OneDate data layer.
type Config struct {
	// DatabasePath is the BoltDB file backing the key-value store.
	DatabasePath string

	// PoolPath optionally replaces the built-in candidate pool with a
	// JSON file (top-level array of candidates).
	PoolPath string

	// MatchLimit caps how many candidates a search returns.
	MatchLimit int

	// AgeWindow is the half-width of the accepted age interval around
	// the searched age.
	AgeWindow int

	// DefaultEvent and DefaultLocation fill absent booking fields.
	DefaultEvent    string
	DefaultLocation string

	// RecomputeStatusOnRead makes the ledger re-derive booking status
	// from the date when reading, instead of serving the status frozen
	// at record time.
	RecomputeStatusOnRead bool

	// HashPasswords switches credential storage from the original
	// plaintext behavior to bcrypt.
	HashPasswords bool
}

// LoadDefaults populates c with the original site's behavior.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "onedate.db"
	c.PoolPath = ""
	c.MatchLimit = 2
	c.AgeWindow = 7
	c.DefaultEvent = "Special Event"
	c.DefaultLocation = "Israel"
	c.RecomputeStatusOnRead = false
	c.HashPasswords = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file
// (if -c/-config is present), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
