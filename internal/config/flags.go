package config

import (
	"flag"
	"os"

	"github.com/onedate/onedate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   store database file path
//	-p string   candidate pool JSON file
//	-l int      max search results
//	-r          recompute booking status on read
//	-s          store bcrypt hashes instead of plaintext passwords
//
// Only these flags are parsed here; os.Args is filtered through
// flagx.FilterArgs so other packages' flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-l", "-r", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "store database file path")
	fs.StringVar(&cfg.PoolPath, "p", cfg.PoolPath, "candidate pool JSON file")
	fs.IntVar(&cfg.MatchLimit, "l", cfg.MatchLimit, "max search results")
	fs.BoolVar(&cfg.RecomputeStatusOnRead, "r", cfg.RecomputeStatusOnRead, "recompute booking status on read")
	fs.BoolVar(&cfg.HashPasswords, "s", cfg.HashPasswords, "store bcrypt password hashes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
