package config

import "flag"

// FlagSeed returns seed if the -seed flag was given on fs, including an
// explicit 0, and nil when it was left unset
func FlagSeed(fs *flag.FlagSet, seed *int64) *int64 {
	var explicit *int64
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			explicit = seed
		}
	})
	return explicit
}
