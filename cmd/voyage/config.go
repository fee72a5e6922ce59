package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"

	// Trips source flags (browse, trips)
	FlagAPIURL   = "api-url"
	FlagCategory = "category"

	// Browse command flags
	FlagPlain = "plain"

	// Trips command flags
	FlagStrict = "strict"

	// Serve command flags
	FlagAddr = "addr"
	FlagDB   = "db"
	FlagSeed = "seed"

	// Output format flags
	FlagJSON = "json"
)
