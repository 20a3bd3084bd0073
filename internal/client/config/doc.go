// Package config loads runtime configuration for the marketplace client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults ((*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-a string   directory service base URL
//	-d string   data directory for the local SQLite store
//	-r bool     allow repurchase of sold artworks
//	-t int      request timeout, seconds (0 disables)
//	-i int      online check interval, seconds
//	-p string   password scheme (plain, bcrypt)
//	-l string   log level (debug, info, warn, error)
//
// JSON durations accept "3s" or integer nanoseconds:
//
//	{
//	  "directory_url": "http://localhost:8020",
//	  "data_dir": "data",
//	  "allow_repurchase": false,
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s"
//	}
package config
