// Package config loads runtime configuration for the inkwell CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-s string   session database file
//	-k string   cookie jar file
//	-f string   log format
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds. Every key is optional:
//
//	{
//	  "api_base_url": "http://127.0.0.1:5000/api",
//	  "request_timeout": "10s",
//	  "state_dsn": "inkwell.db",
//	  "cookie_file": "cookies.json",
//	  "log_format": "console",
//	  "log_level": "warn",
//	  "revalidate_session": true
//	}
package config
