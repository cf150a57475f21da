// Package config loads runtime configuration for the BookArc CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. BOOKARC_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend API base URL
//	-r string   identity provider region
//	-id string  identity provider app client id
//	-db string  session database path
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or
// integer nanoseconds. Keys that are absent keep their previous value:
//
//	{
//	  "api_base_url": "https://api.example.com/prod",
//	  "region": "us-east-1",
//	  "identity_client_id": "abc123",
//	  "session_db_path": "/home/ann/.bookarc/session.db",
//	  "request_timeout": "30s",
//	  "requests_per_second": 5,
//	  "safe_uploads": true,
//	  "log_level": "info"
//	}
package config
