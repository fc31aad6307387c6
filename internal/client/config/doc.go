// Package config loads runtime configuration for the hikectl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected with --config.
//  3. Environment: HIKECTL_SERVER, HIKECTL_DB, HIKECTL_TIMEOUT.
//  4. Command-line flags --server, --db and --timeout, applied by the CLI.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "hikekeeper.db",
//	  "request_timeout": "10s"
//	}
package config
