// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3324)
  - StoreType: "file" (default), "sqlite", or "postgres"
  - DataFile: JSON document path for the file store (default: pulseboard.json)
  - DatabaseURL: connection string for the sqlite/postgres store

# CLI Flags

	-p  Server port
	-s  Store type
	-f  Data file path
	-d  Database URL

# Environment Variables

Flags fall back to environment variables:

	PORT         → -p
	STORE_TYPE   → -s
	DATA_FILE    → -f
	DATABASE_URL → -d

CLI flags take precedence over environment variables. A .env file is
loaded by main via godotenv before parsing.

# Validation

ParseFlags returns an error if:

  - PORT is not numeric
  - the store type is not one of file, sqlite, postgres
  - a sqlite/postgres store is selected without a database URL
*/
package cliparse
