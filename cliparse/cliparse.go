package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port        int
	StoreType   string
	DataFile    string
	DatabaseURL string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pulseboard", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "s", "", "Store type (file, sqlite or postgres)")
	fs.StringVar(&cfg.DataFile, "f", "", "Data file path (file store)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite or postgres store)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3324 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = "file"
		}
	}

	switch cfg.StoreType {
	case "file":
		if cfg.DataFile == "" {
			cfg.DataFile = os.Getenv("DATA_FILE")
		}
		if cfg.DataFile == "" {
			cfg.DataFile = "pulseboard.json"
		}
	case "sqlite", "postgres":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, errors.New("invalid store type: " + cfg.StoreType)
	}

	return cfg, nil
}
