// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON config file, and
// environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// SessionTTL bounds how long an issued session stays valid.
	SessionTTL time.Duration

	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{SessionTTL: 24 * time.Hour}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, config file, and environment variables
// to set configuration values. A .env file in the working directory is loaded
// first, so container deployments can ship environment in a file. It returns
// a pointer to the Options struct containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Optional; env vars may also come from the process environment
	_ = godotenv.Load(".env")

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("error while parsing SESSION_TTL: %v", err)
		}
		options.SessionTTL = parsed
	}

	if origins := os.Getenv("CORS_ORIGIN"); origins != "" {
		options.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				options.CORSOrigins = append(options.CORSOrigins, strings.TrimRight(o, "/"))
			}
		}
	}

	return options
}
