package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-d database DSN
//	-driver database driver (postgres or sqlite)
//	-max-open-conns connection pool size
//	-c/-config json file path with configs
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var driver string
	var databaseDSN string
	var maxOpenConns int
	var jsonConfigPath string
	var logLevel string

	fs := flag.NewFlagSet("blogrecords", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver: postgres or sqlite")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "Maximum number of open database connections")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       driver,
				DSN:          databaseDSN,
				MaxOpenConns: maxOpenConns,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
