package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Configuration struct {
	LastDocument string `json:"lastDocument,omitempty"` // Presented when no document is named
	LogFile      string `json:"logFile,omitempty"`      // Debug log destination, empty disables logging
	Plain        bool   `json:"-"`                      // Set from MDPRESENT_PLAIN only
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func loadConfiguration(fileName string) (Configuration, error) {
	var config Configuration

	if _, err := os.Stat(fileName); err == nil {
		configBytes, err := os.ReadFile(fileName)
		if err != nil {
			return Configuration{}, fmt.Errorf("could not read config file %s", fileName)
		}

		if err := json.Unmarshal(configBytes, &config); err != nil {
			return Configuration{}, fmt.Errorf("could not read config file %s", fileName)
		}
	}

	return config, nil
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// withEnvironment returns the settings in effect for this run: the file
// settings overridden by environment variables. Overrides are never saved.
func withEnvironment(config Configuration) Configuration {
	config.LogFile = envOr("MDPRESENT_LOG", config.LogFile)
	config.Plain = envBool("MDPRESENT_PLAIN", config.Plain)
	return config
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func saveConfiguration(fileName string, config *Configuration) error {
	configBytes, err := json.MarshalIndent(config, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(fileName, configBytes, 0644)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// configure updates the saved configuration from command-line options.
func configure(args []string, fileName string, config *Configuration) error {
	flagSet := flag.NewFlagSet("configure", flag.ContinueOnError)
	logFile := flagSet.String("log", "", "--log <debug log file>")
	document := flagSet.String("document", "", "--document <markdown file>")

	flagSet.Usage = func() {
		fmt.Println("USAGE:")
		fmt.Println("    mdpresent configure [--log <debug log file>] [--document <markdown file>]")
	}

	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("failed to parse options")
	}

	if len(*logFile) != 0 {
		config.LogFile = *logFile
	}

	if len(*document) != 0 {
		path, err := filepath.Abs(*document)
		if err != nil {
			return fmt.Errorf("could not resolve %s: %w", *document, err)
		}
		config.LastDocument = path
	}

	return saveConfiguration(fileName, config)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
