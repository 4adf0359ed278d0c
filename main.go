package main

/*
	- - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
	mdpresent

	Presents a markdown document in the terminal one page at a time. The first top-level
	heading becomes a title page, every second-level heading a page, and third-level headings
	split a section into sub-pages.
	- - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
*/

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mdpresent/deck"
)

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func main() {
	exePath, _ := os.Executable()
	configFile := filepath.Join(filepath.Dir(exePath), "mdpresent_config.json")

	config, err := loadConfiguration(configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	settings := withEnvironment(config)

	logger, closeLog, err := openLogger(settings.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	err = run(os.Args[1:], configFile, &config, settings, logger)
	closeLog()

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// run dispatches the command line. config is the saved configuration, settings
// the configuration in effect for this run.
func run(args []string, configFile string, config *Configuration, settings Configuration, logger *slog.Logger) error {
	command := ""
	if len(args) > 0 {
		command = strings.ToLower(args[0])
	}

	switch command {
	case "help", "-h", "--help":
		topic := ""
		if len(args) > 1 {
			topic = strings.ToLower(args[1])
		}
		showHelp(topic)
		return nil
	case "configure":
		return configure(args[1:], configFile, config)
	case "docs":
		return show("mdpresent docs", readmeContent, settings.Plain, logger)
	case "print":
		return presentFile(args[1:], configFile, config, true, logger)
	default:
		return presentFile(args, configFile, config, settings.Plain, logger)
	}
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// presentFile reads the named document, or the last one presented, and shows it.
func presentFile(args []string, configFile string, config *Configuration, plain bool, logger *slog.Logger) error {
	flagSet := flag.NewFlagSet("present", flag.ContinueOnError)
	plainFlag := flagSet.Bool("plain", false, "--plain")

	flagSet.Usage = func() {
		showHelp("")
	}

	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("failed to parse options")
	}

	path := config.LastDocument
	if len(flagSet.Args()) > 0 {
		path = flagSet.Args()[0]
	}

	if path == "" {
		showHelp("")
		return fmt.Errorf("must specify a markdown file")
	}

	document, err := readDocument(path)
	if err != nil {
		return err
	}

	if err := show(path, document, plain || *plainFlag, logger); err != nil {
		return err
	}

	if abs, err := filepath.Abs(path); err == nil && abs != config.LastDocument {
		config.LastDocument = abs
		if err := saveConfiguration(configFile, config); err != nil {
			logger.Warn("could not save configuration", "error", err)
		}
	}

	return nil
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// show parses a document and presents it, or prints it as plain text when
// asked to or when the process is not attached to a terminal.
func show(name, document string, plain bool, logger *slog.Logger) error {
	pages, err := loadPages(name, document)
	if err != nil {
		return err
	}

	if plain || !isInteractive() {
		return deck.WritePlain(os.Stdout, pages)
	}

	return present(pages, logger)
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func present(pages []deck.Page, logger *slog.Logger) error {
	screen, err := openTerminal()
	if err != nil {
		return err
	}
	defer screen.Restore()

	session, err := deck.NewSession(pages, screen, logger)
	if err != nil {
		return err
	}

	ctx, stop := withTermination(context.Background())
	defer stop()

	return session.Run(ctx, screen.readKeys(ctx), watchResize(ctx, screen.out))
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func readDocument(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &deck.ReadError{Path: path, Err: err}
	}

	return strings.ReplaceAll(string(content), "\r\n", "\n"), nil
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
func loadPages(name, document string) ([]deck.Page, error) {
	pages := deck.Parse(document)
	if len(pages) == 0 {
		return nil, fmt.Errorf("%s: %w", name, deck.ErrNoPages)
	}

	return pages, nil
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// openLogger returns a JSON debug logger writing to path, or a logger that
// discards everything when path is empty.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
