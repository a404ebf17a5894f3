/*
Package main implements the lexsift suggestion filter and CLI application.

lexsift filters a candidate word-suggestion list against a reference
dictionary: a suggestion line survives only when its lead word (the first
whitespace-delimited token) is already a dictionary member. Surviving lines
are written to the output file in their original order, trimmed and
newline-terminated, in one shot.

The same dictionary also powers an interactive word-check mode and a msgpack
IPC server mode for integration with editors and other tooling.

# Usage

Run the filter with the conventional file names:

	lexsift

which reads dict.txt and suggestion_dict.txt, prompts for the number of
lines to process, and writes suggestion_dict_processed.txt. All three paths
and the count can be given explicitly:

	lexsift -dict words.txt -in candidates.txt -out kept.txt -n 500

Before processing, the filter prints True or False for the membership of a
probe word (default "the") in the dictionary; scripts downstream grep for
that exact spelling.

Run the interactive check loop:

	lexsift -c -limit 10

Run the IPC server:

	lexsift -serve

# Dictionary formats

The dictionary is a plain text file with one word per line. A compiled
dictionary can be snapshotted to msgpack and reloaded without re-parsing:

	lexsift -dict words.txt -save-snapshot words.bin
	lexsift -dict words.bin -n 100

Snapshots keep load order, so suggestion ranking is stable across formats.

# Configuration

Runtime configuration is managed through a TOML file holding filter paths,
dictionary settings, and CLI defaults:

	[filter]
	dict_path = "dict.txt"
	input_path = "suggestion_dict.txt"
	output_path = "suggestion_dict_processed.txt"
	probe_word = "the"

	[dict]
	max_words = 0
	snapshot_path = ""

	[cli]
	suggest_limit = 8

The config file is automatically created with defaults if it doesn't exist.
Explicit command line flags always win over config values.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. Requests carry an id
and an op ("check", "suggest", "filter", "health"); responses include timing
in microseconds. See the server package for the message shapes.

# Error handling

The filter fails fast: a missing input file, a non-numeric count, or a count
larger than the suggestion list terminate the run with a non-zero exit and
no partial output.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lexsift/lexsift/internal/cli"
	"github.com/lexsift/lexsift/internal/utils"
	"github.com/lexsift/lexsift/pkg/config"
	"github.com/lexsift/lexsift/pkg/dictionary"
	"github.com/lexsift/lexsift/pkg/filter"
	"github.com/lexsift/lexsift/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "lexsift"
	gh      = "https://github.com/lexsift/lexsift"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to run the filter, CLI loop or IPC server.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	dictPath := flag.String("dict", defaults.Filter.DictPath, "Reference dictionary file (.txt or snapshot)")
	inputPath := flag.String("in", defaults.Filter.InputPath, "Suggestion file to filter")
	outputPath := flag.String("out", defaults.Filter.OutputPath, "Output file for kept suggestion lines")
	count := flag.Int("n", -1, "Number of suggestion lines to process (omit to be prompted)")
	probeWord := flag.String("probe", defaults.Filter.ProbeWord, "Word whose membership is printed before processing")
	checkMode := flag.Bool("c", false, "Run the interactive word-check loop")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server on stdin/stdout")
	suggestLimit := flag.Int("limit", defaults.CLI.SuggestLimit, "Number of suggestions to show for a missed word")
	wordLimit := flag.Int("words", defaults.Dict.MaxWords, "Maximum number of words to load (use 0 for all words)")
	snapshotOut := flag.String("save-snapshot", "", "Write the loaded dictionary as a msgpack snapshot and exit")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ lexsift ] Sifts suggestion lists through a reference dictionary!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	cfg, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Warnf("Falling back to builtin config: %v", err)
		cfg = config.DefaultConfig()
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	// Explicit flags win over config file values.
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if !setFlags["dict"] && cfg.Filter.DictPath != "" {
		*dictPath = cfg.Filter.DictPath
	}
	if !setFlags["in"] && cfg.Filter.InputPath != "" {
		*inputPath = cfg.Filter.InputPath
	}
	if !setFlags["out"] && cfg.Filter.OutputPath != "" {
		*outputPath = cfg.Filter.OutputPath
	}
	if !setFlags["probe"] && cfg.Filter.ProbeWord != "" {
		*probeWord = cfg.Filter.ProbeWord
	}
	if !setFlags["limit"] {
		*suggestLimit = cfg.CLI.SuggestLimit
	}
	if !setFlags["words"] {
		*wordLimit = cfg.Dict.MaxWords
	}
	if !setFlags["dict"] && cfg.Dict.SnapshotPath != "" && utils.FileExists(cfg.Dict.SnapshotPath) {
		log.Debugf("Preferring snapshot from config: %s", cfg.Dict.SnapshotPath)
		*dictPath = cfg.Dict.SnapshotPath
	}

	dict, err := loadDictionary(*dictPath, *wordLimit)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debugf("Dictionary ready: %d words from (%s)", dict.Len(), *dictPath)

	if *snapshotOut != "" {
		if err := dictionary.SaveSnapshot(dict, *snapshotOut); err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}
		log.Infof("Snapshot written to %s", *snapshotOut)
		return
	}

	if *serveMode {
		showStartupInfo(*dictPath, dict.Len())
		srv := server.NewStdioServer(dict)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if *checkMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(dict, *suggestLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	runFilter(dict, *inputPath, *outputPath, *probeWord, *count)
}

// loadDictionary opens the dictionary in whatever format the path carries,
// applying the word cap for text files. Snapshots are always loaded whole.
func loadDictionary(path string, maxWords int) (*dictionary.Dict, error) {
	format, err := dictionary.DetectFileFormat(path)
	if err != nil {
		// Unrecognized extension: treat as text, the permissive default.
		log.Debugf("Format detection failed (%v), assuming text", err)
		return dictionary.LoadFileLimit(path, maxWords)
	}
	if format == dictionary.FormatSnapshot {
		return dictionary.LoadSnapshot(path)
	}
	return dictionary.LoadFileLimit(path, maxWords)
}

// runFilter performs the one-shot filter run: probe print, count prompt if
// needed, membership filtering, single output write.
func runFilter(dict *dictionary.Dict, inputPath, outputPath, probeWord string, count int) {
	// Printed before processing; downstream scripts rely on the exact
	// True/False spelling.
	fmt.Println(filter.Probe(dict, probeWord))

	lines, err := filter.LoadSuggestions(inputPath)
	if err != nil {
		log.Fatalf("Failed to load suggestions: %v", err)
	}

	if count < 0 {
		count, err = cli.ReadCount(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatalf("Failed to read count: %v", err)
		}
	}

	res, err := filter.Run(dict, lines, count)
	if err != nil {
		if errors.Is(err, filter.ErrCountOutOfRange) {
			log.Fatalf("Count out of range: %v", err)
		}
		log.Fatalf("Filter failed: %v", err)
	}

	if err := filter.WriteOutput(outputPath, res.Kept); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	log.Infof("Kept %d of %d lines -> %s", len(res.Kept), res.Scanned, outputPath)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictPath string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println(" lexsift ")
	println("=========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("dictionary: ( %s ) [%d words]", dictPath, wordCount)
	log.Info("status: ready")
	println("=========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
