// Copyright 2025 The WordBiter Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the board solver server and CLI application.

WordBiter enumerates every dictionary word reachable from a Word Bites
style board: single-letter tiles plus multi-letter pieces declared
horizontal or vertical. A piece is atomic along its own axis and
splits into individual letters along the other one, with all fragments
of a piece mutually exclusive inside one word. The search is a pruned
depth-first enumeration backed by a Patricia trie over the dictionary.

# Usage

Run the interactive CLI against the system word list:

	wordbiter -c

Use a custom word list and enable debug logging:

	wordbiter -c -dict dictionaries/scrabble_words.txt -d

Start the msgpack IPC server for host integration:

	wordbiter -dict dictionaries/scrabble_words.txt

# Configuration

Runtime configuration is managed through a TOML file that is created
with defaults on first run:

	[solver]
	min_length = 3
	max_horizontal_length = 8
	max_vertical_length = 9
	only_direction = "both"

	[dict]
	path = ""
	min_word_length = 3

Flags override the file for one invocation.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. A solve request
carries the tile lists and optional per-request limits:

	{"id": "req1", "s": ["A", "E", "T"], "h": ["RD"]}

The response holds both axis word lists sorted longest first, counts
and the solve time in microseconds. See pkg/server for the full frame
catalog.

# Command Line Flags

	-version    Show current version
	-d          Toggle debug mode
	-c          Run interactive CLI instead of server mode
	-config     Custom config file path
	-dict       Path to the word list (.txt or .bin)
	-minlen     Minimum word length
	-maxh       Maximum horizontal word length
	-maxv       Maximum vertical word length
	-dir        Search direction: h, v or both
	-limit      Words displayed per axis in CLI mode
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/wordbiter/internal/cli"
	"github.com/bastiangx/wordbiter/internal/utils"
	"github.com/bastiangx/wordbiter/pkg/config"
	"github.com/bastiangx/wordbiter/pkg/dictionary"
	"github.com/bastiangx/wordbiter/pkg/server"
	"github.com/bastiangx/wordbiter/pkg/solver"
)

const (
	Version = "0.3.0"
	AppName = "wordbiter"
	gh      = "https://github.com/bastiangx/wordbiter"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI instead of server mode")
	configPath := flag.String("config", "", "Custom config file path")
	dictPath := flag.String("dict", "", "Path to the word list (.txt or .bin)")
	minLen := flag.Int("minlen", defaultConfig.Solver.MinLength, "Minimum word length")
	maxH := flag.Int("maxh", defaultConfig.Solver.MaxHorizontalLength, "Maximum horizontal word length")
	maxV := flag.Int("maxv", defaultConfig.Solver.MaxVerticalLength, "Maximum vertical word length")
	dir := flag.String("dir", defaultConfig.Solver.OnlyDirection, "Search direction: h, v or both")
	limit := flag.Int("limit", defaultConfig.CLI.DisplayLimit, "Words displayed per axis in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// Flags win over file values for this run.
	appConfig.Solver.MinLength = *minLen
	appConfig.Solver.MaxHorizontalLength = *maxH
	appConfig.Solver.MaxVerticalLength = *maxV
	appConfig.Solver.OnlyDirection = *dir
	appConfig.CLI.DisplayLimit = *limit

	direction, err := solver.ParseDirection(appConfig.Solver.OnlyDirection)
	if err != nil {
		log.Fatalf("Invalid -dir value: %v", err)
	}

	userDict := *dictPath
	if userDict == "" {
		userDict = appConfig.Dict.Path
	}
	candidates := pathResolver.DictionaryCandidates(userDict)
	dict := dictionary.LoadWithFallback(candidates, appConfig.Dict.MinWordLength)
	log.Debugf("Dictionary ready: %d words from %s", dict.Len(), dict.Source())

	opts := solver.Options{
		MinLength:     appConfig.Solver.MinLength,
		MaxHorizontal: appConfig.Solver.MaxHorizontalLength,
		MaxVertical:   appConfig.Solver.MaxVerticalLength,
		Direction:     direction,
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(dict, opts, appConfig.CLI.DisplayLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(dict, appConfig)

	showStartupInfo(dict)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays the styled -version output.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordBiter ] Finds every word your tiles can spell!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dict *dictionary.Dict) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" WordBiter ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary: %d words ( %s )", dict.Len(), dict.Source())
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
