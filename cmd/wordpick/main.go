/*
Package main runs wordpick as a msgpack IPC server or an interactive CLI.

wordpick finds dictionary words in English or Japanese word lists in three
ways: wildcard patterns where '?' stands for exactly one character, letter
picking where "1,3" derives a word from the 1st and 3rd letter of every word,
and character selection where pressed character buttons spell the word.

# Usage

Start the IPC server on stdin/stdout:

	wordpick -data /path/to/lists

Run the interactive CLI against word lists served over HTTP:

	wordpick -c -url https://example.com/lists -lang ja -mode select

The data directory (or base URL) must provide words_en.txt and words_ja.txt,
one word per line. Lists are read again for every search.

# Configuration

A TOML file is created with defaults on first start:

	[dict]
	data_dir = "data/"
	base_url = ""
	max_words = 0
	fetch_timeout = 30

	[search]
	fold_pattern = true
	exclude_self = true

	[cli]
	default_lang = "en"
	default_mode = "positions"
	show_timings = false

WORDPICK_* environment variables override the file, flags override both.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordpick/internal/cli"
	"github.com/bastiangx/wordpick/internal/logger"
	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/config"
	"github.com/bastiangx/wordpick/pkg/dictionary"
	"github.com/bastiangx/wordpick/pkg/search"
	"github.com/bastiangx/wordpick/pkg/server"
	"github.com/bastiangx/wordpick/pkg/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordpick"
	gh      = "https://github.com/bastiangx/wordpick"
)

// sigHandler cancels ctx on SIGINT/SIGTERM and exits. Blocking stdin reads
// cannot observe the cancellation, so the process ends here.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary source and searcher, then hands over to the
// server or the CLI.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", defaults.Dict.DataDir, "Directory containing words_en.txt and words_ja.txt")
	baseURL := flag.String("url", defaults.Dict.BaseURL, "Base URL serving the word lists, replaces -data")
	lang := flag.String("lang", defaults.CLI.DefaultLang, "Dictionary language: en or ja")
	mode := flag.String("mode", defaults.CLI.DefaultMode, "Pattern mode: positions or select")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI instead of the IPC server")
	configFile := flag.String("config", "", "Path to a custom config file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	defaultConfigPath := pathResolver.GetConfigPath("wordpick.toml")
	cfg, usedPath, err := config.LoadConfigWithPriority(*configFile, defaultConfigPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s), config dir: (%s)",
		utils.GetAbsolutePath(usedPath), utils.GetAbsolutePath(pathResolver.GetConfigDir()))

	// flags given on the command line win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Dict.DataDir = *dataDir
		case "url":
			cfg.Dict.BaseURL = *baseURL
		case "lang":
			cfg.CLI.DefaultLang = *lang
		case "mode":
			cfg.CLI.DefaultMode = *mode
		}
	})

	source := newSource(cfg, pathResolver)
	loader := dictionary.NewLoader(source, cfg.Dict.MaxWords)
	searcher := search.NewSearcher(loader, cfg.SearchOptions())

	locale := dictionary.ParseLocale(cfg.CLI.DefaultLang)
	searchMode := search.ParseMode(cfg.CLI.DefaultMode)
	log.Debug("Search setup", "lang", locale, "mode", searchMode,
		"fold", cfg.Search.FoldPattern, "excludeSelf", cfg.Search.ExcludeSelf, "maxWords", cfg.Dict.MaxWords)

	if *cliMode {
		sess := session.New(searcher, locale, searchMode)
		inputHandler := cli.NewInputHandler(sess, os.Stdin, os.Stdout, cfg.CLI.ShowTimings)
		if err := inputHandler.Start(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(searcher, locale, searchMode, os.Stdin, os.Stdout)
	showStartupInfo(cfg)

	if err := srv.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// newSource picks the HTTP source when a base URL is configured and the
// resolved data directory otherwise.
func newSource(cfg *config.Config, pr *utils.PathResolver) dictionary.Source {
	if cfg.Dict.BaseURL != "" {
		log.Debugf("Fetching word lists from: %s", cfg.Dict.BaseURL)
		return dictionary.NewHTTPSource(cfg.Dict.BaseURL, &http.Client{Timeout: cfg.Timeout()})
	}

	dir := pr.GetDataDir(cfg.Dict.DataDir)
	if !dictionary.HasWordLists(dir) {
		log.Warnf("No usable word lists in %s, searches will fail to load", dir)
	}
	log.Debugf("Using data dir at: %s", utils.GetAbsolutePath(dir))
	return dictionary.NewDirSource(dir)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordpick ] Finds words by wildcard, letter picks and selection")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info on stderr, stdout belongs to IPC.
func showStartupInfo(cfg *config.Config) {
	l := logger.NewWithConfig(os.Stderr, AppName, log.InfoLevel, false, false, log.TextFormatter)
	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	if cfg.Dict.BaseURL != "" {
		l.Infof("word lists: ( %s )", cfg.Dict.BaseURL)
	} else {
		l.Infof("data dir: ( %s )", cfg.Dict.DataDir)
	}
	l.Info("status: ready")
}
