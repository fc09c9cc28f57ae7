package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/pflag"

	"github.com/tshono/ChromePie/internal/app"
	"github.com/tshono/ChromePie/internal/browser"
	"github.com/tshono/ChromePie/internal/prefs"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose    bool
	ListValues bool
	ShowLayout bool
}

const (
	envPrefs      = "CHROMEPIE_PREFS"
	envBookmarks  = "CHROMEPIE_BOOKMARKS"
	envURL        = "CHROMEPIE_URL"
	envIncognito  = "CHROMEPIE_INCOGNITO"
	envWidth      = "CHROMEPIE_WIDTH"
	envHeight     = "CHROMEPIE_HEIGHT"
	envShowFooter = "CHROMEPIE_FOOTER"
	envVerbose    = "CHROMEPIE_VERBOSE"
	envTrace      = "CHROMEPIE_TRACE"
	envLogFile    = "CHROMEPIE_LOG_FILE"
	envNoWatch    = "CHROMEPIE_NO_WATCH"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("chromepie", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	prefsPath := fs.String("prefs", envOrDefault(env, envPrefs, prefs.DefaultPath()), "path to the preference file (.yaml or .toml)")
	bookmarks := fs.String("bookmarks", envOrDefault(env, envBookmarks, browser.DefaultBookmarksPath()), "path to the bookmark database (:memory: keeps nothing)")
	url := fs.String("url", envOrDefault(env, envURL, browser.DefaultURL), "page the first tab opens")
	incognito := fs.Bool("incognito", envOrBool(env, envIncognito, false), "start in an incognito tab")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key hints (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show how each tap was dispatched")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	noWatch := fs.Bool("no-watch", envOrBool(env, envNoWatch, false), "do not rebuild the pie when the preference file changes")
	listValues := fs.Bool("list-values", false, "print every value a pie slot accepts and exit")
	showLayout := fs.Bool("show-layout", false, "print the configured slices and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, withSuggestion(fs, err)
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			PrefsPath:     *prefsPath,
			BookmarksPath: *bookmarks,
			StartURL:      *url,
			Incognito:     *incognito,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Verbose:       *verbose,
			Watch:         !*noWatch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:    *verbose,
			ListValues: *listValues,
			ShowLayout: *showLayout,
		},
		Flags: map[string]string{
			"prefs":     *prefsPath,
			"bookmarks": *bookmarks,
			"url":       *url,
			"incognito": strconv.FormatBool(*incognito),
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"noWatch":   strconv.FormatBool(*noWatch),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// withSuggestion adds the closest known flag name to an unknown-flag error.
func withSuggestion(fs *pflag.FlagSet, err error) error {
	const marker = "unknown flag: --"
	msg := err.Error()
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return err
	}
	name := strings.TrimSpace(msg[idx+len(marker):])
	var names []string
	fs.VisitAll(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	best, bestDist := "", -1
	for _, candidate := range names {
		dist := fuzzy.LevenshteinDistance(name, candidate)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	if best == "" || bestDist > len(name)/2+1 {
		return err
	}
	return fmt.Errorf("%w (did you mean --%s?)", err, best)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.PrefsPath) == "" {
		return errors.New("preference file path is empty")
	}
	if strings.TrimSpace(cfg.App.BookmarksPath) == "" {
		return errors.New("bookmark database path is empty")
	}
	return nil
}
