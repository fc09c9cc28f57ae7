package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tshono/ChromePie/internal/app"
	"github.com/tshono/ChromePie/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			PrefsPath:     "prefs.yaml",
			BookmarksPath: ":memory:",
			Width:         80,
			Height:        24,
			ShowFooter:    true,
			Verbose:       true,
			Watch:         true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"prefs":   "prefs.yaml",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--prefs", "prefs.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["prefs"] != "prefs.yaml" {
		t.Fatalf("expected prefs flag %q, got %v", "prefs.yaml", flagsValue["prefs"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["verbose"] != "true" {
		t.Fatalf("expected verbose flag true, got %v", flagsValue["verbose"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	paths, ok := payload["paths"].(map[string]string)
	if !ok || paths["bookmarks"] != ":memory:" {
		t.Fatalf("expected paths in payload, got %v", payload["paths"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestNoWatchDisablesWatcherInPayload(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"--no-watch"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Watch {
		t.Fatalf("expected --no-watch to disable the watcher")
	}
	payload := startupTracePayload(cfg)
	flagsValue := payload["flags"].(map[string]interface{})
	if flagsValue["noWatch"] != "true" {
		t.Fatalf("expected noWatch flag true, got %v", flagsValue["noWatch"])
	}
	if got := payload["config"].(config.Config).App.Watch; got {
		t.Fatalf("expected payload config to carry Watch=false")
	}
}

func TestRunListingModes(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.yaml")

	cfg, err := config.LoadArgs([]string{"--prefs", prefsPath}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var buf bytes.Buffer
	if handled, err := runListing(&buf, cfg); handled || err != nil || buf.Len() != 0 {
		t.Fatalf("expected no listing without list flags, got handled=%v err=%v out=%q", handled, err, buf.String())
	}

	cfg, err = config.LoadArgs([]string{"--prefs", prefsPath, "--list-values"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	buf.Reset()
	if handled, err := runListing(&buf, cfg); !handled || err != nil {
		t.Fatalf("expected catalog listing, got handled=%v err=%v", handled, err)
	}
	if !strings.HasPrefix(buf.String(), "VALUE") || !strings.Contains(buf.String(), "show_tabs") {
		t.Fatalf("unexpected catalog output:\n%s", buf.String())
	}

	cfg, err = config.LoadArgs([]string{"--prefs", prefsPath, "--show-layout"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	buf.Reset()
	if handled, err := runListing(&buf, cfg); !handled || err != nil {
		t.Fatalf("expected layout listing, got handled=%v err=%v", handled, err)
	}
	if !strings.HasPrefix(buf.String(), "SLICE") || !strings.Contains(buf.String(), "trigger side: both") {
		t.Fatalf("unexpected layout output:\n%s", buf.String())
	}
}
