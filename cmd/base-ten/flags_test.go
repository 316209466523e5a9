package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/lixenwraith/base-ten/config"
)

func TestFlagsOverrideOnlyWhenGiven(t *testing.T) {
	opts, err := parseFlags([]string{"-start", "1234", "-mute"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	cfg := config.Default()
	cfg.Debug = true
	opts.apply(cfg)

	if cfg.Start != 999 {
		t.Errorf("Start = %d, want clamped 999", cfg.Start)
	}
	if !cfg.Audio.Muted {
		t.Error("-mute not applied")
	}
	if !cfg.Debug {
		t.Error("absent -debug overrode config")
	}
}

func TestFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.configPath != "" {
		t.Errorf("configPath = %q", opts.configPath)
	}

	cfg := config.Default()
	cfg.Start = 58
	opts.apply(cfg)
	if cfg.Start != 58 {
		t.Errorf("absent -start overrode config: %d", cfg.Start)
	}
}

func TestFlagsErrors(t *testing.T) {
	if _, err := parseFlags([]string{"-start", "many"}, io.Discard); err == nil {
		t.Error("expected error for non-numeric -start")
	}
	if _, err := parseFlags([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h = %v, want flag.ErrHelp", err)
	}
}

func TestRunRejectsBadConfigBeforeTerminal(t *testing.T) {
	if err := run([]string{"-config", "/nonexistent/base-ten.yaml"}); err == nil {
		t.Error("expected error for missing config file")
	}
}
