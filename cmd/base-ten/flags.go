package main

import (
	"flag"
	"io"

	"github.com/lixenwraith/base-ten/config"
	"github.com/lixenwraith/base-ten/model"
)

// options are the command-line overrides; only flags given on the command line apply
type options struct {
	configPath string
	start      int
	mute       bool
	debug      bool

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("base-ten", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{set: make(map[string]bool)}
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.IntVar(&o.start, "start", 0, "number to build at startup (0-999)")
	fs.BoolVar(&o.mute, "mute", false, "start with sound muted")
	fs.BoolVar(&o.debug, "debug", false, "write debug logs to the log directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overlays the flags that were given onto cfg
func (o *options) apply(cfg *config.Config) {
	if o.set["start"] {
		cfg.Start = model.Clamp(o.start)
	}
	if o.set["mute"] {
		cfg.Audio.Muted = o.mute
	}
	if o.set["debug"] {
		cfg.Debug = o.debug
	}
}
