package main

import (
	"fmt"
	"os"

	"github.com/datatug/fexplorer/pkg/files/osfile"
	"github.com/datatug/fexplorer/pkg/ftstate"
	"github.com/datatug/fexplorer/pkg/fxlog"
	"github.com/datatug/fexplorer/pkg/platform"
	"github.com/datatug/fexplorer/pkg/profiling"
	"github.com/datatug/fexplorer/pkg/session"
	"github.com/datatug/fexplorer/pkg/settings"
	"github.com/datatug/fexplorer/pkg/ui"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var version = "dev"

var osExit = os.Exit

type options struct {
	dir        string
	config     string
	logFile    string
	debug      bool
	cpuProfile string
	memProfile string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          "fexplorer",
		Short:        "Browse and manage files in the terminal",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return explore(o)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&o.dir, "dir", "", "directory to start in (default is the working directory)")
	flags.StringVar(&o.config, "config", "", "settings file (default is ~/.fexplorer/fexplorer.yaml)")
	flags.StringVar(&o.logFile, "log-file", "", "write log to `file`")
	flags.BoolVar(&o.debug, "debug", false, "log at debug level")
	flags.StringVar(&o.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&o.memProfile, "memprofile", "", "write memory profile to `file`")
	return cmd
}

func explore(o options) error {
	if o.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(o.cpuProfile)
		defer stopCPUProfiling()
	}
	if o.memProfile != "" {
		defer profiling.DoMemProfiling(o.memProfile)()
	}

	cfg, err := loadSettings(o.config)
	if err != nil {
		return err
	}
	logOptions := fxlog.Options{Level: cfg.Log.Level, File: cfg.Log.File}
	if o.debug {
		logOptions.Level = "debug"
	}
	if o.logFile != "" {
		logOptions.File = o.logFile
	}
	log, closer, err := fxlog.New(logOptions)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()
	ftstate.SetLogger(log)
	profiling.SetLogger(log)

	s, err := session.New(session.Options{
		StartDir: o.dir,
		Settings: cfg,
		Platform: platform.NewNative(log),
		Store:    osfile.NewStore(),
		Logger:   log,
	})
	if err != nil {
		return err
	}

	app := newApp()
	ui.New(app, s).Setup()
	return run(app)
}

func loadSettings(path string) (settings.Settings, error) {
	if path == "" {
		var err error
		if path, err = settings.DefaultPath(); err != nil {
			return settings.Default(), nil
		}
	}
	return settings.Load(path)
}

var newApp = func() ui.App {
	return ui.NewApp(tview.NewApplication())
}

type application interface{ Run() error }

var run = func(app application) error {
	return app.Run()
}
