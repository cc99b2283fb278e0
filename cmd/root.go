package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/solodev/pwaicons/internal/app"
	"github.com/spf13/cobra"
)

var (
	staticDir string
	debug     bool
	stdioLog  string
	favicon   bool

	cfg     app.Config
	logger  app.Logger = app.NoopLogger{}
	logFile io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "pwaicons",
	Short: "pwaicons generates the briefcase PWA icon set",
	Long: `pwaicons generates the briefcase PWA icon set.

It writes icon-192x192.png, icon-192x192-maskable.png, icon-512x512.png and
icon-512x512-maskable.png into the static directory, which must already exist.`,
	Args:               cobra.NoArgs,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("favicon") {
			cfg.Favicon = favicon
		}
		a := app.New(cfg, cmd.OutOrStdout())
		a.Logger = logger
		return a.Generate(cmd.Context())
	},
}

// setup merges environment defaults with flags and opens the debug log.
func setup(cmd *cobra.Command, args []string) error {
	c, err := app.DefaultConfigFromEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("static-dir") {
		c.StaticDir = staticDir
	}
	if flags.Changed("debug") {
		c.Debug = debug
	}
	if flags.Changed("stdio-log") {
		c.StdioLog = stdioLog
	}
	cfg = c

	// Best-effort: crashes are still diagnosable when the console is left in
	// graphics mode by the preview.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			cmd.PrintErrln("stdio log redirect error:", err)
		}
	}

	if cfg.Debug {
		f, err := os.OpenFile(app.DebugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			cmd.PrintErrln(color.YellowString("WARNING: debug log open error: %v", err))
		} else {
			logFile = f
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled, static dir %s", cfg.StaticDir)
		}
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = app.NoopLogger{}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if cfg.Debug {
			logger.Errorf("main", "%v\n%v", err, errors.StackTraces(err))
		}
		_ = teardown(rootCmd, nil)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&staticDir, "static-dir", "d", app.DefaultStaticDir, "existing directory the icons are written to (env "+app.EnvStaticDir+")")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false, "enable debug logging to "+app.DebugLogPath+" (env "+app.EnvDebug+")")
	rootCmd.PersistentFlags().StringVarP(&stdioLog, "stdio-log", "", "", "redirect stdout+stderr (including panics) to this file (env "+app.EnvStdioLog+")")
	rootCmd.Flags().BoolVarP(&favicon, "favicon", "", false, "also write a 48x48 favicon.ico")
}
