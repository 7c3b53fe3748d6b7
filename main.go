package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zackbart/browse/internal/browser"
	"github.com/zackbart/browse/internal/config"
	"github.com/zackbart/browse/internal/content"
	"github.com/zackbart/browse/internal/listing"
	"github.com/zackbart/browse/internal/locale"
	"github.com/zackbart/browse/internal/logging"
	"github.com/zackbart/browse/internal/ui"
)

type options struct {
	space      string
	configPath string
	logFile    string
	debug      bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.space, "space", "s", "", "tab width in columns (default 4)")
	fs.StringVar(&o.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	fs.StringVar(&o.logFile, "log-file", "", "write diagnostics to this file")
	fs.BoolVar(&o.debug, "debug", false, "log at debug level")
}

// resolve loads the config file and applies the flags on top of it.
func (o *options) resolve(fs *pflag.FlagSet) (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if fs.Changed("space") {
		cfg.View.TabWidth = config.ParseSpace(o.space)
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "browse [dir]",
		Short:         "Browse directories and read files in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			start := "."
			if len(args) == 1 {
				start = args[0]
			}
			return run(cfg, start)
		},
	}
	// Unrecognised flags are ignored, not fatal.
	cmd.FParseErrWhitelist.UnknownFlags = true
	opts.bind(cmd.Flags())
	return cmd
}

func run(cfg *config.Config, start string) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	tr := locale.New(cfg.Locale)

	var highlighter content.Highlighter = content.NewChroma(cfg.View.Theme)
	if cfg.View.Markdown {
		md, err := content.NewMarkdown(cfg.View.MarkdownWrap, highlighter)
		if err != nil {
			logger.WithError(err).Warn("markdown rendering disabled")
		} else {
			highlighter = md
		}
	}

	ctrl, err := browser.New(start, browser.Options{
		Listing: listingOptions(cfg.Listing),
		Loader:  content.NewLoader(highlighter, cfg.View.TabWidth, tr.T(locale.OpenFailed)),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(ui.New(ctrl, tr, logger), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	logger.Info("browser closed")
	return nil
}

func listingOptions(c config.ListingConfig) listing.Options {
	opts := listing.Options{SkipUnreadable: c.SkipUnreadable}
	if c.Sort == config.SortName {
		opts.Sort = listing.SortByName
	}
	return opts
}

// normalizeArgs drops a trailing --space/-s that has no value, so it falls
// back to the default instead of failing.
func normalizeArgs(args []string) []string {
	if n := len(args); n > 0 {
		switch args[n-1] {
		case "-s", "--space":
			return args[:n-1]
		}
	}
	return args
}

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
