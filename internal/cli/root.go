// Package cli implements the engineinfo command-line interface.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaengine/pkg/config"
	"github.com/dmitrymomot/uaengine/pkg/enginedetect"
	"github.com/dmitrymomot/uaengine/pkg/logger"
)

// maxLineSize bounds a single user agent line read from input.
const maxLineSize = 1 << 20

// app holds the dependencies shared by all subcommands.
// It is populated in the root PersistentPreRunE.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	detector *enginedetect.Detector
}

// NewRootCmd builds the engineinfo command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var envFile string

	root := &cobra.Command{
		Use:   "engineinfo",
		Short: "Identify browser rendering engines from User-Agent strings.",
		Long: `engineinfo detects the rendering engine (Blink, Gecko, WebKit, Trident, ...) ` +
			`announced by User-Agent strings and aggregates them into reports. ` +
			`Settings are read from UAENGINE_* environment variables and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load settings from this .env file")

	root.AddCommand(newDetectCmd(a), newReportCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command, envFile string) error {
	var (
		cfg config.Config
		err error
	)
	if envFile != "" {
		cfg, err = config.LoadFrom(envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithFormat(format),
		logger.WithLevel(cfg.SlogLevel()),
		logger.WithAttr(slog.String("service", "engineinfo")),
	)
	a.detector = enginedetect.New(
		enginedetect.WithCacheSize(cfg.CacheSize),
		enginedetect.WithLogger(a.log),
	)
	return nil
}

// readLines calls fn for every non-blank line of r.
func readLines(r io.Reader, fn func(line string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read user agents: %w", err)
	}
	return nil
}
