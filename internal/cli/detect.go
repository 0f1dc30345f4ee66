package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaengine/pkg/logger"
)

func newDetectCmd(a *app) *cobra.Command {
	var showHash bool

	cmd := &cobra.Command{
		Use:   "detect [user-agent...]",
		Short: "Print the rendering engine of each user agent",
		Long: `Print the rendering engine of each user agent given as an argument, ` +
			`or of each line of standard input when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, ua := range args {
					a.printEngine(out, ua, showHash)
				}
				return nil
			}
			return readLines(cmd.InOrStdin(), func(ua string) {
				a.printEngine(out, ua, showHash)
			})
		},
	}
	cmd.Flags().BoolVar(&showHash, "hash", false, "append the engine hash to each line")
	return cmd
}

func (a *app) printEngine(out io.Writer, ua string, showHash bool) {
	engine, err := a.detector.Detect(ua)
	a.log.Debug("engine detected", logger.UserAgent(ua), logger.Engine(engine), logger.Error(err))

	if showHash {
		fmt.Fprintf(out, "%s\t%d\n", engine, engine.Hash())
		return
	}
	fmt.Fprintln(out, engine)
}
