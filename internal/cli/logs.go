package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/gallery/internal/app"
	"github.com/five82/gallery/internal/logtail"
)

func newLogsCmd(root *rootOptions) *cobra.Command {
	var lines int
	var raw bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the tail of the gallery log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ResolveConfig(root.appOptions())
			if err != nil {
				return err
			}
			if cfg.LogFile == "" {
				return fmt.Errorf("logging is disabled (log_file is empty)")
			}
			tail, err := logtail.Read(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			if len(tail) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "no log entries in %s\n", cfg.LogFile)
				return err
			}
			if !raw {
				tail = logtail.FormatLines(tail)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tail, "\n"))
			return err
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 for all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print JSON lines unformatted")
	return cmd
}
