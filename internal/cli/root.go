package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/five82/gallery/internal/app"
)

// rootOptions holds flags shared by every command.
type rootOptions struct {
	configPath string
	apiURL     string
	limit      int
	logFile    string
}

func (o *rootOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: o.configPath,
		APIURL:     o.apiURL,
		Limit:      o.limit,
		LogFile:    o.logFile,
	}
}

// NewRootCmd builds the gallery command tree. Running it without a
// subcommand starts the TUI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var prefsPath string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the Lorem Picsum catalogue in the terminal",
		Long: `Gallery lists images from the Lorem Picsum API and previews the selected one.

Use the arrow keys to step through the list; navigation wraps at both ends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runOpts := opts.appOptions()
			runOpts.PrefsPath = prefsPath
			return app.Run(cmd.Context(), runOpts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/gallery/config.toml)")
	flags.StringVar(&opts.apiURL, "api", "", "picsum API base URL")
	flags.IntVar(&opts.limit, "limit", 0, "number of images to list")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/gallery/prefs.toml)")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newLogsCmd(opts))

	return cmd
}
