package commands

import (
	"github.com/spf13/cobra"

	"numconv/internal/app"
)

var (
	cfgFile   string
	logLevel  string
	serverURL string
	appCtx    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "numconv",
		Short:         "Convert numbers between textual representations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Options{
				ConfigFile: cfgFile,
				LogLevel:   logLevel,
				ServerURL:  serverURL,
			})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.numconv/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")

	root.AddCommand(serveCmd(), convertCmd())
	return root.Execute()
}
