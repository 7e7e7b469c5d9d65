package commands

import (
	"github.com/spf13/cobra"

	"numconv/internal/server"
)

// serve: run the HTTP conversion server.
func serveCmd() *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversion HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Cfg
			if address != "" {
				cfg.Service.Address = address
			}

			listener, err := server.NewListener(cfg.Service.Address)
			if err != nil {
				return err
			}
			return server.New(appCtx.Log, cfg, appCtx.Converter, listener).Run()
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address (overrides config)")
	return cmd
}
