package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"numconv/internal/domain"
)

// convert <value>: translate a value between representations, locally or
// against a remote server.
func convertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value between number representations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.ConversionRequest{
				Input:      args[0],
				InputType:  domain.Kind(from),
				OutputType: domain.Kind(to),
			}

			var res domain.ConversionResult
			if appCtx.Remote != nil {
				var err error
				res, err = appCtx.Remote.Convert(req)
				if err != nil {
					return err
				}
			} else {
				res = appCtx.Converter.Convert(req.Input, req.InputType, req.OutputType)
			}

			if res.Error != nil {
				return fmt.Errorf("%s", *res.Error)
			}
			fmt.Println(*res.Result)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "input representation (text|binary|octal|decimal|hexadecimal|base64)")
	cmd.Flags().StringVar(&to, "to", "", "output representation (text|binary|octal|decimal|hexadecimal|base64)")
	cmd.Flags().StringVar(&serverURL, "server", "", "remote numconv base URL (e.g. http://127.0.0.1:8080)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
