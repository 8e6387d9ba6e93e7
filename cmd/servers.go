package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newServersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List configured DICOMweb servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			servers, err := app.servers.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(servers) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No servers configured.")
				return err
			}

			for _, server := range servers {
				mode := "eager"
				if server.EnableLazyLoad {
					mode = "lazy"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%s)\n", server.Name, server.WadoRoot, mode); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
