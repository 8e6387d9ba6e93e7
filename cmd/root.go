package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wadofetch",
		Short:         "wadofetch: retrieve study metadata from DICOMweb servers",
		Long:          "wadofetch retrieves per-instance study metadata from configured DICOMweb (WADO-RS/QIDO-RS) servers, normalizes it into a Study/Series/Instance tree and prints it, loading series lazily when the server is configured for it.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRetrieveCmd(app),
		newServersCmd(app),
	)

	return rootCmd
}
