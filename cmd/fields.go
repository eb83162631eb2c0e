package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidewater-app/boatid/internal/output"
)

func newFieldsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the boat attributes the service can extract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}

			catalog, err := client.IdentificationFields(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch field catalog: %w", err)
			}

			return output.WriteCatalog(cmd.OutOrStdout(), outFormat, catalog)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}
