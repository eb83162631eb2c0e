package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidewater-app/boatid/internal/output"
)

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored identification",
		Example: `  boatid show 42
  boatid show 42 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			client, _, err := newClient()
			if err != nil {
				return err
			}

			record, err := client.GetIdentification(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch identification %s: %w", args[0], err)
			}

			return output.WriteRecord(cmd.OutOrStdout(), outFormat, record)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}
