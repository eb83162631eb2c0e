package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tidewater-app/boatid/internal/api"
	"github.com/tidewater-app/boatid/internal/output"
)

func newSearchCmd() *cobra.Command {
	var (
		page    int
		perPage int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Free-text search over stored identifications",
		Example: `  boatid search "center console"
  boatid search sailboat --page 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			client, settings, err := newClient()
			if err != nil {
				return err
			}

			opts := api.ListOptions{
				Page:    page,
				PerPage: perPage,
			}
			if opts.PerPage == 0 {
				opts.PerPage = settings.PerPage
			}

			result, err := client.Search(cmd.Context(), strings.Join(args, " "), opts)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			return output.WritePage(cmd.OutOrStdout(), outFormat, result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Results per page (default from config)")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}
