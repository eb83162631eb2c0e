package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tidewater-app/boatid/internal/api"
	"github.com/tidewater-app/boatid/internal/output"
)

func newHistoryCmd() *cobra.Command {
	var (
		page       int
		perPage    int
		isBoat     string
		boatType   string
		confidence string
		maker      string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored identifications",
		Long: `Lists identifications previously stored by the service, one page at a
time. Results can be narrowed by boat type, confidence, make, or by
whether a boat was detected at all.`,
		Example: `  boatid history
  boatid history --page 2 --per-page 25
  boatid history --boat-type sailboat --confidence high
  boatid history --is-boat false`,
		Args: cobra.NoArgs,
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
				Page:       page,
				PerPage:    perPage,
				BoatType:   boatType,
				Confidence: confidence,
				Make:       maker,
			}
			if opts.PerPage == 0 {
				opts.PerPage = settings.PerPage
			}
			if isBoat != "" {
				value, err := strconv.ParseBool(isBoat)
				if err != nil {
					return fmt.Errorf("invalid --is-boat value %q: %w", isBoat, err)
				}
				opts.IsBoat = &value
			}

			result, err := client.ListIdentifications(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to list identifications: %w", err)
			}

			return output.WritePage(cmd.OutOrStdout(), outFormat, result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Results per page (default from config)")
	cmd.Flags().StringVar(&isBoat, "is-boat", "", "Filter by detection result (true or false)")
	cmd.Flags().StringVar(&boatType, "boat-type", "", "Filter by boat type")
	cmd.Flags().StringVar(&confidence, "confidence", "", "Filter by confidence (high, medium, or low)")
	cmd.Flags().StringVar(&maker, "make", "", "Filter by manufacturer")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}
