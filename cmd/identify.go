package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tidewater-app/boatid/internal/api"
	"github.com/tidewater-app/boatid/internal/output"
)

func newIdentifyCmd() *cobra.Command {
	var (
		fields  []string
		noStore bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "identify <image>",
		Short: "Upload a photo and identify the boat in it",
		Long: `Uploads an image to the identification service and prints the
structured result: make, model, type, confidence, and any other
requested attributes. Fields the service could not determine are
shown as "Unknown".`,
		Example: `  # Identify with the default field set
  boatid identify marina.jpg

  # Ask for specific attributes and skip server-side storage
  boatid identify marina.jpg --fields make,model,year --no-store

  # Machine-readable output
  boatid identify marina.jpg -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			client, settings, err := newClient()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer file.Close()

			requestedFields := fields
			if len(requestedFields) == 0 {
				requestedFields = settings.DefaultFields
			}

			result, err := client.Identify(cmd.Context(), api.IdentifyRequest{
				Filename:        filepath.Base(args[0]),
				Image:           file,
				RequestedFields: requestedFields,
				StoreResults:    !noStore,
			})
			if err != nil {
				return fmt.Errorf("identification failed: %w", err)
			}

			return output.WriteResult(cmd.OutOrStdout(), outFormat, result)
		},
	}

	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "Attributes to request (default from config)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Do not store the result server side")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}
