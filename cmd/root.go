package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tidewater-app/boatid/internal/api"
	"github.com/tidewater-app/boatid/internal/config"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boatid",
		Short: "Identify boats from photos via the boat-identification API",
		Long: `boatid is the command line companion for the boat-identification service.

Upload a photo to identify the make, model, and type of the boat in it,
browse and search previously stored identifications, or run the local
web shell that mirrors the mobile capture-and-identify flow.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newIdentifyCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newFieldsCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// newClient loads the settings and builds the API client every command uses.
func newClient() (*api.Client, *config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return api.New(settings), settings, nil
}
