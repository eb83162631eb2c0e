package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tidewater-app/boatid/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects how command results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an --output flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s (expected text, json, or yaml)", s)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}

// WriteResult renders a fresh identification result.
func WriteResult(w io.Writer, format Format, result *models.IdentificationResult) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	}

	if !result.IsBoat {
		message := result.Message
		if message == "" && result.BoatDetails != nil {
			message = result.BoatDetails.Description
		}
		if message == "" {
			message = "The image does not appear to contain a boat."
		}
		fmt.Fprintf(w, "No boat detected: %s\n", message)
		return nil
	}

	fmt.Fprintf(w, "Boat identified (confidence: %s)\n", models.Display(result.Confidence))
	if result.IdentificationID != "" {
		fmt.Fprintf(w, "  ID:            %s\n", result.IdentificationID)
	}

	details := result.BoatDetails
	if details == nil {
		details = &models.BoatDetails{}
	}
	fmt.Fprintf(w, "  Make:          %s\n", details.DisplayMake())
	fmt.Fprintf(w, "  Model:         %s\n", details.DisplayModel())
	fmt.Fprintf(w, "  Type:          %s\n", details.DisplayBoatType())
	fmt.Fprintf(w, "  Year:          %s\n", details.DisplayYear())
	fmt.Fprintf(w, "  Length:        %s\n", details.DisplayLength())
	fmt.Fprintf(w, "  Hull material: %s\n", details.DisplayHullMaterial())
	fmt.Fprintf(w, "  Features:      %s\n", details.DisplayFeatures())
	if details.Description != "" {
		fmt.Fprintf(w, "  Description:   %s\n", details.Description)
	}
	return nil
}

// WriteRecord renders a stored identification.
func WriteRecord(w io.Writer, format Format, record *models.IdentificationRecord) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, record)
	case FormatYAML:
		return writeYAML(w, record)
	}

	fmt.Fprintf(w, "Identification %s (%s)\n", record.ID, record.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  File:       %s\n", record.Filename)
	fmt.Fprintf(w, "  Is boat:    %t\n", record.IsBoat)
	fmt.Fprintf(w, "  Confidence: %s\n", models.Display(record.Confidence))
	fmt.Fprintf(w, "  Make:       %s\n", models.Display(record.Make))
	fmt.Fprintf(w, "  Model:      %s\n", models.Display(record.Model))
	fmt.Fprintf(w, "  Type:       %s\n", models.Display(record.BoatType))
	fmt.Fprintf(w, "  Year:       %s\n", models.Display(record.Year))
	if record.Details != nil && record.Details.Description != "" {
		fmt.Fprintf(w, "  Description: %s\n", record.Details.Description)
	}
	return nil
}

// WritePage renders one page of stored identifications.
func WritePage(w io.Writer, format Format, page *models.IdentificationPage) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, page)
	case FormatYAML:
		return writeYAML(w, page)
	}

	if len(page.Results) == 0 {
		fmt.Fprintln(w, "No identifications found.")
		return nil
	}

	for _, record := range page.Results {
		fmt.Fprintf(w, "%-12s %-20s %-20s %-12s %s\n",
			record.ID,
			models.Display(record.Make),
			models.Display(record.Model),
			models.Display(record.Confidence),
			record.CreatedAt.Format("2006-01-02"),
		)
	}
	fmt.Fprintf(w, "\nPage %d of %d (%d total)\n", page.Page, page.TotalPages, page.TotalCount)
	return nil
}

// WriteCatalog renders the field catalog.
func WriteCatalog(w io.Writer, format Format, catalog *models.FieldCatalog) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, catalog)
	case FormatYAML:
		return writeYAML(w, catalog)
	}

	names := make([]string, 0, len(catalog.AvailableFields))
	for name := range catalog.AvailableFields {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Available identification fields:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s\n", name, catalog.AvailableFields[name])
	}
	if len(catalog.DefaultFields) > 0 {
		fmt.Fprintf(w, "\nRequested by default: %s\n", strings.Join(catalog.DefaultFields, ", "))
	}
	return nil
}
