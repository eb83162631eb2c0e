package models

import (
	"strings"
	"time"
)

// Confidence levels reported by the identification service.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// UnknownValue is the placeholder shown for boat attributes the service
// could not determine.
const UnknownValue = "Unknown"

// BoatDetails holds the optional structured attributes of an identified
// vessel. Every field may be absent; use the Display helpers when rendering.
type BoatDetails struct {
	Make         string   `json:"make,omitempty" yaml:"make,omitempty"`
	Model        string   `json:"model,omitempty" yaml:"model,omitempty"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Year         string   `json:"year,omitempty" yaml:"year,omitempty"`
	Length       string   `json:"length,omitempty" yaml:"length,omitempty"`
	BoatType     string   `json:"boat_type,omitempty" yaml:"boat_type,omitempty"`
	HullMaterial string   `json:"hull_material,omitempty" yaml:"hull_material,omitempty"`
	Features     []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// Display returns the given attribute value, or the Unknown placeholder when
// the service left it empty or answered "unknown".
func Display(value string) string {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, "unknown") {
		return UnknownValue
	}
	return v
}

func (d *BoatDetails) DisplayMake() string         { return Display(d.Make) }
func (d *BoatDetails) DisplayModel() string        { return Display(d.Model) }
func (d *BoatDetails) DisplayYear() string         { return Display(d.Year) }
func (d *BoatDetails) DisplayLength() string       { return Display(d.Length) }
func (d *BoatDetails) DisplayBoatType() string     { return Display(d.BoatType) }
func (d *BoatDetails) DisplayHullMaterial() string { return Display(d.HullMaterial) }

// DisplayFeatures joins the feature list for rendering, falling back to the
// Unknown placeholder when the list is empty.
func (d *BoatDetails) DisplayFeatures() string {
	if len(d.Features) == 0 {
		return UnknownValue
	}
	return strings.Join(d.Features, ", ")
}

// IdentificationResult is the response to a single image upload. It is
// created once per upload and never mutated afterwards.
type IdentificationResult struct {
	Success          bool         `json:"success" yaml:"success"`
	IdentificationID string       `json:"identification_id,omitempty" yaml:"identification_id,omitempty"`
	Filename         string       `json:"filename" yaml:"filename"`
	IsBoat           bool         `json:"is_boat" yaml:"is_boat"`
	BoatDetails      *BoatDetails `json:"boat_details,omitempty" yaml:"boat_details,omitempty"`
	Confidence       string       `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Message          string       `json:"message,omitempty" yaml:"message,omitempty"`
}

// IdentificationRecord is a stored identification as returned by the listing,
// detail, and search endpoints.
type IdentificationRecord struct {
	ID         string       `json:"id" yaml:"id"`
	Filename   string       `json:"filename" yaml:"filename"`
	IsBoat     bool         `json:"is_boat" yaml:"is_boat"`
	Confidence string       `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Make       string       `json:"make,omitempty" yaml:"make,omitempty"`
	Model      string       `json:"model,omitempty" yaml:"model,omitempty"`
	BoatType   string       `json:"boat_type,omitempty" yaml:"boat_type,omitempty"`
	Year       string       `json:"year_estimate,omitempty" yaml:"year_estimate,omitempty"`
	Details    *BoatDetails `json:"boat_details,omitempty" yaml:"boat_details,omitempty"`
	CreatedAt  time.Time    `json:"created_at" yaml:"created_at"`
}

// IdentificationPage is one server-computed page of stored identifications.
// The client never caches pages beyond the one currently displayed.
type IdentificationPage struct {
	Results    []IdentificationRecord `json:"results" yaml:"results"`
	TotalCount int                    `json:"total_count" yaml:"total_count"`
	Page       int                    `json:"page" yaml:"page"`
	PerPage    int                    `json:"per_page" yaml:"per_page"`
	TotalPages int                    `json:"total_pages" yaml:"total_pages"`
}

// FieldCatalog describes which boat attributes the service can extract and
// which ones it extracts by default.
type FieldCatalog struct {
	AvailableFields map[string]string `json:"available_fields" yaml:"available_fields"`
	DefaultFields   []string          `json:"default_fields" yaml:"default_fields"`
}
