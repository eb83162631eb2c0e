package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tidewater-app/boatid/internal/models"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "text", want: FormatText},
		{input: "json", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) did not fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteResultTextDefaultsToUnknown(t *testing.T) {
	result := &models.IdentificationResult{
		Success:    true,
		IsBoat:     true,
		Confidence: models.ConfidenceMedium,
		BoatDetails: &models.BoatDetails{
			Make: "Catalina",
		},
	}

	var buf bytes.Buffer
	if err := WriteResult(&buf, FormatText, result); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "confidence: medium") {
		t.Errorf("output missing confidence: %q", out)
	}
	if !strings.Contains(out, "Make:          Catalina") {
		t.Errorf("output missing make: %q", out)
	}
	for _, line := range []string{"Model:", "Type:", "Year:", "Length:", "Hull material:", "Features:"} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q line: %q", line, out)
		}
	}
	if strings.Count(out, "Unknown") < 6 {
		t.Errorf("absent fields should render as Unknown placeholders: %q", out)
	}
}

func TestWriteResultTextNoDetails(t *testing.T) {
	result := &models.IdentificationResult{
		Success:    true,
		IsBoat:     true,
		Confidence: models.ConfidenceLow,
	}

	var buf bytes.Buffer
	if err := WriteResult(&buf, FormatText, result); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Make:          Unknown") {
		t.Errorf("nil details should render Unknown placeholders: %q", buf.String())
	}
}

func TestWriteResultTextNotABoat(t *testing.T) {
	tests := []struct {
		name     string
		result   models.IdentificationResult
		expected string
	}{
		{
			name:     "uses message",
			result:   models.IdentificationResult{Message: "This is a car"},
			expected: "No boat detected: This is a car",
		},
		{
			name: "falls back to description",
			result: models.IdentificationResult{
				BoatDetails: &models.BoatDetails{Description: "A pier at sunset"},
			},
			expected: "No boat detected: A pier at sunset",
		},
		{
			name:     "generic fallback",
			result:   models.IdentificationResult{},
			expected: "No boat detected: The image does not appear to contain a boat.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteResult(&buf, FormatText, &tt.result); err != nil {
				t.Fatalf("WriteResult returned error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("output %q missing %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestWriteResultJSONRoundTrips(t *testing.T) {
	result := &models.IdentificationResult{
		Success:          true,
		IdentificationID: "abc123",
		IsBoat:           true,
		Confidence:       models.ConfidenceHigh,
	}

	var buf bytes.Buffer
	if err := WriteResult(&buf, FormatJSON, result); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}

	var decoded models.IdentificationResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.IdentificationID != "abc123" {
		t.Errorf("IdentificationID = %q, want %q", decoded.IdentificationID, "abc123")
	}
}

func TestWritePageText(t *testing.T) {
	page := &models.IdentificationPage{
		Results: []models.IdentificationRecord{
			{ID: "1", Make: "Sea Ray", Confidence: "high"},
			{ID: "2"},
		},
		TotalCount: 12,
		Page:       1,
		PerPage:    2,
		TotalPages: 6,
	}

	var buf bytes.Buffer
	if err := WritePage(&buf, FormatText, page); err != nil {
		t.Fatalf("WritePage returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Sea Ray") {
		t.Errorf("output missing record make: %q", out)
	}
	if !strings.Contains(out, "Unknown") {
		t.Errorf("record without make should show Unknown: %q", out)
	}
	if !strings.Contains(out, "Page 1 of 6 (12 total)") {
		t.Errorf("output missing pagination footer: %q", out)
	}
}

func TestWritePageTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePage(&buf, FormatText, &models.IdentificationPage{}); err != nil {
		t.Fatalf("WritePage returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "No identifications found.") {
		t.Errorf("empty page output = %q", buf.String())
	}
}

func TestWriteCatalogTextSorted(t *testing.T) {
	catalog := &models.FieldCatalog{
		AvailableFields: map[string]string{
			"year":  "estimated year or year range",
			"make":  "manufacturer/brand name",
			"model": "specific model name",
		},
		DefaultFields: []string{"make", "model"},
	}

	var buf bytes.Buffer
	if err := WriteCatalog(&buf, FormatText, catalog); err != nil {
		t.Fatalf("WriteCatalog returned error: %v", err)
	}

	out := buf.String()
	makeIdx := strings.Index(out, "make")
	modelIdx := strings.Index(out, "model")
	yearIdx := strings.Index(out, "year")
	if makeIdx == -1 || modelIdx == -1 || yearIdx == -1 {
		t.Fatalf("output missing field names: %q", out)
	}
	if !(makeIdx < modelIdx && modelIdx < yearIdx) {
		t.Errorf("fields are not sorted: %q", out)
	}
	if !strings.Contains(out, "Requested by default: make, model") {
		t.Errorf("output missing defaults: %q", out)
	}
}
