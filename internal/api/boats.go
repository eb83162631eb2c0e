package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidewater-app/boatid/internal/models"
)

// API endpoints, relative to the configured base URL.
const (
	identifyPath        = "boats/identify"
	identificationsPath = "boats/identifications"
	searchPath          = "boats/search"
	fieldsPath          = "boats/identification-fields"
)

// IdentifyRequest describes one image upload.
type IdentifyRequest struct {
	Filename        string
	Image           io.Reader
	RequestedFields []string
	StoreResults    bool
}

// Identify uploads an image as multipart form data and returns the
// structured identification.
func (c *Client) Identify(ctx context.Context, req IdentifyRequest) (*models.IdentificationResult, error) {
	if req.Image == nil {
		return nil, fmt.Errorf("image is required")
	}

	filename := req.Filename
	if filename == "" {
		filename = "image.jpg"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create image form part: %w", err)
	}
	if _, err := io.Copy(part, req.Image); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	if len(req.RequestedFields) > 0 {
		if err := writer.WriteField("requested_fields", strings.Join(req.RequestedFields, ",")); err != nil {
			return nil, fmt.Errorf("failed to write requested_fields: %w", err)
		}
	}
	if err := writer.WriteField("store_results", strconv.FormatBool(req.StoreResults)); err != nil {
		return nil, fmt.Errorf("failed to write store_results: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var result models.IdentificationResult
	if err := c.do(ctx, http.MethodPost, identifyPath, nil, &buf, writer.FormDataContentType(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListOptions are the pagination and filter parameters of the listing and
// search endpoints. Zero values are omitted from the query string.
type ListOptions struct {
	Page       int
	PerPage    int
	IsBoat     *bool
	BoatType   string
	Confidence string
	Make       string
}

func (o ListOptions) values() url.Values {
	query := url.Values{}
	if o.Page > 0 {
		query.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.IsBoat != nil {
		query.Set("is_boat", strconv.FormatBool(*o.IsBoat))
	}
	if o.BoatType != "" {
		query.Set("boat_type", o.BoatType)
	}
	if o.Confidence != "" {
		query.Set("confidence", o.Confidence)
	}
	if o.Make != "" {
		query.Set("make", o.Make)
	}
	return query
}

// ListIdentifications fetches one page of stored identifications.
func (c *Client) ListIdentifications(ctx context.Context, opts ListOptions) (*models.IdentificationPage, error) {
	var page models.IdentificationPage
	if err := c.do(ctx, http.MethodGet, identificationsPath, opts.values(), nil, "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetIdentification fetches a single stored identification by id.
func (c *Client) GetIdentification(ctx context.Context, id string) (*models.IdentificationRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("identification id is required")
	}

	var record models.IdentificationRecord
	path := identificationsPath + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, "", &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Search runs a free-text search over stored identifications.
func (c *Client) Search(ctx context.Context, q string, opts ListOptions) (*models.IdentificationPage, error) {
	if q == "" {
		return nil, fmt.Errorf("search query is required")
	}

	query := opts.values()
	query.Set("q", q)

	var page models.IdentificationPage
	if err := c.do(ctx, http.MethodGet, searchPath, query, nil, "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// IdentificationFields fetches the catalog of extractable boat attributes.
func (c *Client) IdentificationFields(ctx context.Context) (*models.FieldCatalog, error) {
	var catalog models.FieldCatalog
	if err := c.do(ctx, http.MethodGet, fieldsPath, nil, nil, "", &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}
