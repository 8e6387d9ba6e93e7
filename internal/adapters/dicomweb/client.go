// Package dicomweb implements the DICOMweb transport boundary over plain
// HTTP: WADO-RS metadata retrieval, QIDO-RS series search and bulk data
// retrieval.
package dicomweb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"wadofetch/internal/domain"
	"wadofetch/internal/ports"
)

const (
	acceptDICOMJSON = "application/dicom+json, application/json"
	acceptBulkData  = `multipart/related; type="application/octet-stream", application/octet-stream`

	defaultTimeout = 30 * time.Second
)

// Client talks DICOMweb to one server descriptor.
type Client struct {
	server     domain.Server
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.MetadataClient = (*Client)(nil)

// NewClient builds a client with a default HTTP client.
func NewClient(server domain.Server) *Client {
	return NewClientWithHTTPClient(server, &http.Client{Timeout: defaultTimeout})
}

// NewClientWithHTTPClient builds a client around a specific *http.Client,
// allowing an instrumented or test transport.
func NewClientWithHTTPClient(server domain.Server, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		server:     server,
		httpClient: httpClient,
		logger:     slog.Default().With("server", server.Name),
	}
}

func (c *Client) RetrieveStudyMetadata(ctx context.Context, studyUID string) ([]domain.AttributeMap, error) {
	url := fmt.Sprintf("%s/studies/%s/metadata", c.server.WadoRoot, studyUID)
	return c.getMetadata(ctx, url)
}

func (c *Client) RetrieveSeriesMetadata(ctx context.Context, studyUID, seriesUID string) ([]domain.AttributeMap, error) {
	url := fmt.Sprintf("%s/studies/%s/series/%s/metadata", c.server.WadoRoot, studyUID, seriesUID)
	return c.getMetadata(ctx, url)
}

func (c *Client) SearchSeries(ctx context.Context, studyUID string) ([]domain.AttributeMap, error) {
	url := fmt.Sprintf("%s/studies/%s/series", c.server.QidoRoot, studyUID)
	return c.getMetadata(ctx, url)
}

// RetrieveBulkData fetches the payload referenced by a bulk data URI. The
// URI is absolute (it comes from a metadata response). Servers answer with
// either a bare octet stream or a single-part multipart/related body; both
// are accepted.
func (c *Client) RetrieveBulkData(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("create bulk data request: %w", err)
	}
	req.Header.Set("Accept", acceptBulkData)
	c.setAuthorization(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get bulk data %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, uri)
	}

	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err == nil && strings.HasPrefix(mediaType, "multipart/") {
		return readFirstPart(resp.Body, params["boundary"])
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bulk data body: %w", err)
	}
	return data, nil
}

func (c *Client) getMetadata(ctx context.Context, url string) ([]domain.AttributeMap, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create metadata request: %w", err)
	}
	req.Header.Set("Accept", acceptDICOMJSON)
	c.setAuthorization(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	// QIDO returns 204 for an empty result set.
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, url)
	}

	var records []domain.AttributeMap
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode metadata response from %s: %w", url, err)
	}

	c.logger.DebugContext(ctx, "retrieved metadata", "url", url, "records", len(records))
	return records, nil
}

func (c *Client) setAuthorization(req *http.Request) {
	if header := c.server.AuthorizationHeader(); header != "" {
		req.Header.Set("Authorization", header)
	}
}

func (c *Client) statusError(resp *http.Response, url string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	c.logger.Error("server returned non-OK status", "url", url, "status", resp.StatusCode, "body", string(body))
	return fmt.Errorf("server returned status %d for %s", resp.StatusCode, url)
}

func readFirstPart(body io.Reader, boundary string) ([]byte, error) {
	if boundary == "" {
		return nil, fmt.Errorf("multipart bulk data response without boundary")
	}

	reader := multipart.NewReader(body, boundary)
	part, err := reader.NextPart()
	if err != nil {
		return nil, fmt.Errorf("read multipart bulk data: %w", err)
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return nil, fmt.Errorf("read multipart bulk data part: %w", err)
	}
	return data, nil
}
