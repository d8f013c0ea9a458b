package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

// Client looks visitor addresses up in an ip-api.com compatible service.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ port.GeoLocator = (*Client)(nil)

// NewClient returns a client that sends lookups to baseURL and gives each one
// at most timeout to complete.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type lookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Region  string  `json:"region"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	ISP     string  `json:"isp"`
}

// Locate returns the location of ip. A lookup the service answers with status
// "fail", such as a private address, wraps domain.ErrGeoRejected; transport
// failures do not.
func (c *Client) Locate(ctx context.Context, ip string) (*domain.GeoInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json/"+url.PathEscape(ip), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo lookup: unexpected status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geo lookup: decode: %w", err)
	}
	if body.Status == "fail" {
		return nil, fmt.Errorf("%w: %s", domain.ErrGeoRejected, body.Message)
	}

	return &domain.GeoInfo{
		City:      body.City,
		Country:   body.Country,
		Region:    body.Region,
		Latitude:  body.Lat,
		Longitude: body.Lon,
		ISP:       body.ISP,
	}, nil
}
