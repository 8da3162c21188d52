package bloodapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
)

// Client talks to the real blood-bank backend.
type Client interface {
	SearchAvailability(ctx context.Context, req AvailabilityRequest) ([]entities.BloodBank, error)
	FindNearby(ctx context.Context, req NearbyRequest) ([]entities.BloodBank, error)
	CreateRequest(ctx context.Context, input entities.BloodRequestInput) (*entities.BloodRequest, error)
	Health(ctx context.Context) error
}

// HTTPClient is the HTTP implementation of Client. Every request carries
// a JSON content type; a bearer Authorization header is attached only
// when an API key is configured.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// AvailabilityRequest carries availability search filters. Zero values
// are omitted from the query string.
type AvailabilityRequest struct {
	BloodGroup string
	Pincode    string
	RadiusKm   float64
	State      string
	District   string
}

// NearbyRequest carries a nearby-banks lookup.
type NearbyRequest struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// NewClient creates a blood backend client. The upstream contract has no
// explicit latency guarantee, so a client-side timeout bounds hung calls.
func NewClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SearchAvailability calls GET /blood/availability.
func (c *HTTPClient) SearchAvailability(ctx context.Context, req AvailabilityRequest) ([]entities.BloodBank, error) {
	parsed, err := url.Parse(fmt.Sprintf("%s/blood/availability", c.baseURL))
	if err != nil {
		return nil, err
	}

	query := parsed.Query()
	if req.BloodGroup != "" {
		query.Set("blood_group", req.BloodGroup)
	}
	if req.Pincode != "" {
		query.Set("pincode", req.Pincode)
	}
	if req.RadiusKm > 0 {
		query.Set("radius", fmt.Sprintf("%g", req.RadiusKm))
	}
	if req.State != "" {
		query.Set("state", req.State)
	}
	if req.District != "" {
		query.Set("district", req.District)
	}
	parsed.RawQuery = query.Encode()

	var out []entities.BloodBank
	if err := c.doJSON(ctx, http.MethodGet, parsed.String(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindNearby calls GET /blood-banks/nearby.
func (c *HTTPClient) FindNearby(ctx context.Context, req NearbyRequest) ([]entities.BloodBank, error) {
	parsed, err := url.Parse(fmt.Sprintf("%s/blood-banks/nearby", c.baseURL))
	if err != nil {
		return nil, err
	}

	query := parsed.Query()
	query.Set("latitude", fmt.Sprintf("%g", req.Latitude))
	query.Set("longitude", fmt.Sprintf("%g", req.Longitude))
	if req.RadiusKm > 0 {
		query.Set("radius", fmt.Sprintf("%g", req.RadiusKm))
	}
	parsed.RawQuery = query.Encode()

	var out []entities.BloodBank
	if err := c.doJSON(ctx, http.MethodGet, parsed.String(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRequest calls POST /blood/request.
func (c *HTTPClient) CreateRequest(ctx context.Context, input entities.BloodRequestInput) (*entities.BloodRequest, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	out := &entities.BloodRequest{}
	endpoint := fmt.Sprintf("%s/blood/request", c.baseURL)
	if err := c.doJSON(ctx, http.MethodPost, endpoint, bytes.NewReader(payload), out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health calls GET /health; any 2xx body counts as alive.
func (c *HTTPClient) Health(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/health", c.baseURL)
	return c.doJSON(ctx, http.MethodGet, endpoint, nil, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, body io.Reader, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API Error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}
	return nil
}
