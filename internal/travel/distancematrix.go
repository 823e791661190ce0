package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

const defaultMatrixEndpoint = "https://maps.googleapis.com/maps/api/distancematrix/json"

// DistanceMatrixClient implements Provider against the Google Distance
// Matrix REST API.
type DistanceMatrixClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// DistanceMatrixOption customizes the client.
type DistanceMatrixOption func(*DistanceMatrixClient)

// WithEndpoint overrides the API endpoint. Test use.
func WithEndpoint(endpoint string) DistanceMatrixOption {
	return func(c *DistanceMatrixClient) { c.endpoint = endpoint }
}

// NewDistanceMatrixClient creates a Provider backed by the Distance
// Matrix API.
func NewDistanceMatrixClient(apiKey string, opts ...DistanceMatrixOption) *DistanceMatrixClient {
	c := &DistanceMatrixClient{
		apiKey:   apiKey,
		endpoint: defaultMatrixEndpoint,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// matrixResponse is the subset of the Distance Matrix payload we read.
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Value int64 `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

func (c *DistanceMatrixClient) Estimate(ctx context.Context, origin, destination string, arrival time.Time) (time.Duration, bool, error) {
	if origin == "" || destination == "" {
		return 0, false, nil
	}

	q := url.Values{}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("arrival_time", fmt.Sprintf("%d", arrival.Unix()))
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return 0, false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("querying distance matrix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("distance matrix returned status %d", resp.StatusCode)
	}

	var payload matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, false, fmt.Errorf("decoding response: %w", err)
	}

	if payload.Status != "OK" || len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return 0, false, nil
	}
	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" || element.Duration.Value <= 0 {
		// Unroutable pair (e.g. free-text like "Zoom"); no estimate.
		return 0, false, nil
	}

	return time.Duration(element.Duration.Value) * time.Second, true, nil
}
