package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"trip-agent/internal/providers/upstream"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API/Language_Guide
// Sample request: POST https://overpass-api.de/api/interpreter data=[out:json][timeout:25][maxsize:134217728];(nwr["tourism"~"^(museum)$"](around:5000,35.68,139.76););out center;
const (
	defaultBaseURL   = "https://overpass-api.de/api/interpreter"
	defaultUserAgent = "trip-agent/1.0"
	serviceName      = "overpass"
	queryTimeoutSecs = 25
	defaultMaxSize   = 128 << 20
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxSize    int64
	logger     *slog.Logger
}

// NewClient creates an interpreter client. maxSize is the server-side memory
// bound of a query in bytes.
func NewClient(baseURL, userAgent string, maxSize int64, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}
	return &Client{
		httpClient: &http.Client{Timeout: (queryTimeoutSecs + 5) * time.Second},
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxSize:    maxSize,
		logger:     logger.With("component", "overpass-client"),
	}
}

// Query returns elements within radiusMeters of the point that match any of
// the filters. Ways and relations are reduced to their center.
func (c *Client) Query(ctx context.Context, latitude, longitude float64, radiusMeters int, filters []TagFilter) (*InterpreterResponse, error) {
	ql := BuildQuery(latitude, longitude, radiusMeters, filters, c.maxSize)
	form := url.Values{"data": {ql}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("overpass query", "latitude", latitude, "longitude", longitude, "radius_m", radiusMeters)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, upstream.WrapTransport(serviceName, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, upstream.NewStatusError(serviceName, resp.StatusCode, body)
	}

	var apiResp InterpreterResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, upstream.Malformed(serviceName, fmt.Errorf("failed to decode response: %w", err))
	}

	// Overpass reports server-side aborts in "remark" with a 200 status
	if strings.Contains(apiResp.Remark, "runtime error") {
		if strings.Contains(apiResp.Remark, "timed out") || strings.Contains(apiResp.Remark, "out of memory") {
			return nil, fmt.Errorf("%s: %w: %s", serviceName, upstream.ErrNetworkTimeout, apiResp.Remark)
		}
		return nil, fmt.Errorf("%s: query failed: %s", serviceName, apiResp.Remark)
	}

	if err := upstream.Validate(serviceName, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

var safeTagValue = regexp.MustCompile(`^[A-Za-z0-9_:]+$`)

// BuildQuery renders the Overpass QL for a radius search. Values that are not
// plain OSM tag tokens are skipped so the query cannot be malformed. Output
// is uncounted; every match within the radius is returned.
func BuildQuery(latitude, longitude float64, radiusMeters int, filters []TagFilter, maxSize int64) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, latitude, longitude)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d]", queryTimeoutSecs)
	if maxSize > 0 {
		fmt.Fprintf(&b, "[maxsize:%d]", maxSize)
	}
	b.WriteString(";\n(\n")
	for _, f := range filters {
		if !safeTagValue.MatchString(f.Key) {
			continue
		}
		values := make([]string, 0, len(f.Values))
		for _, v := range f.Values {
			if safeTagValue.MatchString(v) {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  nwr[\"%s\"~\"^(%s)$\"]%s;\n", f.Key, strings.Join(values, "|"), around)
	}
	b.WriteString(");\nout center;")
	return b.String()
}
