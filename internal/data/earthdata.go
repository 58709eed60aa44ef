package data

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"forest-tev/internal/model"
)

// ZonalClient provides methods to fetch zonal biomass statistics from a
// remote aggregation service.
type ZonalClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewZonalClient creates a new zonal statistics API client. baseURL must
// point at the deployment to query; there is no public default endpoint.
func NewZonalClient(apiKey string, baseURL string) *ZonalClient {
	return &ZonalClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// QueryZoneStatsParams defines parameters for querying zonal statistics.
type QueryZoneStatsParams struct {
	Product  string // e.g., "esa_cci_agb"
	Zone     string // e.g., "EIA_CS1"
	PreYear  int    // Year preceding treatment
	PostYear int    // Year following treatment
}

// ZonalAPIError represents an error from the zonal statistics API.
type ZonalAPIError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // For rate limit errors
}

func (e *ZonalAPIError) Error() string {
	return e.Message
}

// QueryZoneStats fetches aboveground biomass statistics for a zone over a
// pre/post year pair.
//
// If caching is enabled (ENABLE_ZONAL_CACHE=true), responses may be served
// from a short-lived in-memory cache. Caching is only for local development.
func (c *ZonalClient) QueryZoneStats(params QueryZoneStatsParams) (*model.ZonalQueryResponse, error) {
	if err := c.validateAPIKey(); err != nil {
		return nil, err
	}
	if c.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required (set ZONAL_API_URL)")
	}

	// Check cache first (only if enabled for development)
	cache := GetCache()
	if cache != nil {
		cacheKey := GenerateCacheKey(params)
		if cached, found := cache.Get(cacheKey); found {
			rowCount := 0
			if cached.Data != nil {
				rowCount = len(cached.Data)
			}
			log.Printf("[ZonalStats] Cache hit: Using cached response with %d rows (product=%s, zone=%s, pre=%d, post=%d)",
				rowCount, params.Product, params.Zone, params.PreYear, params.PostYear)
			return cached, nil
		}
	}
	if params.Product == "" {
		return nil, fmt.Errorf("product is required")
	}
	if params.Zone == "" {
		return nil, fmt.Errorf("zone is required")
	}
	if params.PreYear == 0 || params.PostYear == 0 {
		return nil, fmt.Errorf("pre_year and post_year are required")
	}
	if params.PreYear >= params.PostYear {
		return nil, fmt.Errorf("pre_year must be before post_year")
	}

	// Build URL: /v1/products/{product}/zonal-stats/{zone}
	path := fmt.Sprintf("/v1/products/%s/zonal-stats/%s", params.Product, params.Zone)
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("pre_year", fmt.Sprintf("%d", params.PreYear))
	q.Set("post_year", fmt.Sprintf("%d", params.PostYear))
	u.RawQuery = q.Encode()

	log.Printf("[ZonalStats] Request: GET %s (product=%s, zone=%s, pre=%d, post=%d)",
		u.Path, params.Product, params.Zone, params.PreYear, params.PostYear)

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[ZonalStats] Request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[ZonalStats] Response: %d %s (duration: %v, product=%s, zone=%s)",
		resp.StatusCode, resp.Status, duration, params.Product, params.Zone)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusForbidden:
		log.Printf("[ZonalStats] Error: 403 Forbidden - Invalid API key or insufficient permissions (product=%s, zone=%s)",
			params.Product, params.Zone)
		return nil, &ZonalAPIError{
			StatusCode: resp.StatusCode,
			Code:       "INVALID_API_KEY",
			Message:    "Invalid API key or insufficient permissions",
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		log.Printf("[ZonalStats] Error: 429 Rate Limit Exceeded - Retry after: %s (product=%s, zone=%s)",
			retryAfter, params.Product, params.Zone)
		return nil, &ZonalAPIError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	case http.StatusUnauthorized:
		log.Printf("[ZonalStats] Error: 401 Unauthorized - Invalid API key (product=%s, zone=%s)",
			params.Product, params.Zone)
		return nil, &ZonalAPIError{
			StatusCode: resp.StatusCode,
			Code:       "UNAUTHORIZED",
			Message:    "Unauthorized: Invalid API key",
		}
	default:
		log.Printf("[ZonalStats] Error: %d %s (product=%s, zone=%s)",
			resp.StatusCode, resp.Status, params.Product, params.Zone)
		return nil, &ZonalAPIError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var result model.ZonalQueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[ZonalStats] Error decoding response: %v (product=%s, zone=%s)", err, params.Product, params.Zone)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	rowCount := 0
	if result.Data != nil {
		rowCount = len(result.Data)
	}
	log.Printf("[ZonalStats] Success: Received %d rows (product=%s, zone=%s)",
		rowCount, params.Product, params.Zone)

	if cache := GetCache(); cache != nil {
		cacheKey := GenerateCacheKey(params)
		cache.Set(cacheKey, &result)
		log.Printf("[ZonalStats] Cached response (product=%s, zone=%s)", params.Product, params.Zone)
	}

	return &result, nil
}

// validateAPIKey validates that the API key is present and not obviously invalid.
func (c *ZonalClient) validateAPIKey() error {
	if c.APIKey == "" {
		return &ZonalAPIError{
			StatusCode: 0,
			Code:       "MISSING_API_KEY",
			Message:    "API key is required",
		}
	}
	if len(c.APIKey) < 10 {
		return &ZonalAPIError{
			StatusCode: 0,
			Code:       "INVALID_API_KEY_FORMAT",
			Message:    "API key appears to be invalid (too short)",
		}
	}
	return nil
}
