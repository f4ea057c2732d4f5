// Package worldbank fetches the annual CPI inflation indicator from the
// World Bank API. The API paginates its responses, so a single logical fetch
// walks every page until the metadata says there are no more.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

const perPage = 1000

// Config holds client configuration
type Config struct {
	BaseURL   string        // e.g. https://api.worldbank.org/v2
	Indicator string        // e.g. FP.CPI.TOTL.ZG
	Timeout   time.Duration // Per-request timeout
}

// Client is a World Bank indicator API client
type Client struct {
	baseURL   string
	indicator string
	client    *http.Client
	log       zerolog.Logger
}

// NewClient creates a new World Bank client
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		indicator: cfg.Indicator,
		client:    &http.Client{Timeout: timeout},
		log:       log.With().Str("client", "worldbank").Logger(),
	}
}

// FetchRange fetches all observations for the configured indicator within the
// inclusive year range. Rows with null values, missing ISO3 codes, or codes
// outside the known-country table (the API's regional aggregates) are skipped.
//
// Any network or parse failure wraps domain.ErrDataUnavailable so callers can
// fall back to the last-known store.
func (c *Client) FetchRange(ctx context.Context, from, to int) ([]domain.Record, error) {
	var records []domain.Record

	page := 1
	for {
		obs, meta, err := c.fetchPage(ctx, from, to, page)
		if err != nil {
			return nil, err
		}

		for _, o := range obs {
			if o.Value == nil || o.CountryISO3Code == "" {
				continue
			}

			region, ok := Regions[o.CountryISO3Code]
			if !ok {
				// Aggregate rows ("Euro area", income groups) have ISO3-like
				// codes but no place on the map.
				continue
			}

			year, err := strconv.Atoi(o.Date)
			if err != nil {
				continue
			}

			records = append(records, domain.Record{
				CountryCode: o.CountryISO3Code,
				CountryName: o.Country.Value,
				Region:      region,
				Year:        year,
				Rate:        *o.Value,
			})
		}

		c.log.Debug().
			Int("page", meta.Page).
			Int("pages", meta.Pages).
			Int("records", len(records)).
			Msg("Fetched page")

		if page >= meta.Pages {
			break
		}
		page++
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: API returned no usable observations", domain.ErrDataUnavailable)
	}

	c.log.Info().
		Int("records", len(records)).
		Int("from", from).
		Int("to", to).
		Msg("Fetched inflation series")

	return records, nil
}

// fetchPage requests a single page of the indicator response.
func (c *Client) fetchPage(ctx context.Context, from, to, page int) ([]observation, *pageMetadata, error) {
	endpoint := fmt.Sprintf("%s/country/all/indicator/%s", c.baseURL, c.indicator)

	params := url.Values{}
	params.Set("format", "json")
	params.Set("date", fmt.Sprintf("%d:%d", from, to))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to build request: %v", domain.ErrDataUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: request failed: %v", domain.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: API returned status %d", domain.ErrDataUnavailable, resp.StatusCode)
	}

	// The response is a two-element JSON array: [metadata, observations].
	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrDataUnavailable, err)
	}
	if len(raw) < 2 {
		return nil, nil, fmt.Errorf("%w: unexpected response shape", domain.ErrDataUnavailable)
	}

	var meta pageMetadata
	if err := json.Unmarshal(raw[0], &meta); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to parse page metadata: %v", domain.ErrDataUnavailable, err)
	}
	if meta.Pages < 1 {
		meta.Pages = 1
	}

	var obs []observation
	if err := json.Unmarshal(raw[1], &obs); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to parse observations: %v", domain.ErrDataUnavailable, err)
	}

	return obs, &meta, nil
}
