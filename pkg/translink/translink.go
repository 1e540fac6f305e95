package translink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/transitflow/transitflow/pkg/config"
	"github.com/transitflow/transitflow/pkg/tdf"
)

const requestTimeout = 5 * time.Second

// Client talks to the TransLink RTTI API. The API key is passed as a query
// parameter on every request.
type Client struct {
	baseURL string
	apiKey  string

	httpClient *http.Client
}

func NewClient(transLinkConfig config.TransLinkConfig) *Client {
	return &Client{
		baseURL: transLinkConfig.BaseURL,
		apiKey:  transLinkConfig.APIKey,

		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// GetBusLines looks up the route & direction records for a bus route number,
// retrying transient upstream failures a couple of times before giving up
func (c *Client) GetBusLines(ctx context.Context, routeNumber string) ([]tdf.BusLine, error) {
	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)

	return backoff.RetryWithData(func() ([]tdf.BusLine, error) {
		return c.getBusLines(ctx, routeNumber)
	}, retryPolicy)
}

func (c *Client) getBusLines(ctx context.Context, routeNumber string) ([]tdf.BusLine, error) {
	requestURL := fmt.Sprintf("%s/routes/%s?apikey=%s", c.baseURL, url.PathEscape(routeNumber), url.QueryEscape(c.apiKey))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 && response.StatusCode < 500 {
		return nil, backoff.Permanent(fmt.Errorf("translink api returned status %d", response.StatusCode))
	} else if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translink api returned status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	var busLines []tdf.BusLine
	if err := json.Unmarshal(body, &busLines); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode translink response: %w", err))
	}

	return busLines, nil
}
