package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/transitflow/transitflow/pkg/tdf"
)

// Client is a typed binding for every backend endpoint. It unwraps the
// response envelope and hands back the data record, no retries and no
// caching.
type Client struct {
	baseURL string

	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,

		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) GetRoutes(ctx context.Context) ([]tdf.Route, error) {
	var routes []tdf.Route
	err := c.get(ctx, "/api/transit/routes", &routes)

	return routes, err
}

func (c *Client) GetStops(ctx context.Context) ([]tdf.Stop, error) {
	var stops []tdf.Stop
	err := c.get(ctx, "/api/transit/stops", &stops)

	return stops, err
}

func (c *Client) GetArrivals(ctx context.Context, stopID int) (*tdf.ArrivalBoard, error) {
	var arrivalBoard tdf.ArrivalBoard
	if err := c.get(ctx, fmt.Sprintf("/api/transit/arrivals/%d", stopID), &arrivalBoard); err != nil {
		return nil, err
	}

	return &arrivalBoard, nil
}

func (c *Client) GetVehicles(ctx context.Context) ([]tdf.Vehicle, error) {
	var vehicles []tdf.Vehicle
	err := c.get(ctx, "/api/transit/vehicles", &vehicles)

	return vehicles, err
}

func (c *Client) GetBusLines(ctx context.Context, routeNumber string) ([]tdf.BusLine, error) {
	var busLines []tdf.BusLine
	err := c.get(ctx, fmt.Sprintf("/api/transit/bus-lines/%s", url.PathEscape(routeNumber)), &busLines)

	return busLines, err
}

func (c *Client) GetNetwork(ctx context.Context) (*tdf.Network, error) {
	var network tdf.Network
	if err := c.get(ctx, "/api/transit/network", &network); err != nil {
		return nil, err
	}

	return &network, nil
}

type PlanRequest struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departureTime,omitempty"`
	Preferences   []string `json:"preferences,omitempty"`
}

func (c *Client) PlanRoute(ctx context.Context, request PlanRequest) (*tdf.Itinerary, error) {
	var itinerary tdf.Itinerary
	if err := c.post(ctx, "/api/routes/plan", request, &itinerary); err != nil {
		return nil, err
	}

	return &itinerary, nil
}

func (c *Client) GetAlternatives(ctx context.Context, origin string, destination string) ([]tdf.Alternative, error) {
	path := fmt.Sprintf("/api/routes/alternatives?origin=%s&destination=%s", url.QueryEscape(origin), url.QueryEscape(destination))

	var alternatives []tdf.Alternative
	err := c.get(ctx, path, &alternatives)

	return alternatives, err
}

type optimizeRequest struct {
	Route       tdf.Itinerary `json:"route"`
	Preferences []string      `json:"preferences,omitempty"`
}

func (c *Client) OptimizeRoute(ctx context.Context, route tdf.Itinerary, preferences []string) (*tdf.OptimizedItinerary, error) {
	var optimized tdf.OptimizedItinerary
	if err := c.post(ctx, "/api/routes/optimize", optimizeRequest{Route: route, Preferences: preferences}, &optimized); err != nil {
		return nil, err
	}

	return &optimized, nil
}

type predictDelayRequest struct {
	RouteID string `json:"routeId"`
	StopID  string `json:"stopId,omitempty"`
}

func (c *Client) PredictDelay(ctx context.Context, routeID string, stopID string) (*tdf.DelayPrediction, error) {
	var prediction tdf.DelayPrediction
	if err := c.post(ctx, "/api/ai/predict-delay", predictDelayRequest{RouteID: routeID, StopID: stopID}, &prediction); err != nil {
		return nil, err
	}

	return &prediction, nil
}

type queryRequest struct {
	Query string `json:"query"`
}

func (c *Client) Query(ctx context.Context, query string) (*tdf.QueryResult, error) {
	var result tdf.QueryResult
	if err := c.post(ctx, "/api/ai/query", queryRequest{Query: query}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) GetCrowdDensity(ctx context.Context, routeID string, at *time.Time) (*tdf.CrowdDensity, error) {
	path := fmt.Sprintf("/api/ai/crowd-density?routeId=%s", url.QueryEscape(routeID))
	if at != nil {
		path += "&time=" + url.QueryEscape(at.Format(time.RFC3339))
	}

	var crowdDensity tdf.CrowdDensity
	if err := c.get(ctx, path, &crowdDensity); err != nil {
		return nil, err
	}

	return &crowdDensity, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(request, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	encodedBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encodedBody))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	return c.do(request, out)
}

func (c *Client) do(request *http.Request, out interface{}) error {
	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("path", request.URL.Path).Msg("API request failed")
		return err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	var wrapped envelope
	if err := json.Unmarshal(responseBody, &wrapped); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", request.URL.Path, err)
	}

	if !wrapped.Success {
		err := fmt.Errorf("request to %s failed with status %d: %s", request.URL.Path, response.StatusCode, wrapped.Error)
		log.Error().Err(err).Msg("API request rejected")

		return err
	}

	if out != nil && len(wrapped.Data) > 0 {
		return json.Unmarshal(wrapped.Data, out)
	}

	return nil
}
