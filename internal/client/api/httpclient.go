package api

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
)

// maxResponseSize caps response bodies to keep a misbehaving server from
// exhausting memory.
const maxResponseSize = 4 * 1024 * 1024

// HTTPClient implements Client over the backend's REST contract.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns an HTTPClient for the given base URL
// (e.g. "http://127.0.0.1:8081"). A zero timeout disables the client-side
// request deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeToken performs the form-encoded password grant against /auth/token.
func (c *HTTPClient) ExchangeToken(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", "password")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tr tokenResponse
	if err := c.do(req, &tr); err != nil {
		return "", err
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response without access_token: %w", ErrMalformed)
	}
	return tr.AccessToken, nil
}

// CreateFarm posts a farm record and returns it as read back from the server.
func (c *HTTPClient) CreateFarm(ctx context.Context, token string, body FarmCreateRequest) (FarmRecord, error) {
	if body.AgroforestryTypeIDs == nil {
		body.AgroforestryTypeIDs = []int{}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return FarmRecord{}, fmt.Errorf("encode farm: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/farms", bytes.NewReader(payload))
	if err != nil {
		return FarmRecord{}, fmt.Errorf("build farm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setBearer(req, token)

	var rec FarmRecord
	if err := c.do(req, &rec); err != nil {
		return FarmRecord{}, err
	}
	if rec.ID == 0 {
		return FarmRecord{}, fmt.Errorf("farm response without id: %w", ErrMalformed)
	}
	return rec, nil
}

// GetFarm reads a single farm record.
func (c *HTTPClient) GetFarm(ctx context.Context, token, id string) (FarmRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/farms/"+url.PathEscape(id), nil)
	if err != nil {
		return FarmRecord{}, fmt.Errorf("build farm request: %w", err)
	}
	setBearer(req, token)

	var rec FarmRecord
	if err := c.do(req, &rec); err != nil {
		return FarmRecord{}, err
	}
	if rec.ID == 0 {
		return FarmRecord{}, fmt.Errorf("farm response without id: %w", ErrMalformed)
	}
	return rec, nil
}

// ListFarms reads the authenticated user's farm records.
func (c *HTTPClient) ListFarms(ctx context.Context, token string) ([]FarmRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/farms", nil)
	if err != nil {
		return nil, fmt.Errorf("build farms request: %w", err)
	}
	setBearer(req, token)

	var recs []FarmRecord
	if err := c.do(req, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// GetRecommendations fetches the ranked recommendations for a farm.
func (c *HTTPClient) GetRecommendations(ctx context.Context, token, farmID string) (RecommendationsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/recommendations/"+url.PathEscape(farmID), nil)
	if err != nil {
		return RecommendationsResponse{}, fmt.Errorf("build recommendations request: %w", err)
	}
	setBearer(req, token)

	var resp RecommendationsResponse
	if err := c.do(req, &resp); err != nil {
		return RecommendationsResponse{}, err
	}
	if resp.Recommendations == nil {
		return RecommendationsResponse{}, fmt.Errorf("recommendations response without list: %w", ErrMalformed)
	}
	return resp, nil
}

// ListSpecies reads the public species catalogue. No token is required.
func (c *HTTPClient) ListSpecies(ctx context.Context) ([]SpeciesRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/species", nil)
	if err != nil {
		return nil, fmt.Errorf("build species request: %w", err)
	}

	var recs []SpeciesRecord
	if err := c.do(req, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func setBearer(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// do executes the request and decodes the JSON body into out, mapping
// transport conditions to the package sentinel errors.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: status %d: %w", req.Method, req.URL.Path, resp.StatusCode, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s %s: status %d: %w", req.Method, req.URL.Path, resp.StatusCode, ErrUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, ErrUnavailable)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: decode body: %w", req.Method, req.URL.Path, ErrMalformed)
	}
	return nil
}
