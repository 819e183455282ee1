package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"readwatch/internal/core/domain"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ReadWatch is a client for the ReadWatch watchlist API.
type ReadWatch struct {
	baseURL string
	client  *http.Client
}

func NewReadWatch(baseURL string, client *http.Client) *ReadWatch {
	if client == nil {
		client = &http.Client{}
	}

	return &ReadWatch{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type addRequest struct {
	Title    string          `json:"title"`
	Category domain.Category `json:"category"`
	Status   domain.Status   `json:"status"`
}

type addResponse struct {
	Entry nullableEntry `json:"entry"`
}

type removeRequest struct {
	Title    string          `json:"title"`
	Category domain.Category `json:"category"`
}

type removeResponse struct {
	Removed removedTitles `json:"removed"`
}

type listResponse struct {
	Entries []nullableEntry `json:"entries"`
}

type searchResponse struct {
	Results []nullableResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (r *ReadWatch) Add(ctx context.Context, title string, category domain.Category,
	status domain.Status) (domain.Entry, error) {
	body, err := r.post(ctx, "/api/add", addRequest{Title: title, Category: category, Status: status})
	if err != nil {
		return domain.Entry{}, err
	}

	var result addResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.Entry{}, fmt.Errorf("error unmarshalling add response: %w", err)
	}

	return result.Entry.toDomain(), nil
}

func (r *ReadWatch) Remove(ctx context.Context, title string, category domain.Category) ([]string, error) {
	body, err := r.post(ctx, "/api/remove", removeRequest{Title: title, Category: category})
	if err != nil {
		return nil, err
	}

	var result removeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling remove response: %w", err)
	}

	return result.Removed, nil
}

func (r *ReadWatch) List(ctx context.Context, category domain.Category) ([]domain.Entry, error) {
	query := url.Values{}
	if category != domain.All {
		query.Set("category", string(category))
	}

	body, err := r.get(ctx, "/api/list", query)
	if err != nil {
		return nil, err
	}

	var result listResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling list response: %w", err)
	}

	entries := make([]domain.Entry, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = e.toDomain()
	}

	return entries, nil
}

func (r *ReadWatch) Search(ctx context.Context, query string, category domain.Category) ([]domain.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("category", string(category))

	body, err := r.get(ctx, "/api/search", params)
	if err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling search response: %w", err)
	}

	results := make([]domain.SearchResult, len(result.Results))
	for i, res := range result.Results {
		results[i] = res.toDomain()
	}

	return results, nil
}

func (r *ReadWatch) post(ctx context.Context, path string, payload any) ([]byte, error) {
	payloadBuf := new(bytes.Buffer)
	if err := json.NewEncoder(payloadBuf).Encode(payload); err != nil {
		return nil, fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, payloadBuf)
	if err != nil {
		return nil, fmt.Errorf("error creating POST request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")

	return r.do(req)
}

func (r *ReadWatch) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := r.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating GET request: %w", err)
	}

	return r.do(req)
}

func (r *ReadWatch) do(req *http.Request) ([]byte, error) {
	l := log.Ctx(req.Context()).With().Str("method", req.Method).Str("path", req.URL.Path).Logger()

	l.Debug().Msg("sending API request")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing request: %w", err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	l.Debug().Int("status", res.StatusCode).Int("bytes", len(body)).Msg("API response")

	if res.StatusCode != http.StatusOK {
		return nil, parseError(l, res.StatusCode, body)
	}

	return body, nil
}

func parseError(l zerolog.Logger, status int, body []byte) *domain.RemoteError {
	remoteErr := &domain.RemoteError{StatusCode: status, Message: domain.UnknownError}

	var result errorResponse
	if err := json.Unmarshal(body, &result); err != nil {
		l.Debug().Err(err).Int("status", status).Msg("error response is not JSON")
		return remoteErr
	}

	if result.Error != "" {
		remoteErr.Message = result.Error
	}

	return remoteErr
}
