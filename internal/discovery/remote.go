package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxResponseBytes = 10 << 20

// ErrBackendUnavailable wraps transport failures reaching the backend.
var ErrBackendUnavailable = errors.New("discovery backend unavailable")

// UpstreamError is returned when the backend answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 200 {
		body = body[:200]
	}
	if body == "" {
		return fmt.Sprintf("discovery backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("discovery backend returned %d: %s", e.StatusCode, body)
}

// RemoteService forwards discovery calls to the backend process over HTTP.
type RemoteService struct {
	BaseURL string
	Client  *http.Client
}

func NewRemoteService(baseURL string) *RemoteService {
	return &RemoteService{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{},
	}
}

func (s *RemoteService) DiscoverUsers(ctx context.Context, userID string, limit, offset int, suggestionsOnly bool) (DiscoveryResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("suggestionsOnly", strconv.FormatBool(suggestionsOnly))

	body, err := s.get(ctx, "/internal/discover/users/"+url.PathEscape(userID), q)
	if err != nil {
		return nil, fmt.Errorf("discover users: %w", err)
	}
	return DiscoveryResponse(body), nil
}

func (s *RemoteService) GetAllUserData(ctx context.Context, userID string, friendsLimit, othersLimit int) (AllUsersResponse, error) {
	q := url.Values{}
	q.Set("friendsLimit", strconv.Itoa(friendsLimit))
	q.Set("othersLimit", strconv.Itoa(othersLimit))

	body, err := s.get(ctx, "/internal/discover/users/"+url.PathEscape(userID)+"/all", q)
	if err != nil {
		return nil, fmt.Errorf("get all user data: %w", err)
	}
	return AllUsersResponse(body), nil
}

func (s *RemoteService) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", ErrBackendUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
