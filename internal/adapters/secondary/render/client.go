package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"salary-prediction-api/internal/config"
	"salary-prediction-api/internal/core/domain"
	ports "salary-prediction-api/internal/core/ports/output"
)

// APIError is returned for any non-2xx response from the Render API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("render api: status %d: %s", e.StatusCode, e.Body)
}

type renderClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRenderClient creates a new Render API client adapter
func NewRenderClient(cfg *config.RenderConfig) (ports.HostingClient, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &renderClient{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Render list endpoints wrap every item next to a pagination cursor; some
// detail responses use the same wrapper, others return the bare object.
type ownerEnvelope struct {
	Owner  *domain.Owner `json:"owner"`
	Cursor string        `json:"cursor"`
}

type serviceEnvelope struct {
	Service *domain.Service `json:"service"`
}

func decodeService(raw json.RawMessage) (*domain.Service, error) {
	var envelope serviceEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode service: %w", err)
	}
	if envelope.Service != nil {
		return envelope.Service, nil
	}

	var svc domain.Service
	if err := json.Unmarshal(raw, &svc); err != nil {
		return nil, fmt.Errorf("decode service: %w", err)
	}
	return &svc, nil
}

func decodeOwner(raw json.RawMessage) (*domain.Owner, error) {
	var envelope ownerEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode owner: %w", err)
	}
	if envelope.Owner != nil {
		return envelope.Owner, nil
	}

	var owner domain.Owner
	if err := json.Unmarshal(raw, &owner); err != nil {
		return nil, fmt.Errorf("decode owner: %w", err)
	}
	return &owner, nil
}

func (c *renderClient) ListOwners(ctx context.Context) ([]domain.Owner, error) {
	var items []json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/owners", nil, &items); err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}

	owners := make([]domain.Owner, 0, len(items))
	for _, raw := range items {
		owner, err := decodeOwner(raw)
		if err != nil {
			return nil, err
		}
		if owner.ID == "" {
			continue
		}
		owners = append(owners, *owner)
	}
	return owners, nil
}

func (c *renderClient) ListServices(ctx context.Context, name string) ([]domain.Service, error) {
	path := "/services"
	if name != "" {
		params := url.Values{}
		params.Set("name", name)
		path += "?" + params.Encode()
	}

	var items []json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	services := make([]domain.Service, 0, len(items))
	for _, raw := range items {
		svc, err := decodeService(raw)
		if err != nil {
			return nil, err
		}
		if name != "" && svc.Name != name {
			continue
		}
		services = append(services, *svc)
	}
	return services, nil
}

func (c *renderClient) CreateService(ctx context.Context, spec *domain.ServiceSpec) (*domain.Service, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/services", spec, &raw); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return nil, fmt.Errorf("create service %q: %w", spec.Name, domain.ErrServiceExists)
		}
		return nil, fmt.Errorf("create service: %w", err)
	}
	return decodeService(raw)
}

func (c *renderClient) GetService(ctx context.Context, id string) (*domain.Service, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/services/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return decodeService(raw)
}

func (c *renderClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{
		"method": method,
		"url":    reqURL,
	}).Debug("calling render api")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
