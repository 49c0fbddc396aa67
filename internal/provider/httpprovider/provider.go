package httpprovider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"

	"github.com/goliatone/go-surveyform/pkg/provider"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// Option configures the HTTP provider.
type Option func(*Provider)

// WithHTTPClient overrides the client used for requests. The client is copied
// so the caller's instance is never mutated.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		if client != nil {
			clone := *client
			p.client = &clone
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		if timeout >= 0 {
			p.timeout = timeout
		}
	}
}

// WithoutContractValidation skips the OpenAPI response check. Structural
// decoding still applies.
func WithoutContractValidation() Option {
	return func(p *Provider) {
		p.validate = false
	}
}

// Provider implements provider.QuestionProvider against an HTTP endpoint that
// answers GET {base}?topic={topic} with {"questions":[...]}.
type Provider struct {
	base     *url.URL
	client   *http.Client
	timeout  time.Duration
	validate bool
	schema   *openapi3.Schema
}

// Ensure the implementation satisfies the public interface.
var _ provider.QuestionProvider = (*Provider)(nil)

// New constructs a Provider for baseURL.
func New(baseURL string, options ...Option) (*Provider, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("httpprovider: base url is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("httpprovider: parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("httpprovider: unsupported scheme %q", parsed.Scheme)
	}

	p := &Provider{
		base:     parsed,
		client:   &http.Client{},
		timeout:  defaultTimeout,
		validate: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	if p.validate {
		schema, err := responseSchema()
		if err != nil {
			return nil, err
		}
		p.schema = schema
	}
	return p, nil
}

// GetQuestions fetches the questions for topic.
func (p *Provider) GetQuestions(ctx context.Context, topic string) (provider.Response, error) {
	if p == nil || p.client == nil {
		return provider.Response{}, errors.New("httpprovider: provider is not configured")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if p.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, p.requestURL(topic), nil)
	if err != nil {
		return provider.Response{}, fmt.Errorf("httpprovider: build request: %w", err)
	}
	req.Header.Set("Accept", contractMediaType)

	resp, err := p.client.Do(req)
	if err != nil {
		return provider.Response{}, fmt.Errorf("httpprovider: request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return provider.Response{}, errors.New("httpprovider: unexpected status " + resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return provider.Response{}, fmt.Errorf("httpprovider: read body: %w", err)
	}
	return p.decode(data)
}

func (p *Provider) requestURL(topic string) string {
	u := *p.base
	query := u.Query()
	query.Set("topic", topic)
	u.RawQuery = query.Encode()
	return u.String()
}

func (p *Provider) decode(data []byte) (provider.Response, error) {
	if p.schema != nil {
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return provider.Response{}, fmt.Errorf("httpprovider: decode body: %w", err)
		}
		if err := p.schema.VisitJSON(raw); err != nil {
			return provider.Response{}, fmt.Errorf("httpprovider: response violates contract: %w", err)
		}
	}

	var out provider.Response
	if err := json.Unmarshal(data, &out); err != nil {
		return provider.Response{}, fmt.Errorf("httpprovider: decode body: %w", err)
	}
	return out, nil
}
