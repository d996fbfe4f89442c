package contentimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/fx"

	"github.com/orgball2608/newsportal/internal/content"
	"github.com/orgball2608/newsportal/pkg/config"
	"github.com/orgball2608/newsportal/pkg/errors"
	"github.com/orgball2608/newsportal/pkg/logger"
)

const (
	userAgent = "newsportal/1.0"

	// maxErrorBody bounds how much of a failed response is read for its
	// error message.
	maxErrorBody = 64 << 10
)

type ClientImpl struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *ClientImpl {
	return NewWithHTTPClient(
		opts.Config.ContentBaseURL(),
		&http.Client{Timeout: opts.Config.Content.Timeout},
		opts.Logger,
	)
}

// NewWithHTTPClient builds a client against baseURL using hc.
func NewWithHTTPClient(baseURL string, hc *http.Client, log logger.Logger) *ClientImpl {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &ClientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		logger:     log.WithComponent("ContentClient"),
	}
}

var _ content.Client = (*ClientImpl)(nil)

// apiError is the body the content API sends with failed requests.
type apiError struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (c *ClientImpl) endpoint(path string) string {
	return c.baseURL + path
}

func (c *ClientImpl) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	_, err = c.do(req, out)
	return err
}

func (c *ClientImpl) postJSON(ctx context.Context, path string, body any, sess *content.Session, out any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	applySession(req, sess)
	return c.do(req, out)
}

// do sends req and decodes a 2xx body into out, if out is not nil.
// Other statuses map onto the errors taxonomy using the API's message.
func (c *ClientImpl) do(req *http.Request, out any) (*http.Response, error) {
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		return nil, errors.WrapWithCode(errors.ErrServiceUnavailable, "content_unreachable",
			fmt.Sprintf("fetch %s: %v", req.URL.Path, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr apiError
		_ = json.Unmarshal(body, &apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Detail
		}
		c.logger.Warn("Content API request failed",
			"method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "error", msg)
		return resp, errors.FromStatus(resp.StatusCode, msg)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp, fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return resp, nil
}

func escape(segment string) string {
	return url.PathEscape(strings.Trim(segment, "/"))
}
