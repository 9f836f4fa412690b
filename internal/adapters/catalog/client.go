package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bnema/gamectl/internal/domain"
	"github.com/bnema/gamectl/internal/ports"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	retcodeNotFound       = -1
)

// Client talks to the remote patch catalog.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.Catalog = Client{}

type findPatchResponse struct {
	Retcode int             `json:"retcode"`
	GameID  string          `json:"game_id"`
	Version string          `json:"version"`
	Channel json.RawMessage `json:"channel"`
	Message string          `json:"message"`
}

type patchMessageResponse struct {
	HasMessage bool   `json:"has_message"`
	Message    string `json:"message"`
}

// FindPatch looks up the build a fingerprint belongs to. Rejections by the
// catalog come back as a not-found outcome; only transport failures are
// returned as errors.
func (c Client) FindPatch(ctx context.Context, fingerprint string) (domain.CheckOutcome, error) {
	if fingerprint == "" {
		return domain.CheckOutcome{}, domain.ErrNoFingerprint
	}

	endpoint, err := buildAPIURL(c.BaseURL, "patch/find/"+url.PathEscape(fingerprint))
	if err != nil {
		return domain.CheckOutcome{}, err
	}

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return domain.CheckOutcome{}, fmt.Errorf("find patch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.NotFoundOutcome(fmt.Sprintf("status %d", resp.StatusCode)), nil
	}

	var payload findPatchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.NotFoundOutcome("invalid catalog response"), nil
	}
	if payload.Retcode == retcodeNotFound {
		reason := payload.Message
		if reason == "" {
			reason = "unknown build"
		}
		return domain.NotFoundOutcome(reason), nil
	}

	channel, ok := parseChannel(payload.Channel)
	if payload.GameID == "" || payload.Version == "" || !ok {
		return domain.NotFoundOutcome("incomplete catalog response"), nil
	}

	return domain.FoundOutcome(domain.GameID(payload.GameID), domain.Version(payload.Version), channel), nil
}

// PatchMessage fetches the advisory shown before launching a build.
func (c Client) PatchMessage(ctx context.Context, launch domain.LaunchContext) (domain.Advisory, error) {
	path := "patch/message/" + url.PathEscape(string(launch.Game)) + "/" +
		url.PathEscape(string(launch.Version)) + "/" + strconv.Itoa(int(launch.Channel))
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return domain.Advisory{}, err
	}

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return domain.Advisory{}, fmt.Errorf("fetch patch message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Advisory{}, nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Advisory{}, fmt.Errorf("fetch patch message: status %d", resp.StatusCode)
	}

	var payload patchMessageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.Advisory{}, fmt.Errorf("decode patch message response: %w", err)
	}

	return domain.Advisory{HasMessage: payload.HasMessage, Message: payload.Message}, nil
}

func (c Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	requestCtx, cancel := c.requestContext(ctx)

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = cancelOnClose{ReadCloser: resp.Body, cancel: cancel}

	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// parseChannel accepts the channel as a JSON number or a numeric string.
func parseChannel(raw json.RawMessage) (domain.Channel, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var number int
	if err := json.Unmarshal(raw, &number); err == nil {
		return domain.Channel(number), number >= 0
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, false
	}
	channel, err := domain.ParseChannel(text)
	if err != nil {
		return 0, false
	}

	return channel, true
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("catalog base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse catalog base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("catalog base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("catalog base url host is required")
	}
	if parsed.Path == "" || parsed.Path[len(parsed.Path)-1] != '/' {
		parsed.Path += "/"
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse catalog path: %w", err)
	}
	return endpoint.String(), nil
}
