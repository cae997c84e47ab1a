// Package shorten calls an optional link-shortener service for share URLs.
// Shortening is strictly best effort: one attempt inside a bounded timeout,
// and every failure leaves the caller with the long URL.
package shorten

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 5 * time.Second

// Config holds the link-shortener settings. An empty Endpoint disables
// shortening; share links then stay in their long form.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// ErrNotConfigured is returned when shortening is requested without an
// endpoint configured.
var ErrNotConfigured = errors.New("shortener endpoint not configured")

// ShortenError reports a failed shortening attempt. Nothing is retried; the
// caller keeps the long URL.
type ShortenError struct {
	cause error
}

func (e *ShortenError) Error() string { return "shorten link: " + e.cause.Error() }

func (e *ShortenError) Unwrap() error { return e.cause }

// Client talks to the link-shortener service.
type Client struct {
	httpClient *http.Client
	config     Config
	log        logrus.FieldLogger
}

// NewClient builds a shortener client with the configured timeout.
func NewClient(config Config, log logrus.FieldLogger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		config:     config,
		log:        log.WithField("client", "shortener"),
	}
}

// SetHttpClient auxiliary method of testing to swap the underlying transport
func (c *Client) SetHttpClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

type shortenRequest struct {
	URL string `json:"url"`
}

type shortenResponse struct {
	ShortURL string `json:"shortUrl"`
}

// Shorten asks the service for a short form of longURL. A single attempt is
// made; any failure comes back as a ShortenError.
func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	if c.config.Endpoint == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(shortenRequest{URL: longURL})
	if err != nil {
		return "", &ShortenError{cause: errors.Wrap(err, "while marshaling request")}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &ShortenError{cause: errors.Wrap(err, "while creating request")}
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", &ShortenError{cause: errors.Wrap(err, "while executing request")}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", &ShortenError{cause: fmt.Errorf("while processing response: %s", c.handleWrongStatusCode(response))}
	}

	var decoded shortenResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return "", &ShortenError{cause: errors.Wrap(err, "while decoding response")}
	}
	if decoded.ShortURL == "" {
		return "", &ShortenError{cause: errors.New("response carries no short url")}
	}

	c.log.Debugf("shortened a %d-character link", len(longURL))
	return decoded.ShortURL, nil
}

func (c *Client) handleWrongStatusCode(response *http.Response) string {
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Sprintf("server returned %d status code, response body is unreadable", response.StatusCode)
	}
	return fmt.Sprintf("server returned %d status code, body: %s", response.StatusCode, string(body))
}
