// Package remote implements the HTTP-backed sources that talk to the users,
// stores and orders microservices.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"wokstore/internal/storage"
)

// HTTPClient is satisfied by *http.Client and by test doubles.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx response from a backend service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return pkgerrors.As(err, &apiErr) && apiErr.Status == status
}

// envelope is the common response wrapper used by all three services.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Client is one backend service endpoint: a base address, a fixed timeout,
// JSON content type, and bearer injection from the session store. A 401
// response evicts the stored session through the same primitive the auth
// manager's logout uses.
type Client struct {
	baseURL string
	http    HTTPClient
	session *storage.SessionStore
	log     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, session *storage.SessionStore, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
}

// NewClientWithHTTP is used by tests to inject a transport.
func NewClientWithHTTP(baseURL string, httpClient HTTPClient, session *storage.SessionStore, log *logrus.Logger) *Client {
	return &Client{baseURL: baseURL, http: httpClient, session: session, log: log}
}

// do performs one request and decodes the envelope's data field into out.
// Transport errors are logged once here and returned unchanged.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("url", c.baseURL+path).Error("remote: request failed")
		return pkgerrors.Wrap(err, "request "+path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token expired or invalid: forced logout at the transport layer.
		c.session.Clear(ctx)
	}

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
		c.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"url":    c.baseURL + path,
		}).Error("remote: non-2xx response")
		return apiErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return pkgerrors.Wrap(err, "decode response")
	}
	return pkgerrors.Wrap(json.Unmarshal(env.Data, out), "decode response data")
}

func errorMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return string(raw)
}
