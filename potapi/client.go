// Package potapi is the request gateway to the price-optimization backend.
// Every call the frontend makes goes through here: headers are built from the
// caller's session, failures map onto the shared error taxonomy, and a 401
// from any endpoint surfaces as ErrUnauthorized so the caller tears the
// session down.
package potapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	errs "github.com/priceopt/pot-web/internal/errors"
	"github.com/priceopt/pot-web/session"
)

// Client talks to the backend under its /pot base path. It does not retry,
// queue, or time out; a hung backend call hangs the corresponding UI action.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a gateway client. baseURL includes the /pot prefix.
func New(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logger,
	}
}

// send issues one request with the session's auth headers attached and maps
// the outcome: 401 becomes ErrUnauthorized, other non-2xx statuses become a
// RequestFailedError carrying failMsg, transport failures become a
// NetworkError. failMsg may contain a %d verb for the HTTP status.
func (c *Client) send(ctx context.Context, sess session.Session, method, path string, body any, failMsg string) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrapf(err, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errs.Wrapf(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if sess.Token != "" {
		req.Header.Set("Authorization", sess.Token)
	}
	if sess.UserID != "" {
		req.Header.Set("User-Id", sess.UserID)
	}
	if sess.UserRole != "" {
		req.Header.Set("User-Role", sess.UserRole)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Err(err).Str("method", method).Str("path", path).Msg("Backend request failed")
		return nil, &errs.NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn().Str("method", method).Str("path", path).Msg("Backend rejected credentials")
		return nil, errs.ErrUnauthorized
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.NetworkError{Op: method + " " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := failMsg
		if strings.Contains(failMsg, "%d") {
			msg = fmt.Sprintf(failMsg, resp.StatusCode)
		}
		c.log.Error().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg(msg)
		return nil, &errs.RequestFailedError{Message: msg, Status: resp.StatusCode}
	}

	return respBody, nil
}
