package potapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	errs "github.com/priceopt/pot-web/internal/errors"
	"github.com/priceopt/pot-web/session"
)

// Credentials is everything a successful login yields. The token and role
// arrive in response headers, the user id and display name in the body.
type Credentials struct {
	Token       string
	UserID      string
	UserRole    string
	DisplayName string
}

// Login authenticates against the backend. It is the one call that sends no
// session headers and the one call that reads response headers: the backend
// returns `Authorization: Bearer <token>` and `User-Role` alongside a
// `{user_id, user_name}` body.
func (c *Client) Login(ctx context.Context, username, password string) (Credentials, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return Credentials{}, errs.Wrapf(err, "encode login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login/", bytes.NewReader(payload))
	if err != nil {
		return Credentials{}, errs.Wrapf(err, "build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Err(err).Msg("Login request failed")
		return Credentials{}, &errs.NetworkError{Op: "login", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Bad credentials and backend trouble read the same to the user.
		return Credentials{}, &errs.RequestFailedError{
			Message: "Login failed. Please check your credentials.",
			Status:  resp.StatusCode,
		}
	}

	var body struct {
		UserID   json.Number `json:"user_id"`
		UserName string      `json:"user_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Credentials{}, errs.Wrapf(err, "decode login response")
	}

	creds := Credentials{
		Token:       strings.TrimPrefix(resp.Header.Get("Authorization"), "Bearer "),
		UserID:      body.UserID.String(),
		UserRole:    resp.Header.Get("User-Role"),
		DisplayName: body.UserName,
	}
	c.log.Info().Str("user_id", creds.UserID).Str("role", creds.UserRole).Msg("Login succeeded")
	return creds, nil
}

// Register creates a new account. The backend rejects duplicate usernames and
// emails; any non-2xx reads as a registration failure here.
func (c *Client) Register(ctx context.Context, username, password, name, email string) error {
	payload := map[string]string{
		"username": username,
		"password": password,
		"name":     name,
		"email":    email,
	}
	_, err := c.send(ctx, session.Session{}, http.MethodPost, "/auth/register/", payload, "Registration failed. Please try again.")
	return err
}

// Logout invalidates the backend token. The caller clears its cookies whether
// or not this succeeds.
func (c *Client) Logout(ctx context.Context, sess session.Session) error {
	_, err := c.send(ctx, sess, http.MethodPost, "/auth/logout/", nil, "Logout failed")
	return err
}
