package instagram

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"igclient/pkg/errors"
)

// Credentials holds a user's login material. The value is only handed
// to the login submission; it is never logged and never serialized.
type Credentials struct {
	Username string
	Password string `json:"-"`
}

// String redacts the password
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{username: %s}", c.Username)
}

// GoString redacts the password from %#v output
func (c Credentials) GoString() string {
	return c.String()
}

// loginState tracks progress through the login flow
type loginState int

const (
	stateUnauthenticated loginState = iota
	stateCsrfPending
	stateCsrfAcquired
	stateLoginSubmitted
	stateAuthenticated
	stateTwoFactorRequired
	stateFailed
)

// loginSession carries the token state discovered during the login
// flow. It is owned exclusively by the in-progress login call and only
// committed to the client once the flow succeeds.
type loginSession struct {
	state         loginState
	csrfToken     string
	initCSRFToken string
	rolloutHash   string
}

// Token patterns are compiled once at startup and shared read-only by
// every client.
var (
	csrfTokenPattern   = regexp.MustCompile(`csrf_token":"([A-Za-z0-9]+)`)
	rolloutHashPattern = regexp.MustCompile(`rollout_hash":"([A-Za-z0-9]+)`)
)

// TwoFactorError reports that the account requires a second factor,
// which this login flow does not implement. The challenge details are
// attached so the caller can branch on them.
type TwoFactorError struct {
	Challenge *TwoFactorChallenge
}

func (e *TwoFactorError) Error() string {
	return fmt.Sprintf("two_factor error: account %q requires a second factor (identifier %s)",
		e.Challenge.TwoFactorInfo.Username, e.Challenge.TwoFactorInfo.TwoFactorIdentifier)
}

// Login authenticates with the provided credentials and returns an
// AuthenticatedClient wrapping this client. The flow first scrapes a
// CSRF token (and, best-effort, a rollout hash) from the site root,
// then submits the credentials to the login endpoint.
//
// Login consumes the client: once a client has entered the login flow
// it refuses a second attempt, whether or not the first one succeeded.
func (c *Client) Login(creds Credentials) (*AuthenticatedClient, error) {
	if c.consumed {
		return nil, &errors.Error{
			Type:    errors.ErrorTypeAuth,
			Message: "client already drove a login attempt; create a new client",
			Code:    0,
		}
	}
	c.consumed = true

	session := &loginSession{state: stateUnauthenticated}

	if err := c.acquireSessionTokens(session); err != nil {
		session.state = stateFailed
		return nil, err
	}

	outcome, err := c.submitLogin(session, creds)
	if err != nil {
		session.state = stateFailed
		return nil, err
	}

	if outcome.twoFactor != nil {
		session.state = stateTwoFactorRequired
		c.logger.WarnWithFields("login requires a second factor", map[string]interface{}{
			"username": creds.Username,
		})
		return nil, &TwoFactorError{Challenge: outcome.twoFactor}
	}

	session.state = stateAuthenticated
	c.logger.InfoWithFields("login succeeded", map[string]interface{}{
		"username": creds.Username,
		"user_id":  outcome.success.UserID,
	})

	return newAuthenticatedClient(c, *outcome.success, *session), nil
}

// acquireSessionTokens fetches the site root and scrapes the CSRF token
// and rollout hash out of the HTML body. A missing CSRF token is a hard
// failure and no login submission is attempted; a missing rollout hash
// never fails the flow.
func (c *Client) acquireSessionTokens(session *loginSession) error {
	session.state = stateCsrfPending

	resp, err := c.Get(c.endpoints.RootURL())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &errors.Error{
			Type:    errors.ErrorTypeNetwork,
			Message: fmt.Sprintf("root page fetch returned status %d", resp.StatusCode),
			Code:    resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.Error{
			Type:    errors.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read root page body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	if m := rolloutHashPattern.FindSubmatch(body); m != nil {
		session.rolloutHash = string(m[1])
	}

	m := csrfTokenPattern.FindSubmatch(body)
	if m == nil {
		c.logger.Error("no CSRF token found on root page")
		return &errors.Error{
			Type:    errors.ErrorTypeCSRF,
			Message: "no CSRF token found on root page",
			Code:    resp.StatusCode,
		}
	}

	session.csrfToken = string(m[1])
	session.initCSRFToken = session.csrfToken
	session.state = stateCsrfAcquired

	c.logger.DebugWithFields("session tokens acquired", map[string]interface{}{
		"rollout_hash_found": session.rolloutHash != "",
	})

	return nil
}

// submitLogin POSTs the credentials with the discovered tokens and
// decodes the response body against the known login shapes. The body is
// decoded regardless of the HTTP status: the platform answers a
// two-factor challenge with a 4xx status and a JSON body.
func (c *Client) submitLogin(session *loginSession, creds Credentials) (*loginOutcome, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	req, err := http.NewRequest("POST", c.endpoints.LoginURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &errors.Error{
			Type:    errors.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create login request: %v", err),
			Code:    0,
		}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRFToken", session.csrfToken)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("Referer", c.endpoints.BaseURL)
	req.Header.Set("Origin", c.endpoints.BaseURL)
	if session.rolloutHash != "" {
		req.Header.Set("X-Instagram-AJAX", session.rolloutHash)
	}
	req.AddCookie(&http.Cookie{Name: "ig_cb", Value: "1"})

	session.state = stateLoginSubmitted

	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.Error{
			Type:    errors.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read login response body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	outcome, ok := decodeLoginResponse(body)
	if !ok {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &errors.Error{
				Type:    errors.ErrorTypeNetwork,
				Message: fmt.Sprintf("login submission returned status %d", resp.StatusCode),
				Code:    resp.StatusCode,
			}
		}
		return nil, &errors.Error{
			Type:    errors.ErrorTypeParsing,
			Message: "login response matched no known shape",
			Code:    resp.StatusCode,
		}
	}

	return outcome, nil
}
