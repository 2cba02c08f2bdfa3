package instagram

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"igclient/pkg/errors"
	"igclient/pkg/logger"
)

// Client is the unauthenticated entry point to the Instagram web API
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	endpoints  Endpoints
	logger     logger.Logger

	// consumed is set once the client enters the login flow; a client
	// drives at most one login attempt
	consumed bool
}

// NewClient creates a new client against the production endpoints
func NewClient(timeout time.Duration, log logger.Logger) *Client {
	return NewClientWithEndpoints(DefaultEndpoints(), timeout, log)
}

// NewClientWithEndpoints creates a new client against custom endpoints
func NewClientWithEndpoints(endpoints Endpoints, timeout time.Duration, log logger.Logger) *Client {
	// Use default logger if none provided
	if log == nil {
		log = logger.GetLogger()
	}

	// The cookie jar keeps session cookies across the calls of one
	// client; gzip decompression is handled by the transport.
	jar, _ := cookiejar.New(nil)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
			"Accept":          "*/*",
			"Accept-Language": "en-US",
		},
		endpoints: endpoints,
		logger:    log,
	}
}

// Endpoints returns the endpoint configuration the client was built with
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// SetHeader sets a custom default header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// doRequest performs an HTTP request with the configured default headers
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	for key, value := range c.headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.String(),
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, &errors.Error{
			Type:    errors.ErrorTypeNetwork,
			Message: fmt.Sprintf("network error: %v", err),
			Code:    0,
		}
	}

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"method":   req.Method,
		"url":      req.URL.String(),
		"status":   resp.StatusCode,
		"duration": duration,
	})

	return resp, nil
}

// Get performs a GET request to the specified URL
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, &errors.Error{
			Type:    errors.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Code:    0,
		}
	}

	return c.doRequest(req)
}

// GetJSON performs a GET request and decodes the JSON response
func (c *Client) GetJSON(url string, target interface{}) error {
	resp, err := c.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkResponseStatus(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.Error{
			Type:    errors.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}

		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"url":          url,
			"status":       resp.StatusCode,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return &errors.Error{
			Type:    errors.ErrorTypeParsing,
			Message: fmt.Sprintf("failed to parse JSON: %v", err),
			Code:    resp.StatusCode,
		}
	}

	return nil
}

// checkResponseStatus checks the HTTP response status and returns appropriate errors
func (c *Client) checkResponseStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		c.logger.WarnWithFields("authentication error", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errors.Error{
			Type:    errors.ErrorTypeAuth,
			Message: "authentication required",
			Code:    resp.StatusCode,
		}
	case http.StatusNotFound:
		c.logger.WarnWithFields("resource not found", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errors.Error{
			Type:    errors.ErrorTypeNotFound,
			Message: "resource not found",
			Code:    resp.StatusCode,
		}
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		c.logger.ErrorWithFields("server error", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    resp.Request.URL.String(),
		})
		return &errors.Error{
			Type:    errors.ErrorTypeServerError,
			Message: "server error",
			Code:    resp.StatusCode,
		}
	default:
		if resp.StatusCode >= 400 {
			c.logger.ErrorWithFields("unexpected API error", map[string]interface{}{
				"status": resp.StatusCode,
				"url":    resp.Request.URL.String(),
			})
			return &errors.Error{
				Type:    errors.ErrorTypeUnknown,
				Message: fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
				Code:    resp.StatusCode,
			}
		}
		return nil
	}
}

// FetchUserProfile fetches a user's public profile
func (c *Client) FetchUserProfile(username string) (*UserProfile, error) {
	url := c.endpoints.ProfileURL(username)

	c.logger.DebugWithFields("fetching user profile", map[string]interface{}{
		"username": username,
		"url":      url,
	})

	var envelope profileEnvelope
	if err := c.GetJSON(url, &envelope); err != nil {
		c.logger.ErrorWithFields("failed to fetch user profile", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	profile := envelope.GraphQL.User
	if profile.ID == "" || profile.Username == "" {
		return nil, &errors.Error{
			Type:    errors.ErrorTypeParsing,
			Message: "profile response missing required fields",
			Code:    http.StatusOK,
		}
	}

	return &profile, nil
}

// FetchUserFeed fetches one page of a user's media feed. A nil opts
// requests the first DefaultFeedCount items.
func (c *Client) FetchUserFeed(userID string, opts *FeedOptions) (*UserFeed, error) {
	var options FeedOptions
	if opts != nil {
		options = *opts
	}

	variables, err := options.variables(userID)
	if err != nil {
		return nil, &errors.Error{
			Type:    errors.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to encode feed variables: %v", err),
			Code:    0,
		}
	}

	url := c.endpoints.FeedURL(variables)

	c.logger.DebugWithFields("fetching user feed", map[string]interface{}{
		"user_id": userID,
		"after":   options.After,
		"url":     url,
	})

	var envelope feedEnvelope
	if err := c.GetJSON(url, &envelope); err != nil {
		c.logger.ErrorWithFields("failed to fetch user feed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	feed := envelope.Data.User.Feed
	return &feed, nil
}
