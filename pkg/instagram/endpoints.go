package instagram

import (
	"fmt"
	"net/url"
)

const (
	// BaseURL is the base URL for Instagram's web API
	BaseURL = "https://www.instagram.com"

	// GraphQLURL is the URL for Instagram's GraphQL query endpoint
	GraphQLURL = "https://www.instagram.com/graphql/query"

	// LoginPath is the path of the login submission endpoint
	LoginPath = "/accounts/login/ajax/"

	// FeedQueryHash identifies the user-feed GraphQL query
	FeedQueryHash = "9dcf6e1a98bc7f6e92953d5a61027b98"

	// DefaultFeedCount is the default number of media items fetched per page
	DefaultFeedCount = 12
)

// Endpoints holds the target API URLs. The value is built once and
// never modified afterwards; every request derives its URL from it.
type Endpoints struct {
	BaseURL    string
	GraphQLURL string
}

// DefaultEndpoints returns the production Instagram endpoints
func DefaultEndpoints() Endpoints {
	return Endpoints{
		BaseURL:    BaseURL,
		GraphQLURL: GraphQLURL,
	}
}

// RootURL returns the URL of the site root page
func (e Endpoints) RootURL() string {
	return e.BaseURL + "/"
}

// LoginURL returns the URL of the login submission endpoint
func (e Endpoints) LoginURL() string {
	return e.BaseURL + LoginPath
}

// ProfileURL constructs the URL for fetching a user's profile
func (e Endpoints) ProfileURL(username string) string {
	params := url.Values{}
	params.Set("__a", "1")

	return fmt.Sprintf("%s/%s?%s", e.BaseURL, username, params.Encode())
}

// FeedURL constructs the URL for fetching a page of a user's feed
func (e Endpoints) FeedURL(variables string) string {
	params := url.Values{}
	params.Set("query_hash", FeedQueryHash)
	params.Set("variables", variables)

	return fmt.Sprintf("%s?%s", e.GraphQLURL, params.Encode())
}

// IsValidUsername checks if a username is valid according to Instagram rules
func IsValidUsername(username string) bool {
	if username == "" || len(username) > 30 {
		return false
	}

	// Instagram usernames can only contain letters, numbers, periods, and underscores
	for _, char := range username {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '.' || char == '_') {
			return false
		}
	}

	return true
}

// SanitizeUsername removes any invalid characters from a username
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}

	// Remove @ symbol if present at the beginning
	if username[0] == '@' {
		username = username[1:]
	}

	// Remove any trailing slashes or spaces
	for len(username) > 0 && (username[len(username)-1] == '/' || username[len(username)-1] == ' ') {
		username = username[:len(username)-1]
	}

	return username
}
