package instagram

// AuthenticatedClient is a client bound to a logged-in session. It is
// produced by Client.Login and owns the base client it wraps; fetches
// delegate to the base implementation.
type AuthenticatedClient struct {
	base    *Client
	result  LoginResult
	session loginSession
}

func newAuthenticatedClient(base *Client, result LoginResult, session loginSession) *AuthenticatedClient {
	return &AuthenticatedClient{
		base:    base,
		result:  result,
		session: session,
	}
}

// UserID returns the id of the logged-in user
func (a *AuthenticatedClient) UserID() string {
	return a.result.UserID
}

// CSRFToken returns the token acquired during login, for authenticated
// calls that need to echo it back.
func (a *AuthenticatedClient) CSRFToken() string {
	return a.session.csrfToken
}

// FetchUserProfile fetches a user's public profile
func (a *AuthenticatedClient) FetchUserProfile(username string) (*UserProfile, error) {
	return a.base.FetchUserProfile(username)
}

// FetchUserFeed fetches one page of a user's media feed
func (a *AuthenticatedClient) FetchUserFeed(userID string, opts *FeedOptions) (*UserFeed, error) {
	return a.base.FetchUserFeed(userID, opts)
}
