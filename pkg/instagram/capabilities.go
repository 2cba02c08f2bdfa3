package instagram

// Capability identifies one operation this client family implements
type Capability string

const (
	CapabilityProfileFetch Capability = "profile_fetch"
	CapabilityFeedFetch    Capability = "feed_fetch"
	CapabilityLogin        Capability = "login"
)

// supportedCapabilities lists the operations both clients implement
var supportedCapabilities = []Capability{
	CapabilityProfileFetch,
	CapabilityFeedFetch,
	CapabilityLogin,
}

// plannedCapabilities lists web-API operations that are known but not
// implemented. Extend this list when an operation lands; none are
// pending right now.
var plannedCapabilities = []Capability{}

// SupportedCapabilities returns the operations the clients implement
func SupportedCapabilities() []Capability {
	out := make([]Capability, len(supportedCapabilities))
	copy(out, supportedCapabilities)
	return out
}

// PlannedCapabilities returns known but unimplemented operations
func PlannedCapabilities() []Capability {
	out := make([]Capability, len(plannedCapabilities))
	copy(out, plannedCapabilities)
	return out
}

// ProfileFetcher fetches public profiles
type ProfileFetcher interface {
	FetchUserProfile(username string) (*UserProfile, error)
}

// FeedFetcher fetches pages of a user's media feed
type FeedFetcher interface {
	FetchUserFeed(userID string, opts *FeedOptions) (*UserFeed, error)
}

var (
	_ ProfileFetcher = (*Client)(nil)
	_ FeedFetcher    = (*Client)(nil)
	_ ProfileFetcher = (*AuthenticatedClient)(nil)
	_ FeedFetcher    = (*AuthenticatedClient)(nil)
)
