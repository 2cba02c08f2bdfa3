// Package instagram provides a client for Instagram's web and GraphQL
// query endpoints.
//
// This package includes:
//   - An unauthenticated Client for profile and feed fetches
//   - A login flow that scrapes the CSRF token from the site root,
//     submits credentials and yields an AuthenticatedClient
//   - Flat domain models decoded from the platform's graph-connection
//     JSON shapes (edge lists, singleton edges, count wrappers)
//   - Typed errors distinguishing transport, decode, CSRF and
//     two-factor failures
//
// Example usage:
//
//	client := instagram.NewClient(30*time.Second, nil)
//
//	profile, err := client.FetchUserProfile("username")
//	if err != nil {
//	    // 404s surface as errors.ErrorTypeNotFound
//	}
//
//	feed, err := client.FetchUserFeed(profile.ID, nil)
//	for feed.PageInfo.HasNextPage {
//	    feed, err = client.FetchUserFeed(profile.ID, &instagram.FeedOptions{
//	        After: *feed.PageInfo.EndCursor,
//	    })
//	    // ...
//	}
//
//	authed, err := client.Login(instagram.Credentials{Username: "u", Password: "p"})
//	var twoFactor *instagram.TwoFactorError
//	if errors.As(err, &twoFactor) {
//	    // the account needs a second factor; this flow stops here
//	}
package instagram
