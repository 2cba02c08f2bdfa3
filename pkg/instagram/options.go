package instagram

import "encoding/json"

// FeedOptions controls a feed fetch. The zero value is usable; Count
// falls back to DefaultFeedCount and After to "start from the top".
type FeedOptions struct {
	// Count is the number of media items to request
	Count int

	// After is the opaque end cursor of a previous page, passed back
	// verbatim to continue paging
	After string
}

// feedVariables is the JSON document sent as the "variables" query
// parameter of the feed GraphQL query.
type feedVariables struct {
	ID    *string `json:"id"`
	First int     `json:"first"`
	After *string `json:"after"`
}

// variables serializes the options for the given user. An empty userID
// or cursor encodes as JSON null.
func (o FeedOptions) variables(userID string) (string, error) {
	v := feedVariables{First: o.Count}
	if v.First <= 0 {
		v.First = DefaultFeedCount
	}
	if userID != "" {
		v.ID = &userID
	}
	if o.After != "" {
		after := o.After
		v.After = &after
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
