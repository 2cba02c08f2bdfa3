package instagram

import (
	"encoding/json"
	"fmt"
)

// This file holds the decoders for Instagram's graph-connection JSON
// shapes. Lists arrive as [{"node": T}, ...], optional scalars as a
// singleton edge list, and counters as {"count": N}. Unwrapping happens
// during unmarshalling so the domain types stay flat.

// DecodeError describes a response body that failed structural validation.
// Path names the JSON location relative to the value being decoded.
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Path, e.Reason)
}

// nodeList unwraps an edge list into its ordered nodes. An empty list
// decodes to an empty slice; a wrapper without a node fails the decode.
type nodeList[T any] []T

func (n *nodeList[T]) UnmarshalJSON(data []byte) error {
	var wrappers []struct {
		Node *T `json:"node"`
	}
	if err := json.Unmarshal(data, &wrappers); err != nil {
		return err
	}

	nodes := make([]T, len(wrappers))
	for i, w := range wrappers {
		if w.Node == nil {
			return &DecodeError{
				Path:   fmt.Sprintf("edges[%d].node", i),
				Reason: "missing node",
			}
		}
		nodes[i] = *w.Node
	}

	*n = nodes
	return nil
}

// MediaList is an ordered list of media decoded from an edge list
type MediaList = nodeList[Media]

// CommentList is an ordered list of comments decoded from an edge list
type CommentList = nodeList[MediaComment]

// Caption is an optional media caption. On the wire it is a singleton
// edge list under edge_media_to_caption; the last edge wins, an empty
// list means no caption.
type Caption struct {
	Text  string
	Valid bool
}

func (c *Caption) UnmarshalJSON(data []byte) error {
	var raw struct {
		Edges []struct {
			Node *struct {
				Text string `json:"text"`
			} `json:"node"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw.Edges) == 0 {
		*c = Caption{}
		return nil
	}

	last := raw.Edges[len(raw.Edges)-1]
	if last.Node == nil {
		return &DecodeError{
			Path:   fmt.Sprintf("edges[%d].node", len(raw.Edges)-1),
			Reason: "missing node",
		}
	}

	*c = Caption{Text: last.Node.Text, Valid: true}
	return nil
}

// Count is a counter decoded from a {"count": N} wrapper
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	var raw struct {
		Count *int `json:"count"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Count == nil {
		return &DecodeError{Path: "count", Reason: "missing count"}
	}

	*c = Count(*raw.Count)
	return nil
}
