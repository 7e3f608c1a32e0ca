package backend

import (
	"bytes"
	"context"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ExpiryKind is the shape of an expiry response.
type ExpiryKind int

const (
	// ExpiryEmpty is an absent, null or empty response.
	ExpiryEmpty ExpiryKind = iota
	// ExpiryList is a non-empty JSON array.
	ExpiryList
	// ExpiryObject is any other payload.
	ExpiryObject
)

// ExpiryResponse is the body of GET /expiry. The backend enforces no schema.
type ExpiryResponse struct {
	Kind ExpiryKind
	// Entries holds the elements of a list response. Strings are kept verbatim, other values as raw JSON.
	Entries []string
	// Raw is the response body.
	Raw []byte
}

// Pretty returns the pretty-printed body of an object response.
func (r *ExpiryResponse) Pretty() string {
	if !gjson.ValidBytes(r.Raw) {
		return string(bytes.TrimSpace(r.Raw))
	}
	return string(bytes.TrimSpace(pretty.Pretty(r.Raw)))
}

// Expiry fetches the items expiring soon.
func (c *Client) Expiry(ctx context.Context) (*ExpiryResponse, error) {
	body, err := c.do(ctx, http.MethodGet, "/expiry", nil)
	if err != nil {
		return nil, err
	}
	return parseExpiry(body), nil
}

func parseExpiry(body []byte) *ExpiryResponse {
	response := &ExpiryResponse{Raw: body}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return response
	}
	if !gjson.ValidBytes(trimmed) {
		response.Kind = ExpiryObject
		return response
	}

	result := gjson.ParseBytes(trimmed)
	switch {
	case result.Type == gjson.Null:
	case result.IsArray():
		for _, entry := range result.Array() {
			if entry.Type == gjson.String {
				response.Entries = append(response.Entries, entry.String())
			} else {
				response.Entries = append(response.Entries, entry.Raw)
			}
		}
		if len(response.Entries) > 0 {
			response.Kind = ExpiryList
		}
	case result.IsObject():
		if len(result.Map()) > 0 {
			response.Kind = ExpiryObject
		}
	default:
		response.Kind = ExpiryObject
	}
	return response
}
