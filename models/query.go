package models

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// QueryValues flattens a query parameter struct into the key/value pairs
// the transport appends to a request URL. Keys come from the `url` tags
// on the struct; optional fields left unset produce no pair.
func QueryValues(v any) (url.Values, error) {
	vals, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("encode query parameters: %w", err)
	}
	return vals, nil
}
