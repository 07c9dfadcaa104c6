package model

import (
	"encoding/base64"
	"encoding/json"
)

// Pagination tokens are opaque cursors: a small JSON document (for
// unbondings, the last sequence of the served page) wrapped in URL-safe
// base64 so it survives query strings untouched.

func DecodePaginationToken[T any](token string) (*T, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var cursor T
	if err := json.Unmarshal(raw, &cursor); err != nil {
		return nil, err
	}
	return &cursor, nil
}

func GetPaginationToken[T any](cursor T) (string, error) {
	raw, err := json.Marshal(cursor)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}
