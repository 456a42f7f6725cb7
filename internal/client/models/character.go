// Package models defines the client-side data model.
package models

// Character is a character record as fetched from the remote API and as
// cached in the local store.
//
// Text fields are pointers: nil means "absent". The store writes nil as an
// empty string but reads empty strings back as nil, so a value that was
// present-but-empty upstream comes back absent from the cache.
type Character struct {
	// ID is assigned by the store on insert; nil until persisted.
	ID *int64 `json:"-"`

	Name    *string `json:"name"`
	Gender  *string `json:"gender"`
	Culture *string `json:"culture"`

	// Titles keeps upstream order, which is also display order.
	Titles []string `json:"titles"`
}

// Text returns the value of a nullable text field, or "" when absent.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Nullable maps "" to nil and anything else to a pointer to a copy.
func Nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Ptr returns a pointer to s, including for "".
func Ptr(s string) *string {
	return &s
}
