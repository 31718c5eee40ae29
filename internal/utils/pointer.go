package utils

// Ptr returns a pointer to v.
//
// Example:
//
//	bg := utils.Ptr("park")
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value behind s, or the empty string when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NonEmpty returns a pointer to s, or nil when s is empty. Optional scene
// fields use it so that blank values encode as null.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
