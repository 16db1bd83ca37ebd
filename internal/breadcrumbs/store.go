package breadcrumbs

// Store is the per-request key/value store holding the trail. echo.Context
// satisfies it.
type Store interface {
	Get(key string) interface{}
	Set(key string, val interface{})
}

// Has reports whether a trail has already been placed in the store under key.
func Has(s Store, key string) bool {
	_, ok := s.Get(key).(Trail)
	return ok
}

// FromContext returns the trail stored under key, or nil.
func FromContext(s Store, key string) Trail {
	trail, _ := s.Get(key).(Trail)
	return trail
}

// Append adds one item to the end of the trail stored under key.
func Append(s Store, key, label, url string) {
	trail := FromContext(s, key)
	s.Set(key, append(trail, Item{Label: label, URL: url}))
}

// Clear empties the trail stored under key.
func Clear(s Store, key string) {
	s.Set(key, Trail{})
}
