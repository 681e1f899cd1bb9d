package service

import "github.com/google/uuid"

// newID generates a collection-scoped record ID. The single-letter prefix
// keeps the ID namespace of the seeded records (e*, g*, b*, s*, d*, c*).
func newID(prefix string) string {
	return prefix + uuid.NewString()
}
