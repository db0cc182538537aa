package engine

import "github.com/google/uuid"

// NewID returns a unique registry id prefixed with the kind name
func NewID(k Kind) string {
	return k.String() + "-" + uuid.NewString()
}
