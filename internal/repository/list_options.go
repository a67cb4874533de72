package repository

import "gorm.io/gorm"

const (
	// DefaultPageLimit is used when a listing does not ask for a limit.
	DefaultPageLimit = 50
	// MaxPageLimit caps any requested limit.
	MaxPageLimit = 200
)

// ListOptions is limit/offset pagination for list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// Normalize clamps the limit into (0, MaxPageLimit] and the offset to >= 0.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultPageLimit
	}
	if o.Limit > MaxPageLimit {
		o.Limit = MaxPageLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

func (o ListOptions) apply(db *gorm.DB) *gorm.DB {
	o = o.Normalize()
	return db.Limit(o.Limit).Offset(o.Offset)
}
