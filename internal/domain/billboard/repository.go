package billboard

import "context"

// Catalog is the read-only table of billboards, loaded once at startup.
type Catalog interface {
	List() []Billboard
	FindByCode(code string) (Billboard, bool)
	FindByID(id int) (Billboard, bool)
}

// LookupStore counts successful predictions per billboard.
type LookupStore interface {
	IncrementLookup(ctx context.Context, code string) error
	TopLookups(ctx context.Context, limit int) ([]Lookup, error)
}
