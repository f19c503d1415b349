package repository

// SortOrder selects the direction of a time-ordered listing.
type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

const (
	// DefaultPageLimit applies when a caller passes no limit.
	DefaultPageLimit = 50
	// MaxPageLimit caps any single page.
	MaxPageLimit = 500
)

// Page is a limit/offset window over a listing ordered by timestamp or date.
type Page struct {
	Limit  int
	Offset int
	Order  SortOrder
}

// Normalize clamps the page into a valid window. Listings are newest first unless Order is SortAsc.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Order != SortAsc {
		p.Order = SortDesc
	}

	return p
}

// PageFromNumber converts a 1-based page number into an offset.
func PageFromNumber(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	p := Page{Limit: limit}.Normalize()
	p.Offset = (number - 1) * p.Limit

	return p
}
