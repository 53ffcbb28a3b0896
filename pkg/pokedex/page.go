package pokedex

import "math"

const (
	// DefaultPage is used when a list request does not name a page.
	DefaultPage = 1

	// DefaultPerPage is used when neither the request nor the
	// configuration set a page size.
	DefaultPerPage = 10
)

// Page selects a window of records ordered by id. Number is 1-based.
// Values are not range-checked, there is no upper bound on Size. A
// negative offset or size is left for the database to reject.
type Page struct {
	Number int
	Size   int
}

// NewPage creates a Page, substituting defaults for zero values.
func NewPage(number, size int) Page {
	if number == 0 {
		number = DefaultPage
	}
	if size == 0 {
		size = DefaultPerPage
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of records before the page. It saturates
// at math.MaxInt or math.MinInt instead of wrapping around.
func (p Page) Offset() int {
	if p.Size > 0 {
		switch {
		case p.Number > 1 && p.Number-1 > math.MaxInt/p.Size:
			return math.MaxInt
		case p.Number < math.MinInt/p.Size+1:
			return math.MinInt
		}
	}
	return (p.Number - 1) * p.Size
}
