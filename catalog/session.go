package catalog

import "github.com/abduulthecoder/fam-vans-parts-store/models"

// Session owns the mutable browsing state for one pass over the catalog:
// the base collection (post van-match, pre-filter), the working collection
// (post filter+sort), the active criteria and the current page. Collections
// are always replaced wholesale, never patched, so a Session can be driven
// repeatedly with no locking as long as it has a single writer — the
// storefront builds one per request.
type Session struct {
	base     []models.Product
	working  []models.Product
	criteria models.FilterCriteria
	page     int
	pageSize int
}

// NewSession starts a session over the given base collection. A pageSize
// below 1 falls back to DefaultPageSize. The initial working collection is
// the base itself, unfiltered and unsorted.
func NewSession(base []models.Product, pageSize int) *Session {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	s := &Session{pageSize: pageSize, page: 1}
	s.base = make([]models.Product, len(base))
	copy(s.base, base)
	s.working = make([]models.Product, len(base))
	copy(s.working, base)
	return s
}

// ApplyFilters recomputes the working collection from the base collection —
// never from the previous working collection — then resets to page 1.
// Calling it twice with the same criteria is a no-op on the result.
func (s *Session) ApplyFilters(c models.FilterCriteria) {
	s.criteria = c
	s.working = Sort(Filter(s.base, c), c.SortKey)
	s.page = 1
}

// ClearFilters restores the base collection exactly, without re-running the
// van matcher, and resets to page 1.
func (s *Session) ClearFilters() {
	s.criteria = models.FilterCriteria{}
	s.working = make([]models.Product, len(s.base))
	copy(s.working, s.base)
	s.page = 1
}

// SetPage moves to the given 1-indexed page, clamped to the valid range.
func (s *Session) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if last := s.TotalPages(); last > 0 && n > last {
		n = last
	}
	s.page = n
}

// CurrentPage returns the products on the current page of the working
// collection.
func (s *Session) CurrentPage() []models.Product {
	return Page(s.working, s.pageSize, s.page)
}

// Working returns the filtered, sorted collection backing pagination.
func (s *Session) Working() []models.Product {
	return s.working
}

// Criteria returns the criteria of the last ApplyFilters call.
func (s *Session) Criteria() models.FilterCriteria {
	return s.criteria
}

// PageNumber returns the current 1-indexed page.
func (s *Session) PageNumber() int {
	return s.page
}

// PageSize returns the fixed page size of the session.
func (s *Session) PageSize() int {
	return s.pageSize
}

// Total returns the size of the working collection.
func (s *Session) Total() int {
	return len(s.working)
}

// TotalPages returns the page count of the working collection.
func (s *Session) TotalPages() int {
	return TotalPages(len(s.working), s.pageSize)
}
