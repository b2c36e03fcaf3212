package catalog

import (
	"strings"

	"github.com/pitstopd/pitstop/internal/domain"
)

// ResolveDealership maps a free-text identifier to a dealership: exact id
// match first, then case-insensitive substring match against names in
// catalog order. When several names match, the first wins; that is the
// documented policy, not a ranking.
func (s *Store) ResolveDealership(identifier string) (*domain.Dealership, error) {
	if d, err := s.GetDealership(identifier); err == nil {
		return d, nil
	}
	needle := strings.ToLower(identifier)
	for _, d := range s.dealerships {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			match := d
			return &match, nil
		}
	}
	return nil, domain.ErrNotFound
}

// NormalizeService maps a natural-language service description onto a
// canonical service code via lowercase substring search over the keyword
// table; the first matching entry wins. Unmatched input is returned
// verbatim, never rejected.
func NormalizeService(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range keywordTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return string(entry.Code)
			}
		}
	}
	return text
}
