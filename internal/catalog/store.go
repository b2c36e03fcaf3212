// Package catalog holds the dealership catalog and the slot availability
// store. All state is process-lifetime only; a restart reseeds the grid.
package catalog

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pitstopd/pitstop/internal/domain"
)

// slotTimes is the fixed set of bookable times per day.
var slotTimes = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00"}

type slotKey struct {
	dealershipID string
	date         string
	time         string
}

// Store is the shared catalog and availability state. One instance is
// constructed at startup and passed by handle to every operation; slot
// mutation is serialized by a single mutex so no two reservations can
// succeed for the same triple.
type Store struct {
	mu          sync.Mutex
	dealerships []domain.Dealership
	byID        map[string]int
	slots       map[slotKey]*domain.TimeSlot
}

// NewStore seeds the dealership catalog and generates the slot grid for
// daysAhead days starting the day after base.
func NewStore(base time.Time, daysAhead int) *Store {
	s := &Store{
		dealerships: seedDealerships(),
		byID:        make(map[string]int),
		slots:       make(map[slotKey]*domain.TimeSlot),
	}
	for i, d := range s.dealerships {
		s.byID[d.ID] = i
	}
	for _, d := range s.dealerships {
		for offset := 1; offset <= daysAhead; offset++ {
			date := base.AddDate(0, 0, offset).Format("2006-01-02")
			for _, t := range slotTimes {
				key := slotKey{d.ID, date, t}
				s.slots[key] = &domain.TimeSlot{
					DealershipID: d.ID,
					Date:         date,
					Time:         t,
					Available:    slotSeedAvailable(d.ID, date, t),
				}
			}
		}
	}
	return s
}

// slotSeedAvailable decides a slot's initial availability: FNV-1a over
// "id|date|time", available when the hash mod 10 exceeds 2 (roughly 30%
// of slots start out taken). Deterministic for identical inputs.
func slotSeedAvailable(dealershipID, date, t string) bool {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s", dealershipID, date, t)
	return h.Sum32()%10 > 2
}

// Dealerships returns the full catalog in seed order.
func (s *Store) Dealerships() []domain.Dealership {
	out := make([]domain.Dealership, len(s.dealerships))
	copy(out, s.dealerships)
	return out
}

// GetDealership looks a dealership up by its id.
func (s *Store) GetDealership(id string) (*domain.Dealership, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d := s.dealerships[i]
	return &d, nil
}

// Search filters the catalog by case-insensitive substring match on
// location and by canonical-service membership. The service argument is
// normalized first; empty filters return the full catalog.
func (s *Store) Search(location, service string) []domain.Dealership {
	results := s.Dealerships()
	if location != "" {
		loc := strings.ToLower(location)
		filtered := results[:0]
		for _, d := range results {
			if strings.Contains(strings.ToLower(d.Location), loc) {
				filtered = append(filtered, d)
			}
		}
		results = filtered
	}
	if service != "" {
		code := domain.ServiceCode(NormalizeService(service))
		filtered := results[:0]
		for _, d := range results {
			if d.Offers(code) {
				filtered = append(filtered, d)
			}
		}
		results = filtered
	}
	return results
}

// Availability returns the currently-available slots for a dealership,
// optionally narrowed to one date. An unknown dealership is reported as
// ErrNotFound, distinct from a dealership with nothing free. Results are
// unordered; callers needing determinism sort with SortSlots.
func (s *Store) Availability(dealershipID, date string) ([]domain.TimeSlot, error) {
	if _, ok := s.byID[dealershipID]; !ok {
		return nil, domain.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TimeSlot
	for _, slot := range s.slots {
		if slot.DealershipID != dealershipID || !slot.Available {
			continue
		}
		if date != "" && slot.Date != date {
			continue
		}
		out = append(out, *slot)
	}
	return out, nil
}

// Reserve atomically checks and flips a slot to unavailable. It fails
// with ErrSlotUnavailable when the triple is outside the generated window
// or already taken. Every booking and modify path goes through here.
func (s *Store) Reserve(dealershipID, date, t string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[slotKey{dealershipID, date, t}]
	if !ok || !slot.Available {
		return domain.ErrSlotUnavailable
	}
	slot.Available = false
	return nil
}

// Release marks a slot available again. Idempotent; releasing a triple
// outside the window is a no-op.
func (s *Store) Release(dealershipID, date, t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot, ok := s.slots[slotKey{dealershipID, date, t}]; ok {
		slot.Available = true
	}
}

// SortSlots orders slots ascending by (date, time) in place.
func SortSlots(slots []domain.TimeSlot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].Time < slots[j].Time
	})
}
