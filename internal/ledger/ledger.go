// Package ledger holds the collection of confirmed appointments.
package ledger

import (
	"fmt"
	"sync"

	"github.com/pitstopd/pitstop/internal/catalog"
	"github.com/pitstopd/pitstop/internal/domain"
)

// Ledger owns booking state on top of the availability store. Every
// existing appointment corresponds to a slot currently held unavailable;
// create, cancel and modify keep that pairing in one critical section.
type Ledger struct {
	mu           sync.Mutex
	store        *catalog.Store
	appointments []*domain.Appointment
	nextID       int
}

// New creates an empty ledger backed by the given store.
func New(store *catalog.Store) *Ledger {
	return &Ledger{store: store, nextID: 1}
}

// Create reserves the slot and, on success, records a new appointment
// with the next sequential id. ErrSlotUnavailable leaves no record.
func (l *Ledger) Create(dealershipID, service, date, t, customerName string) (*domain.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.Reserve(dealershipID, date, t); err != nil {
		return nil, err
	}
	appt := &domain.Appointment{
		ID:           fmt.Sprintf("apt_%04d", l.nextID),
		DealershipID: dealershipID,
		Service:      service,
		Date:         date,
		Time:         t,
		CustomerName: customerName,
	}
	l.nextID++
	l.appointments = append(l.appointments, appt)
	out := *appt
	return &out, nil
}

// Get looks up an appointment by id.
func (l *Ledger) Get(id string) (*domain.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	appt, _, err := l.find(id)
	if err != nil {
		return nil, err
	}
	out := *appt
	return &out, nil
}

// List returns all appointments in insertion order.
func (l *Ledger) List() []domain.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Appointment, 0, len(l.appointments))
	for _, appt := range l.appointments {
		out = append(out, *appt)
	}
	return out
}

// Cancel releases the appointment's slot and removes the record as one
// unit. The cancelled appointment is returned for confirmation messages.
func (l *Ledger) Cancel(id string) (*domain.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	appt, i, err := l.find(id)
	if err != nil {
		return nil, err
	}
	l.store.Release(appt.DealershipID, appt.Date, appt.Time)
	l.appointments = append(l.appointments[:i], l.appointments[i+1:]...)
	out := *appt
	return &out, nil
}

// Modify moves an appointment to a new date and/or time. Unspecified
// fields keep their current values; a target equal to the current triple
// succeeds as a no-op. The new slot is reserved before the old one is
// released, so a failed modify leaves the original booking and its slot
// untouched.
func (l *Ledger) Modify(id, newDate, newTime string) (*domain.Appointment, error) {
	if newDate == "" && newTime == "" {
		return nil, domain.ErrInvalidArgument
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	appt, _, err := l.find(id)
	if err != nil {
		return nil, err
	}
	targetDate, targetTime := appt.Date, appt.Time
	if newDate != "" {
		targetDate = newDate
	}
	if newTime != "" {
		targetTime = newTime
	}
	if targetDate == appt.Date && targetTime == appt.Time {
		out := *appt
		return &out, nil
	}
	if err := l.store.Reserve(appt.DealershipID, targetDate, targetTime); err != nil {
		return nil, err
	}
	l.store.Release(appt.DealershipID, appt.Date, appt.Time)
	appt.Date = targetDate
	appt.Time = targetTime
	out := *appt
	return &out, nil
}

// find returns the live record and its index. Caller holds l.mu.
func (l *Ledger) find(id string) (*domain.Appointment, int, error) {
	for i, appt := range l.appointments {
		if appt.ID == id {
			return appt, i, nil
		}
	}
	return nil, 0, domain.ErrNotFound
}
