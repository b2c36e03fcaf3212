package tools

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitstopd/pitstop/internal/catalog"
	"github.com/pitstopd/pitstop/internal/domain"
	"github.com/pitstopd/pitstop/internal/ledger"
)

var testBase = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestRegistry(t *testing.T) (*Registry, *catalog.Store, *ledger.Ledger) {
	t.Helper()
	store := catalog.NewStore(testBase, 14)
	bookings := ledger.New(store)
	r := NewRegistry()
	Register(r, store, bookings)
	return r, store, bookings
}

func earliestOpen(t *testing.T, store *catalog.Store, dealershipID string) domain.TimeSlot {
	t.Helper()
	slots, err := store.Availability(dealershipID, "")
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	catalog.SortSlots(slots)
	return slots[0]
}

func TestBookingScenarioEndToEnd(t *testing.T) {
	r, store, _ := newTestRegistry(t)
	ctx := context.Background()

	// Search for oil change dealerships.
	out, err := r.Execute(ctx, "search_dealerships", Args{"service": "oil change"})
	require.NoError(t, err)
	assert.Contains(t, out, "Downtown Auto Service")

	// Check availability on a date with a known-open slot.
	slot := earliestOpen(t, store, "dealer_001")
	out, err = r.Execute(ctx, "check_availability", Args{
		"dealership_name": "Downtown Auto Service",
		"date":            slot.Date,
	})
	require.NoError(t, err)
	assert.Contains(t, out, slot.Time)

	// Book it.
	out, err = r.Execute(ctx, "book_appointment", Args{
		"dealership_name": "Downtown Auto Service",
		"service":         "oil_change",
		"date":            slot.Date,
		"time":            slot.Time,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Appointment confirmed")
	assert.Contains(t, out, "apt_0001")

	// The identical booking now fails in-band.
	out, err = r.Execute(ctx, "book_appointment", Args{
		"dealership_name": "Downtown Auto Service",
		"service":         "oil_change",
		"date":            slot.Date,
		"time":            slot.Time,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "not available")

	// Exactly one booking listed.
	out, err = r.Execute(ctx, "get_my_bookings", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "You have 1 booking(s)")
	assert.Contains(t, out, "apt_0001")

	// Cancel, then the list is empty.
	out, err = r.Execute(ctx, "cancel_my_booking", Args{"booking_id": "apt_0001"})
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled successfully")

	out, err = r.Execute(ctx, "get_my_bookings", nil)
	require.NoError(t, err)
	assert.Equal(t, "You have no bookings at this time.", out)
}

func TestGetDealershipInfo(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	out, err := r.Execute(context.Background(), "get_dealership_info", Args{"dealership_name": "brooklyn carcare"})
	require.NoError(t, err)
	assert.Contains(t, out, "Brooklyn CarCare")
	assert.Contains(t, out, "+1 718 555 0102")
	assert.Contains(t, out, "480 Atlantic Ave")

	out, err = r.Execute(context.Background(), "get_dealership_info", Args{"dealership_name": "Springfield Motors"})
	require.NoError(t, err)
	assert.Equal(t, "Dealership 'Springfield Motors' not found.", out)
}

func TestCompareAvailabilitySortedWithSoonestFlag(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	out, err := r.Execute(context.Background(), "compare_availability", Args{"location": "Manhattan"})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "SOONEST"))
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 2)
	assert.Contains(t, lines[2], "SOONEST")

	// Entries must be ascending by (date, time).
	re := regexp.MustCompile(`First available: (\d{4}-\d{2}-\d{2}) at (\d{2}:\d{2})`)
	matches := re.FindAllStringSubmatch(out, -1)
	require.Len(t, matches, 3)
	var keys []string
	for _, m := range matches {
		keys = append(keys, m[1]+" "+m[2])
	}
	assert.True(t, sort.StringsAreSorted(keys), "entries out of order: %v", keys)
}

func TestBookNextAvailableBooksEarliest(t *testing.T) {
	r, store, _ := newTestRegistry(t)
	slot := earliestOpen(t, store, "dealer_007")

	out, err := r.Execute(context.Background(), "book_next_available", Args{
		"dealership_name": "Astoria",
		"customer_name":   "Sam",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Appointment confirmed")
	assert.Contains(t, out, fmt.Sprintf("Date: %s", slot.Date))
	assert.Contains(t, out, fmt.Sprintf("Time: %s", slot.Time))
	assert.Contains(t, out, "Service: oil_change")
	assert.Contains(t, out, "Customer: Sam")
}

func TestModifyMyBooking(t *testing.T) {
	r, store, bookings := newTestRegistry(t)
	ctx := context.Background()

	slots, err := store.Availability("dealer_004", "")
	require.NoError(t, err)
	catalog.SortSlots(slots)
	require.GreaterOrEqual(t, len(slots), 2)

	appt, err := bookings.Create("dealer_004", "oil_change", slots[0].Date, slots[0].Time, "")
	require.NoError(t, err)

	// Neither field given.
	out, err := r.Execute(ctx, "modify_my_booking", Args{"booking_id": appt.ID})
	require.NoError(t, err)
	assert.Equal(t, "Please specify a new date and/or time for the booking.", out)

	// Move to the next open slot.
	out, err = r.Execute(ctx, "modify_my_booking", Args{
		"booking_id": appt.ID,
		"new_date":   slots[1].Date,
		"new_time":   slots[1].Time,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "modified successfully")
	assert.Contains(t, out, slots[1].Date)

	// Unknown booking.
	out, err = r.Execute(ctx, "modify_my_booking", Args{"booking_id": "apt_9999", "new_time": "10:00"})
	require.NoError(t, err)
	assert.Equal(t, "Booking 'apt_9999' not found.", out)
}

func TestCheckAvailabilityUnknownDealership(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	out, err := r.Execute(context.Background(), "check_availability", Args{"dealership_name": "Nowhere Auto"})
	require.NoError(t, err)
	assert.Equal(t, "Dealership 'Nowhere Auto' not found.", out)
}
