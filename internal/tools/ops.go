package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pitstopd/pitstop/internal/adapter/llm"
	"github.com/pitstopd/pitstop/internal/catalog"
	"github.com/pitstopd/pitstop/internal/domain"
	"github.com/pitstopd/pitstop/internal/ledger"
)

// ops implements the nine operations against the store and the ledger.
type ops struct {
	store    *catalog.Store
	bookings *ledger.Ledger
}

// Register wires the domain operations into the registry.
func Register(r *Registry, store *catalog.Store, bookings *ledger.Ledger) {
	o := &ops{store: store, bookings: bookings}

	r.MustRegister(llm.ToolSpec{
		Name:        "get_dealership_info",
		Description: "Get detailed contact information about a specific dealership: address, phone, and offered services.",
		Params: []llm.ToolParam{
			{Name: "dealership_name", Description: "The name of the dealership (e.g., \"Downtown Auto Service\")", Required: true},
		},
	}, o.getDealershipInfo)

	r.MustRegister(llm.ToolSpec{
		Name:        "search_dealerships",
		Description: "Search for car dealerships that offer a specific service, optionally filtered by location.",
		Params: []llm.ToolParam{
			{Name: "service", Description: "The service needed (e.g., \"oil change\", \"brake inspection\")"},
			{Name: "location", Description: "Optional location filter (e.g., \"Manhattan\", \"Brooklyn\")"},
		},
	}, o.searchDealerships)

	r.MustRegister(llm.ToolSpec{
		Name:        "check_availability",
		Description: "Check available appointment slots at a dealership, optionally on one date.",
		Params: []llm.ToolParam{
			{Name: "dealership_name", Description: "The name of the dealership", Required: true},
			{Name: "date", Description: "Optional specific date to check (format: YYYY-MM-DD)"},
		},
	}, o.checkAvailability)

	r.MustRegister(llm.ToolSpec{
		Name:        "compare_availability",
		Description: "Compare availability across dealerships to find the soonest appointment.",
		Params: []llm.ToolParam{
			{Name: "location", Description: "Optional location to filter dealerships"},
			{Name: "service", Description: "Optional service to filter dealerships"},
		},
	}, o.compareAvailability)

	r.MustRegister(llm.ToolSpec{
		Name:        "book_next_available",
		Description: "Book the next available appointment slot at a dealership. Use when the user wants the soonest, earliest, or next available appointment.",
		Params: []llm.ToolParam{
			{Name: "dealership_name", Description: "The name of the dealership", Required: true},
			{Name: "service", Description: "The service to book (default: \"oil_change\")"},
			{Name: "customer_name", Description: "Optional name of the customer"},
		},
	}, o.bookNextAvailable)

	r.MustRegister(llm.ToolSpec{
		Name:        "book_appointment",
		Description: "Book an appointment at a dealership for a specific date and time.",
		Params: []llm.ToolParam{
			{Name: "dealership_name", Description: "The name of the dealership", Required: true},
			{Name: "service", Description: "The service to book (e.g., \"oil_change\", \"brake_inspection\")", Required: true},
			{Name: "date", Description: "The date for the appointment (format: YYYY-MM-DD)", Required: true},
			{Name: "time", Description: "The time for the appointment (format: HH:MM)", Required: true},
			{Name: "customer_name", Description: "Optional name of the customer"},
		},
	}, o.bookAppointment)

	r.MustRegister(llm.ToolSpec{
		Name:        "get_my_bookings",
		Description: "Get all current bookings with their details.",
	}, o.getMyBookings)

	r.MustRegister(llm.ToolSpec{
		Name:        "cancel_my_booking",
		Description: "Cancel an existing booking.",
		Params: []llm.ToolParam{
			{Name: "booking_id", Description: "The booking ID to cancel (e.g., \"apt_0001\")", Required: true},
		},
	}, o.cancelMyBooking)

	r.MustRegister(llm.ToolSpec{
		Name:        "modify_my_booking",
		Description: "Modify an existing booking's date and/or time.",
		Params: []llm.ToolParam{
			{Name: "booking_id", Description: "The booking ID to modify (e.g., \"apt_0001\")", Required: true},
			{Name: "new_date", Description: "New date for the appointment (format: YYYY-MM-DD)"},
			{Name: "new_time", Description: "New time for the appointment (format: HH:MM)"},
		},
	}, o.modifyMyBooking)
}

func (o *ops) getDealershipInfo(ctx context.Context, args Args) (string, error) {
	name := args.String("dealership_name")
	dealer, err := o.store.ResolveDealership(name)
	if err != nil {
		return fmt.Sprintf("Dealership '%s' not found.", name), nil
	}
	return fmt.Sprintf("%s\n  Address: %s\n  Phone: %s\n  Services: %s\n",
		dealer.Name, dealer.Address, dealer.Phone, serviceList(dealer.Services)), nil
}

func (o *ops) searchDealerships(ctx context.Context, args Args) (string, error) {
	results := o.store.Search(args.String("location"), args.String("service"))
	if len(results) == 0 {
		return "No dealerships found matching your criteria.", nil
	}
	lines := []string{fmt.Sprintf("Found %d dealership(s):\n", len(results))}
	for _, dealer := range results {
		lines = append(lines,
			fmt.Sprintf("- %s (%s)", dealer.Name, dealer.Location),
			fmt.Sprintf("  Address: %s", dealer.Address),
			fmt.Sprintf("  Phone: %s", dealer.Phone),
			fmt.Sprintf("  Services: %s", serviceList(dealer.Services)),
			"",
		)
	}
	return strings.Join(lines, "\n"), nil
}

func (o *ops) checkAvailability(ctx context.Context, args Args) (string, error) {
	name := args.String("dealership_name")
	dealer, err := o.store.ResolveDealership(name)
	if err != nil {
		return fmt.Sprintf("Dealership '%s' not found.", name), nil
	}
	date := args.String("date")
	slots, err := o.store.Availability(dealer.ID, date)
	if err != nil || len(slots) == 0 {
		msg := fmt.Sprintf("No available slots at %s", dealer.Name)
		if date != "" {
			msg += fmt.Sprintf(" on %s", date)
		}
		return msg + ".", nil
	}

	byDate := make(map[string][]string)
	for _, slot := range slots {
		byDate[slot.Date] = append(byDate[slot.Date], slot.Time)
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	lines := []string{fmt.Sprintf("Available slots at %s:\n", dealer.Name)}
	for _, d := range dates {
		times := byDate[d]
		sort.Strings(times)
		lines = append(lines, fmt.Sprintf("  %s: %s", d, strings.Join(times, ", ")))
	}
	return strings.Join(lines, "\n"), nil
}

func (o *ops) compareAvailability(ctx context.Context, args Args) (string, error) {
	location := args.String("location")
	service := args.String("service")
	dealers := o.store.Search(location, service)
	if len(dealers) == 0 {
		var filters []string
		if location != "" {
			filters = append(filters, "in "+location)
		}
		if service != "" {
			filters = append(filters, "offering "+service)
		}
		if len(filters) > 0 {
			return fmt.Sprintf("No dealerships found %s.", strings.Join(filters, " ")), nil
		}
		return "No dealerships found.", nil
	}

	type earliest struct {
		dealer domain.Dealership
		slot   domain.TimeSlot
	}
	var results []earliest
	for _, dealer := range dealers {
		slots, err := o.store.Availability(dealer.ID, "")
		if err != nil || len(slots) == 0 {
			continue
		}
		catalog.SortSlots(slots)
		results = append(results, earliest{dealer: dealer, slot: slots[0]})
	}
	if len(results) == 0 {
		return "No availability found at any dealership.", nil
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].slot.Date != results[j].slot.Date {
			return results[i].slot.Date < results[j].slot.Date
		}
		return results[i].slot.Time < results[j].slot.Time
	})

	lines := []string{"Soonest availability by dealership:\n"}
	for i, r := range results {
		marker := ""
		if i == 0 {
			marker = " ✓ SOONEST"
		}
		lines = append(lines,
			fmt.Sprintf("- %s (%s)%s", r.dealer.Name, r.dealer.Location, marker),
			fmt.Sprintf("  First available: %s at %s", r.slot.Date, r.slot.Time),
			fmt.Sprintf("  Address: %s", r.dealer.Address),
			fmt.Sprintf("  Phone: %s", r.dealer.Phone),
			"",
		)
	}
	return strings.Join(lines, "\n"), nil
}

func (o *ops) bookNextAvailable(ctx context.Context, args Args) (string, error) {
	name := args.String("dealership_name")
	dealer, err := o.store.ResolveDealership(name)
	if err != nil {
		return fmt.Sprintf("Dealership '%s' not found.", name), nil
	}
	service := args.String("service")
	if service == "" {
		service = string(domain.ServiceOilChange)
	}
	slots, err := o.store.Availability(dealer.ID, "")
	if err != nil || len(slots) == 0 {
		return fmt.Sprintf("No available slots at %s.", dealer.Name), nil
	}
	catalog.SortSlots(slots)

	// A concurrent booking can take the earliest slot between listing and
	// reserving; fall through to the next candidate instead of failing.
	for _, slot := range slots {
		appt, err := o.bookings.Create(dealer.ID, catalog.NormalizeService(service), slot.Date, slot.Time, args.String("customer_name"))
		if errors.Is(err, domain.ErrSlotUnavailable) {
			continue
		}
		if err != nil {
			return "", err
		}
		return confirmation(appt, dealer), nil
	}
	return fmt.Sprintf("Sorry, could not book the appointment at %s.", dealer.Name), nil
}

func (o *ops) bookAppointment(ctx context.Context, args Args) (string, error) {
	name := args.String("dealership_name")
	dealer, err := o.store.ResolveDealership(name)
	if err != nil {
		return fmt.Sprintf("Dealership '%s' not found.", name), nil
	}
	date, t := args.String("date"), args.String("time")
	appt, err := o.bookings.Create(dealer.ID, catalog.NormalizeService(args.String("service")), date, t, args.String("customer_name"))
	if errors.Is(err, domain.ErrSlotUnavailable) {
		return fmt.Sprintf("Sorry, the slot at %s on %s is not available at %s.", t, date, dealer.Name), nil
	}
	if err != nil {
		return "", err
	}
	return confirmation(appt, dealer), nil
}

func (o *ops) getMyBookings(ctx context.Context, args Args) (string, error) {
	bookings := o.bookings.List()
	if len(bookings) == 0 {
		return "You have no bookings at this time.", nil
	}
	lines := []string{fmt.Sprintf("You have %d booking(s):\n", len(bookings))}
	for _, appt := range bookings {
		dealerName, dealerAddress := appt.DealershipID, "N/A"
		if dealer, err := o.store.GetDealership(appt.DealershipID); err == nil {
			dealerName, dealerAddress = dealer.Name, dealer.Address
		}
		lines = append(lines,
			fmt.Sprintf("- Booking %s", appt.ID),
			fmt.Sprintf("  Dealership: %s", dealerName),
			fmt.Sprintf("  Address: %s", dealerAddress),
			fmt.Sprintf("  Service: %s", appt.Service),
			fmt.Sprintf("  Date: %s", appt.Date),
			fmt.Sprintf("  Time: %s", appt.Time),
		)
		if appt.CustomerName != "" {
			lines = append(lines, fmt.Sprintf("  Customer: %s", appt.CustomerName))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), nil
}

func (o *ops) cancelMyBooking(ctx context.Context, args Args) (string, error) {
	id := args.String("booking_id")
	appt, err := o.bookings.Cancel(id)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Sprintf("Booking '%s' not found.", id), nil
	}
	if err != nil {
		return "", err
	}
	dealerName := appt.DealershipID
	if dealer, lookupErr := o.store.GetDealership(appt.DealershipID); lookupErr == nil {
		dealerName = dealer.Name
	}
	return fmt.Sprintf("Booking cancelled successfully!\n  Cancelled: %s\n  Dealership: %s\n  Date: %s\n  Time: %s\n",
		appt.ID, dealerName, appt.Date, appt.Time), nil
}

func (o *ops) modifyMyBooking(ctx context.Context, args Args) (string, error) {
	id := args.String("booking_id")
	current, err := o.bookings.Get(id)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Sprintf("Booking '%s' not found.", id), nil
	}
	if err != nil {
		return "", err
	}
	dealerName := current.DealershipID
	if dealer, lookupErr := o.store.GetDealership(current.DealershipID); lookupErr == nil {
		dealerName = dealer.Name
	}

	newDate, newTime := args.String("new_date"), args.String("new_time")
	appt, err := o.bookings.Modify(id, newDate, newTime)
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return "Please specify a new date and/or time for the booking.", nil
	case errors.Is(err, domain.ErrSlotUnavailable):
		targetDate, targetTime := current.Date, current.Time
		if newDate != "" {
			targetDate = newDate
		}
		if newTime != "" {
			targetTime = newTime
		}
		return fmt.Sprintf("Sorry, the slot at %s on %s is not available at %s.", targetTime, targetDate, dealerName), nil
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf("Booking '%s' not found.", id), nil
	case err != nil:
		return "", err
	}
	return fmt.Sprintf("Booking modified successfully!\n  Booking ID: %s\n  Dealership: %s\n  Service: %s\n  New Date: %s\n  New Time: %s\n",
		appt.ID, dealerName, appt.Service, appt.Date, appt.Time), nil
}

func confirmation(appt *domain.Appointment, dealer *domain.Dealership) string {
	msg := fmt.Sprintf("Appointment confirmed!\n  Confirmation ID: %s\n  Dealership: %s\n  Address: %s\n  Phone: %s\n  Service: %s\n  Date: %s\n  Time: %s\n",
		appt.ID, dealer.Name, dealer.Address, dealer.Phone, appt.Service, appt.Date, appt.Time)
	if appt.CustomerName != "" {
		msg += fmt.Sprintf("  Customer: %s\n", appt.CustomerName)
	}
	return msg
}

func serviceList(services []domain.ServiceCode) string {
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
