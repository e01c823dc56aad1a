package booking

import (
	"errors"
	"fmt"

	"pilgrimpath/store"
	"pilgrimpath/types"
)

// ErrUnknownOption is returned when a booking names an option id that is
// not in the catalog.
var ErrUnknownOption = errors.New("unknown booking option")

// TransportOption is one bookable route in the mock catalog.
type TransportOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Price     int    `json:"price"`
	AC        bool   `json:"ac"`
	Sleeper   bool   `json:"sleeper"`
}

// StayOption is one bookable accommodation in the mock catalog.
type StayOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight int     `json:"pricePerNight"`
	Rating        float64 `json:"rating"`
	Kind          string  `json:"kind"` // hotel or dormitory
}

var transportOptions = []TransportOption{
	{ID: "bus-indore-0600", Name: "Indore Express AC", From: "Indore", To: "Ujjain", Departure: "06:00", Price: 150, AC: true},
	{ID: "bus-indore-0630", Name: "Indore Express", From: "Indore", To: "Ujjain", Departure: "06:30", Price: 90},
	{ID: "bus-bhopal-0700", Name: "Bhopal Sleeper", From: "Bhopal", To: "Ujjain", Departure: "07:00", Price: 280, AC: true, Sleeper: true},
	{ID: "bus-dewas-0800", Name: "Dewas Shuttle", From: "Dewas", To: "Ujjain", Departure: "08:00", Price: 60},
}

var stayOptions = []StayOption{
	{ID: "stay-dorm-ramghat", Name: "Ram Ghat Dormitory", Location: "Ram Ghat", PricePerNight: 250, Rating: 3.8, Kind: "dormitory"},
	{ID: "stay-hotel-mahakal", Name: "Mahakal View Hotel", Location: "Temple Road", PricePerNight: 1500, Rating: 4.5, Kind: "hotel"},
	{ID: "stay-hotel-shipra", Name: "Shipra Residency", Location: "Station Road", PricePerNight: 900, Rating: 4.1, Kind: "hotel"},
	{ID: "stay-dorm-mela", Name: "Mela Ground Dormitory", Location: "Mela Grounds", PricePerNight: 200, Rating: 3.5, Kind: "dormitory"},
}

// TransportOptions returns the transport catalog.
func TransportOptions() []TransportOption {
	return append([]TransportOption(nil), transportOptions...)
}

// StayOptions returns the accommodation catalog.
func StayOptions() []StayOption {
	return append([]StayOption(nil), stayOptions...)
}

// Request is a booking confirmation from the user side.
type Request struct {
	OptionID  string `json:"optionId"`
	Date      string `json:"date"`
	GuestName string `json:"guestName"`
	GuestID   string `json:"guestId"`
	Guests    int    `json:"guests"`
}

// Confirmation is returned to the client; ReportID ties the booking to the
// admin dashboard entry it created.
type Confirmation struct {
	ReportID string `json:"reportId"`
	Option   string `json:"option"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// Confirm books a catalog option and files it as a booking report so it
// shows up on the admin dashboard.
func Confirm(s *store.Store, req Request) (Confirmation, error) {
	name, location, ok := lookupOption(req.OptionID)
	if !ok {
		return Confirmation{}, fmt.Errorf("%w: %s", ErrUnknownOption, req.OptionID)
	}

	guests := req.Guests
	if guests <= 0 {
		guests = 1
	}

	report, err := s.SubmitReport(store.SubmitInput{
		Type:        types.ReportBooking,
		Title:       "Booking: " + name,
		Description: fmt.Sprintf("%s booked %s for %d guest(s) on %s", req.GuestName, name, guests, req.Date),
		Location:    location,
		Priority:    types.PriorityLow,
		Reporter:    types.Reporter{ID: req.GuestID, Role: types.RoleVisitor},
	})
	if err != nil {
		return Confirmation{}, err
	}

	return Confirmation{
		ReportID: report.ID,
		Option:   name,
		Date:     req.Date,
		Status:   "confirmed",
	}, nil
}

func lookupOption(id string) (name, location string, ok bool) {
	for _, t := range transportOptions {
		if t.ID == id {
			return t.Name, t.From + " - " + t.To, true
		}
	}
	for _, s := range stayOptions {
		if s.ID == id {
			return s.Name, s.Location, true
		}
	}
	return "", "", false
}
