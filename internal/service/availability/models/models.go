package models

// TakenSlot is one occupied half-day for calendar display.
type TakenSlot struct {
	Date      string `json:"date"`
	Timeframe string `json:"timeframe"`
}

// TakenSlotsResponse is the combined occupied-slot list.
type TakenSlotsResponse struct {
	Bookings []TakenSlot `json:"bookings"`
}
