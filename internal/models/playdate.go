package models

// PlayDate is a scheduled game night.
type PlayDate struct {
	ID       string
	GameName string
	Venue    string

	// StartsAt is the Unix timestamp of the event start.
	StartsAt int64
}
