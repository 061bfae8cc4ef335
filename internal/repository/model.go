package repository

import "time"

// DispatchRecord is one finished countdown as kept in history.
type DispatchRecord struct {
	ID           string
	ChannelID    string
	Originator   string
	Participants []string
	Roster       []string
	Reason       string
	CallToAction string
	Completed    bool
	OpenedAt     time.Time
	DispatchedAt time.Time
	CreatedAt    time.Time
}
