package domain

type Train struct {
	Number      int
	Name        string
	TotalSeats  int
	Source      string
	Destination string
	Departure   string
	Arrival     string
	Days        string
	Type        string
}
