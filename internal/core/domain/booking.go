package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender maps user input onto the fixed gender set.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), true
	}
	return "", false
}

type BerthPreference string

const (
	BerthNoPreference BerthPreference = "No Preference"
	BerthLower        BerthPreference = "Lower"
	BerthMiddle       BerthPreference = "Middle"
	BerthUpper        BerthPreference = "Upper"
	BerthSideLower    BerthPreference = "Side Lower"
	BerthSideUpper    BerthPreference = "Side Upper"
)

func ParseBerthPreference(s string) (BerthPreference, bool) {
	switch BerthPreference(s) {
	case BerthNoPreference, BerthLower, BerthMiddle, BerthUpper, BerthSideLower, BerthSideUpper:
		return BerthPreference(s), true
	}
	return "", false
}

// Booking is a ticket for one passenger on one train. The PNR is assigned
// once at creation and never reused; cancellation flips the status and is
// terminal.
type Booking struct {
	PNR           int
	TrainNumber   int
	TrainName     string
	PassengerName string
	Age           int
	Gender        Gender
	Berth         BerthPreference
	Email         string
	Phone         string
	JourneyDate   time.Time
	BookingDate   time.Time
	Status        BookingStatus
	Cancelled     bool
}

func (b *Booking) IsCancelled() bool {
	return b.Cancelled
}
