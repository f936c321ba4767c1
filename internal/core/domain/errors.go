package domain

import "errors"

var (
	ErrTrainNotFound    = errors.New("train not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNoSeatsAvailable = errors.New("no seats available on this train")
	ErrAlreadyCancelled = errors.New("ticket is already cancelled")
)

// ValidationError reports bad or missing user input. Any two
// ValidationErrors match under errors.Is so callers can branch on the
// category without knowing the message.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

func (e ValidationError) Is(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}
