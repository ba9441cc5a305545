package models

import (
	"errors"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
)

// BookingState defines the transitions available from a booking status
type BookingState interface {
	Confirm(b *Booking) error
	Reject(b *Booking) error
	Cancel(b *Booking) error
	Complete(b *Booking) error
}

// PendingState: awaiting the owner's decision
type PendingState struct{}

func (s *PendingState) Confirm(b *Booking) error {
	b.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Reject(b *Booking) error {
	b.Status = constants.BookingStatusRejected
	return nil
}

func (s *PendingState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(b *Booking) error {
	return errors.New("cannot complete pending booking")
}

// ConfirmedState: accepted by the owner
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(b *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) Reject(b *Booking) error {
	return errors.New("cannot reject confirmed booking")
}

func (s *ConfirmedState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(b *Booking) error {
	b.Status = constants.BookingStatusCompleted
	return nil
}

// terminalState covers rejected, cancelled and completed: no transition
// leaves a terminal status.
type terminalState struct {
	name string
}

func (s *terminalState) Confirm(b *Booking) error {
	return errors.New("cannot confirm " + s.name + " booking")
}

func (s *terminalState) Reject(b *Booking) error {
	return errors.New("cannot reject " + s.name + " booking")
}

func (s *terminalState) Cancel(b *Booking) error {
	return errors.New("cannot cancel " + s.name + " booking")
}

func (s *terminalState) Complete(b *Booking) error {
	return errors.New("cannot complete " + s.name + " booking")
}

// GetBookingState returns the state for a booking status
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusRejected, constants.BookingStatusCancelled, constants.BookingStatusCompleted:
		return &terminalState{name: status}
	default:
		return &PendingState{}
	}
}
