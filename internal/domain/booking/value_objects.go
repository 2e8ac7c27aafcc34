package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"staybook/internal/pkg/clock"
)

var (
	ErrInvalidStayRange = errors.New("check-out date must be after check-in date")
	ErrInvalidGuestName = errors.New("guest name cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
)

// StayRange is a half-open calendar interval [checkIn, checkOut) at day
// granularity. The check-out day itself is excluded, so a stay ending on a
// given day and another starting on the same day do not overlap.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange normalizes both dates to UTC midnight before comparing them.
// Wall-clock components would otherwise produce off-by-one overlap results
// for inputs parsed in different timezones.
func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := clock.Midnight(checkIn)
	out := clock.Midnight(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

// Overlaps reports whether two half-open ranges share at least one night:
// aStart < bEnd && bStart < aEnd. Touching boundaries do not overlap.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

// Contains reports whether the given instant falls within the stay,
// check-in inclusive, check-out exclusive.
func (r StayRange) Contains(at time.Time) bool {
	day := clock.Midnight(at)
	return !day.Before(r.checkIn) && day.Before(r.checkOut)
}

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn) / (24 * time.Hour))
}

func (r StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(time.DateOnly), r.checkOut.Format(time.DateOnly))
}

// Money is an amount of currency in integer cents. Totals are derived from
// nightly rates by integer multiplication only, never through floats.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// GuestContact identifies the person staying, which may differ from the
// account holder making the booking.
type GuestContact struct {
	name  string
	email string
}

func NewGuestContact(name, email string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GuestContact{}, ErrInvalidGuestName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return GuestContact{}, ErrInvalidEmail
	}
	return GuestContact{name: name, email: email}, nil
}

func (g GuestContact) Name() string {
	return g.name
}

func (g GuestContact) Email() string {
	return g.email
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
