package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// BlocksAvailability reports whether a booking in this status occupies its
// room for the duration of its stay. Pending bookings do not hold inventory;
// this system books directly into confirmed.
func (s Status) BlocksAvailability() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// BlockingStatuses is the status set used by overlap queries.
var BlockingStatuses = []Status{StatusConfirmed, StatusCheckedIn}

func (s Status) canTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}
