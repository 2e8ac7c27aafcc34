package booking_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := booking.NewStayRange(date(2026, 1, 1), date(2026, 1, 5))
		require.NoError(t, err)
		assert.Equal(t, date(2026, 1, 1), stay.CheckIn())
		assert.Equal(t, date(2026, 1, 5), stay.CheckOut())
		assert.Equal(t, 4, stay.Nights())
	})

	t.Run("check-out equal to check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2026, 1, 1), date(2026, 1, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2026, 1, 5), date(2026, 1, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("wall-clock components are dropped", func(t *testing.T) {
		stay, err := booking.NewStayRange(
			time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 1, 2, 0, 1, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 1, 1), stay.CheckIn())
		assert.Equal(t, date(2026, 1, 2), stay.CheckOut())
		assert.Equal(t, 1, stay.Nights())
	})
}

func TestStayRangeOverlaps(t *testing.T) {
	base := func(t *testing.T) booking.StayRange {
		return mustStay(t, date(2024, 1, 1), date(2024, 1, 5))
	}

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical range", date(2024, 1, 1), date(2024, 1, 5), true},
		{"contained range", date(2024, 1, 2), date(2024, 1, 4), true},
		{"overlapping tail", date(2024, 1, 4), date(2024, 1, 8), true},
		{"overlapping head", date(2023, 12, 30), date(2024, 1, 2), true},
		{"starts on check-out day", date(2024, 1, 5), date(2024, 1, 8), false},
		{"ends on check-in day", date(2023, 12, 28), date(2024, 1, 1), false},
		{"disjoint after", date(2024, 2, 1), date(2024, 2, 5), false},
		{"disjoint before", date(2023, 11, 1), date(2023, 11, 5), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustStay(t, tc.checkIn, tc.checkOut)
			assert.Equal(t, tc.want, base(t).Overlaps(other))
			assert.Equal(t, tc.want, other.Overlaps(base(t)), "overlap must be symmetric")
		})
	}
}

func TestStayRangeContains(t *testing.T) {
	stay := mustStay(t, date(2026, 3, 10), date(2026, 3, 13))

	assert.True(t, stay.Contains(date(2026, 3, 10)), "check-in day is included")
	assert.True(t, stay.Contains(date(2026, 3, 12)))
	assert.True(t, stay.Contains(time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC)))
	assert.False(t, stay.Contains(date(2026, 3, 13)), "check-out day is excluded")
	assert.False(t, stay.Contains(date(2026, 3, 9)))
}

func TestStayRangeOverlapsProperties(t *testing.T) {
	genDay := rapid.Custom(func(t *rapid.T) time.Time {
		offset := rapid.IntRange(0, 3650).Draw(t, "offset")
		return date(2024, 1, 1).AddDate(0, 0, offset)
	})

	genStay := rapid.Custom(func(t *rapid.T) booking.StayRange {
		start := genDay.Draw(t, "start")
		nights := rapid.IntRange(1, 60).Draw(t, "nights")
		stay, err := booking.NewStayRange(start, start.AddDate(0, 0, nights))
		if err != nil {
			t.Fatalf("stay generation: %v", err)
		}
		return stay
	})

	t.Run("overlap is symmetric", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := genStay.Draw(t, "a")
			b := genStay.Draw(t, "b")
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Fatalf("asymmetric overlap for %s and %s", a, b)
			}
		})
	})

	t.Run("a stay always overlaps itself", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := genStay.Draw(t, "a")
			if !a.Overlaps(a) {
				t.Fatalf("stay %s does not overlap itself", a)
			}
		})
	})

	t.Run("back-to-back stays never overlap", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := genStay.Draw(t, "a")
			nights := rapid.IntRange(1, 30).Draw(t, "nights")
			next, err := booking.NewStayRange(a.CheckOut(), a.CheckOut().AddDate(0, 0, nights))
			if err != nil {
				t.Fatalf("stay generation: %v", err)
			}
			if a.Overlaps(next) {
				t.Fatalf("touching stays %s and %s reported as overlapping", a, next)
			}
		})
	})
}

func TestMoney(t *testing.T) {
	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("add", func(t *testing.T) {
		a, err := booking.NewMoney(1500)
		require.NoError(t, err)
		b, err := booking.NewMoney(2500)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), a.Add(b).Cents())
	})
}

func TestNightlyRateCalculator(t *testing.T) {
	calc := booking.NewNightlyRateCalculator()

	t.Run("total is rate times nights", func(t *testing.T) {
		stay := mustStay(t, date(2026, 1, 1), date(2026, 1, 5))
		assert.Equal(t, int64(48_000), calc.TotalCents(12_000, stay))
	})

	t.Run("integer arithmetic is exact for any rate and duration", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			rate := rapid.Int64Range(1, 10_000_000).Draw(t, "rate")
			nights := rapid.IntRange(1, 365).Draw(t, "nights")
			start := date(2025, 6, 1)
			stay, err := booking.NewStayRange(start, start.AddDate(0, 0, nights))
			if err != nil {
				t.Fatalf("stay generation: %v", err)
			}
			if got := calc.TotalCents(rate, stay); got != rate*int64(nights) {
				t.Fatalf("got %d, want %d", got, rate*int64(nights))
			}
		})
	})
}

func TestGuestContact(t *testing.T) {
	t.Run("valid contact", func(t *testing.T) {
		contact, err := booking.NewGuestContact("  Ada Lovelace ", "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", contact.Name())
		assert.Equal(t, "ada@example.com", contact.Email())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := booking.NewGuestContact("   ", "ada@example.com")
		assert.ErrorIs(t, err, booking.ErrInvalidGuestName)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := booking.NewGuestContact("Ada", "not-an-email")
		assert.ErrorIs(t, err, booking.ErrInvalidEmail)
	})
}
