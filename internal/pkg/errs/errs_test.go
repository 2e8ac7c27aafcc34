package errs_test

import (
	"testing"

	"staybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("room not found")
	other := errs.New("booking conflict")

	t.Run("sees marks", func(t *testing.T) {
		cause := errs.New("no rows in result set")
		err := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(err, sentinel))
		assert.False(t, errs.Is(err, other))
	})

	t.Run("sees marks through wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("boom"), sentinel), "finding room")

		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches the sentinel itself", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
	})

	t.Run("matches any of several targets", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), other)

		assert.True(t, errs.Is(err, sentinel, other))
		assert.False(t, errs.Is(err, sentinel))
	})

	t.Run("nil error matches nothing", func(t *testing.T) {
		assert.False(t, errs.Is(nil, sentinel))
	})
}

func TestMarkNil(t *testing.T) {
	sentinel := errs.New("room not found")
	require.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
