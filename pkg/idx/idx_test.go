package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidSortedIDs(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	require.False(t, a.IsZero())
	require.False(t, b.IsZero())

	_, err := Parse(a.String())
	require.NoError(t, err)

	// Monotonic entropy: ids generated in sequence sort in order.
	require.Less(t, a.String(), b.String())
}

func TestParseRejectsJunk(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "   ", "not-a-ulid", "0123"} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrInvalid)
	}
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(ts)

	require.Equal(t, ts.Truncate(time.Millisecond), id.Time())
}

func TestNewAtOrdersByTime(t *testing.T) {
	t.Parallel()

	older := NewAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := NewAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Less(t, older.String(), newer.String())
}
