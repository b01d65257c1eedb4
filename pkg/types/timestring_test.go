package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, s := range []string{"00:00", "09:30", "14:00", "23:59"} {
			ts, err := NewTimeStringFromString(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, ts.String())
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, s := range []string{"", "9:30", "24:00", "14:60", "14-00", "14:00:00", "abcde"} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, s)
		}
	})
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("garbage").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		ts, err := TimeString("10:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, "11:30", ts.String())
	})

	t.Run("end of day boundary is allowed", func(t *testing.T) {
		ts, err := TimeString("23:00").AddMinutes(60)
		require.NoError(t, err)
		assert.Equal(t, "24:00", ts.String())
	})

	t.Run("past midnight is rejected", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:30"))
	assert.False(t, TimeString("17:30").IsAfter("18:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan([]byte("15:30")))
	assert.Equal(t, "15:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 5, 14, 16, 45, 12, 0, time.UTC)))
	assert.Equal(t, "16:45", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
