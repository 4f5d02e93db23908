package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	require.Equal(t, NewDate(2024, time.March, 1), d)
	require.Equal(t, "2024-03-01", d.String())

	for _, s := range []string{"", "current", " CURRENT "} {
		d, err = ParseDate(s)
		require.NoError(t, err)
		require.True(t, d.IsCurrent())
	}

	_, err = ParseDate("01/03/2024")
	require.Error(t, err)
}

func TestDate_Ordering(t *testing.T) {
	d1 := NewDate(2024, time.February, 28)
	d2 := d1.AddDays(2)

	require.Equal(t, NewDate(2024, time.March, 1), d2)
	require.True(t, d1.Before(d2))
	require.True(t, d2.After(d1))
	require.False(t, d1.Before(d1))
	require.False(t, Current.Before(d1))
	require.False(t, d1.After(Current))
	require.Equal(t, -1, d1.Compare(d2))
	require.Equal(t, 0, d2.Compare(NewDate(2024, time.March, 1)))
	require.Equal(t, 1, Current.Compare(d2))
	require.Equal(t, 0, Current.Compare(Current))
}

func TestDateOf_KeepsCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	d := DateOf(time.Date(2024, time.May, 10, 23, 30, 0, 0, loc))
	require.Equal(t, NewDate(2024, time.May, 10), d)
	require.Equal(t, "current", Current.String())
	require.True(t, Current.Time().IsZero())
}
