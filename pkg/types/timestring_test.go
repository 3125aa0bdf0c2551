package types

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", input: "09:30", want: "09:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "seconds truncated", input: "14:15:59", want: "14:15"},
		{name: "missing leading zero", input: "9:05", want: "09:05"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "no colon", input: "0930", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeClockInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical passthrough", input: "10:30", want: "10:30"},
		{name: "with seconds", input: "10:30:00", want: "10:30"},
		{name: "bare hour lower bound", input: "6", want: "06:00"},
		{name: "bare hour upper bound", input: "23", want: "23:00"},
		{name: "bare hour middle", input: "14", want: "14:00"},
		{name: "bare hour with spaces", input: " 14 ", want: "14:00"},
		{name: "bare hour below range", input: "5", wantErr: true},
		{name: "bare hour above range", input: "24", wantErr: true},
		{name: "bare zero", input: "0", wantErr: true},
		{name: "not a number", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeClockInput(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	// Каждая минута суток должна пережить конвертацию в обе стороны
	for m := 0; m < 24*60; m++ {
		ts := FromMinutes(m)
		require.NoError(t, ts.Validate(), "FromMinutes(%d) produced invalid value %q", m, ts)
		require.Equal(t, m, ts.Minutes(), "round trip broken for %d minutes", m)
	}
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("17:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	got, err = ts.AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), got)

	_, err = ts.AddMinutes(-600)
	require.Error(t, err)
}

func TestTimeStringScan(t *testing.T) {
	t.Run("string from postgres", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("14:30:00"))
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:15:00")))
		assert.Equal(t, TimeString("08:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 3, 15, 11, 45, 30, 0, time.UTC)))
		assert.Equal(t, TimeString("11:45"), ts)
	})

	t.Run("nil", func(t *testing.T) {
		ts := TimeString("09:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		require.Error(t, ts.Scan(42))
	})
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func ExampleFromMinutes() {
	fmt.Println(FromMinutes(570))
	// Output: 09:30
}
