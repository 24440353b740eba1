package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskfx/internal/currency"
)

var (
	curA = currency.Currency{Code: "USD", DisplayName: "Dollar", FullName: "US Dollar"}
	curB = currency.Currency{Code: "EUR", DisplayName: "Euro", FullName: "Euro Zone"}
	curC = currency.Currency{Code: "GBP", DisplayName: "Pound", FullName: "British Pound"}
)

func TestSelectFillsFromThenTo(t *testing.T) {
	s := NewSelection()
	t.Cleanup(s.Close)

	require.False(t, s.ClearEnabled().Get())
	require.False(t, s.ConvertEnabled().Get())

	res := s.Select(curA)
	require.Equal(t, Assigned, res)
	require.True(t, res.Progressed())
	require.Equal(t, "Dollar", s.FromText().Get())
	require.Equal(t, "", s.ToText().Get())
	require.True(t, s.ClearEnabled().Get())
	require.False(t, s.ConvertEnabled().Get())

	res = s.Select(curB)
	require.Equal(t, Assigned, res)
	require.True(t, res.Progressed())
	require.Equal(t, "Euro", s.ToText().Get())
	require.True(t, s.ClearEnabled().Get())
	require.True(t, s.ConvertEnabled().Get())
}

func TestSelectThirdIsNoop(t *testing.T) {
	s := NewSelection()
	t.Cleanup(s.Close)
	s.Select(curA)
	s.Select(curB)

	changes := 0
	s.From().Subscribe(func(Slot) { changes++ })
	s.To().Subscribe(func(Slot) { changes++ })
	changes = 0

	res := s.Select(curC)
	require.Equal(t, BothOccupied, res)
	require.False(t, res.Progressed())
	require.Zero(t, changes)

	from, _ := s.From().Get().Currency()
	to, _ := s.To().Get().Currency()
	require.Equal(t, "USD", from.Code)
	require.Equal(t, "EUR", to.Code)
	require.True(t, s.ConvertEnabled().Get())
}

func TestClearResetsEverything(t *testing.T) {
	s := NewSelection()
	t.Cleanup(s.Close)
	s.Select(curA)
	s.Select(curB)

	s.Clear()
	require.False(t, s.From().Get().Occupied())
	require.False(t, s.To().Get().Occupied())
	require.Equal(t, "", s.FromText().Get())
	require.Equal(t, "", s.ToText().Get())
	require.False(t, s.ConvertEnabled().Get())
	require.False(t, s.ClearEnabled().Get())

	_, _, ok := s.Pair()
	require.False(t, ok)

	require.Equal(t, Assigned, s.Select(curC))
	require.Equal(t, "Pound", s.FromText().Get())
}

func TestIsSameAsFrom(t *testing.T) {
	s := NewSelection()
	t.Cleanup(s.Close)

	require.False(t, s.IsSameAsFrom(curA))

	s.Select(curA)
	require.True(t, s.IsSameAsFrom(curA))
	require.True(t, s.IsSameAsFrom(currency.Currency{Code: "AUD", DisplayName: "Dollar"}))
	require.False(t, s.IsSameAsFrom(curB))
}

func TestEmptyDisplayNameStillOccupies(t *testing.T) {
	s := NewSelection()
	t.Cleanup(s.Close)
	nameless := currency.Currency{Code: "XXX"}

	require.Equal(t, Assigned, s.Select(nameless))
	require.True(t, s.ClearEnabled().Get())
	require.Equal(t, Assigned, s.Select(curA))
	require.Equal(t, "Dollar", s.ToText().Get())
}

func TestSelectResultString(t *testing.T) {
	require.Equal(t, "assigned", Assigned.String())
	require.Equal(t, "both-occupied", BothOccupied.String())
}
