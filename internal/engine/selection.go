package engine

import (
	"github.com/jask/jaskfx/internal/currency"
	"github.com/jask/jaskfx/internal/reactive"
)

// Slot is one side of a currency pair.
type Slot struct {
	currency currency.Currency
	occupied bool
}

// Occupy returns a slot holding c.
func Occupy(c currency.Currency) Slot {
	return Slot{currency: c, occupied: true}
}

func (s Slot) Occupied() bool { return s.occupied }

// Currency returns the held currency and whether there is one.
func (s Slot) Currency() (currency.Currency, bool) {
	return s.currency, s.occupied
}

// Text is the display name, or "" when empty.
func (s Slot) Text() string {
	if !s.occupied {
		return ""
	}
	return s.currency.DisplayName
}

// SelectResult reports whether Select could make progress.
type SelectResult int

const (
	// Assigned means a slot was free and took the currency.
	Assigned SelectResult = iota
	// BothOccupied means nothing changed; the user has to clear first.
	BothOccupied
)

// Progressed is true for Assigned.
func (r SelectResult) Progressed() bool { return r == Assigned }

func (r SelectResult) String() string {
	if r == BothOccupied {
		return "both-occupied"
	}
	return "assigned"
}

// Selection is the from/to pairing workflow. Enablement flags are derived
// from the slots and only change when a slot does.
type Selection struct {
	from *reactive.Cell[Slot]
	to   *reactive.Cell[Slot]

	fromText       *reactive.Cell[string]
	toText         *reactive.Cell[string]
	convertEnabled *reactive.Cell[bool]
	clearEnabled   *reactive.Cell[bool]

	bag reactive.Bag
}

// NewSelection starts with both slots empty.
func NewSelection() *Selection {
	s := &Selection{
		from:           reactive.NewCell(Slot{}),
		to:             reactive.NewCell(Slot{}),
		fromText:       reactive.NewCell(""),
		toText:         reactive.NewCell(""),
		convertEnabled: reactive.NewCell(false),
		clearEnabled:   reactive.NewCell(false),
	}
	s.bag.Add(reactive.Derive(s.fromText, func() string { return s.from.Get().Text() }, s.from)...)
	s.bag.Add(reactive.Derive(s.toText, func() string { return s.to.Get().Text() }, s.to)...)
	s.bag.Add(reactive.Derive(s.clearEnabled, func() bool {
		return s.from.Get().Occupied()
	}, s.from)...)
	s.bag.Add(reactive.Derive(s.convertEnabled, func() bool {
		return s.from.Get().Occupied() && s.to.Get().Occupied()
	}, s.from, s.to)...)
	return s
}

func (s *Selection) From() reactive.Value[Slot]           { return s.from }
func (s *Selection) To() reactive.Value[Slot]             { return s.to }
func (s *Selection) FromText() reactive.Value[string]     { return s.fromText }
func (s *Selection) ToText() reactive.Value[string]       { return s.toText }
func (s *Selection) ConvertEnabled() reactive.Value[bool] { return s.convertEnabled }
func (s *Selection) ClearEnabled() reactive.Value[bool]   { return s.clearEnabled }

// Select puts c in the first free slot, from before to.
func (s *Selection) Select(c currency.Currency) SelectResult {
	switch {
	case !s.from.Get().Occupied():
		s.from.Set(Occupy(c))
	case !s.to.Get().Occupied():
		s.to.Set(Occupy(c))
	default:
		return BothOccupied
	}
	return Assigned
}

// Clear empties both slots.
func (s *Selection) Clear() {
	s.to.Set(Slot{})
	s.from.Set(Slot{})
}

// IsSameAsFrom reports whether c has the from slot's display name.
func (s *Selection) IsSameAsFrom(c currency.Currency) bool {
	from := s.from.Get()
	return from.Occupied() && from.Text() == c.DisplayName
}

// Pair returns both currencies once the pair is complete.
func (s *Selection) Pair() (from, to currency.Currency, ok bool) {
	from, fok := s.from.Get().Currency()
	to, tok := s.to.Get().Currency()
	return from, to, fok && tok
}

// Close stops the derived outputs.
func (s *Selection) Close() {
	s.bag.Dispose()
}
