// Package engine is the currency list state engine: catalog loading with a
// persisted fallback, the derived sorted/filtered view, and from/to pair
// selection.
//
// An Engine is not safe for concurrent use. All methods run on the owning
// goroutine; only the FetchFunc returned by Fetch/Retry may run elsewhere,
// and its result comes back through Complete.
package engine

import (
	"context"

	"github.com/jask/jaskfx/internal/currency"
	"github.com/jask/jaskfx/internal/logger"
	"github.com/jask/jaskfx/internal/reactive"
)

// Options configures New. A nil Store persists nothing, so a failed fetch
// always ends in Empty.
type Options struct {
	Source    Source
	Store     Store
	Logger    *logger.Logger
	Direction currency.Direction
}

// Engine wires the catalog, search text, sort direction and selection
// into the outputs a view observes.
type Engine struct {
	log       *logger.Logger
	catalog   *Catalog
	selection *Selection

	search    *reactive.Cell[string]
	direction *reactive.Cell[currency.Direction]
	displayed *reactive.Cell[[]currency.Currency]
	loading   *reactive.Cell[bool]

	bag reactive.Bag
}

// New builds an engine in the Idle state. Call Fetch to load the catalog.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	e := &Engine{
		log:       log.WithComponent("engine"),
		selection: NewSelection(),
		search:    reactive.NewCell(""),
		direction: reactive.NewCell(opts.Direction),
		displayed: reactive.NewCell[[]currency.Currency](nil),
		loading:   reactive.NewCell(false),
	}
	e.catalog = NewCatalog(opts.Source, opts.Store, e.direction, log)

	list := e.catalog.List()
	e.bag.Add(reactive.Derive(e.displayed, func() []currency.Currency {
		return currency.View(list.Get(), e.search.Get(), e.direction.Get())
	}, e.catalog.list, e.search)...)

	// the catalog stays sorted by the current direction; displayed follows it
	e.bag.Add(e.direction.Watch(func() {
		e.catalog.resort(e.direction.Get())
	}))

	e.bag.Add(reactive.Derive(e.loading, func() bool {
		return e.catalog.state.Get() == Loading
	}, e.catalog.state)...)

	return e
}

// Outputs.

func (e *Engine) Displayed() reactive.Value[[]currency.Currency] { return e.displayed }
func (e *Engine) Catalog() reactive.Value[[]currency.Currency]   { return e.catalog.List() }
func (e *Engine) State() reactive.Value[LoadingState]            { return e.catalog.State() }
func (e *Engine) Loading() reactive.Value[bool]                  { return e.loading }
func (e *Engine) TryAgainTextVisible() reactive.Value[bool]      { return e.catalog.TryAgainTextVisible() }
func (e *Engine) TryAgainButtonVisible() reactive.Value[bool]    { return e.catalog.TryAgainButtonVisible() }
func (e *Engine) Search() reactive.Value[string]                 { return e.search }
func (e *Engine) Direction() reactive.Value[currency.Direction]  { return e.direction }
func (e *Engine) FromText() reactive.Value[string]               { return e.selection.FromText() }
func (e *Engine) ToText() reactive.Value[string]                 { return e.selection.ToText() }
func (e *Engine) ConvertEnabled() reactive.Value[bool]           { return e.selection.ConvertEnabled() }
func (e *Engine) ClearEnabled() reactive.Value[bool]             { return e.selection.ClearEnabled() }

// Inputs.

// SetSearch replaces the filter text. Empty text shows the whole catalog.
func (e *Engine) SetSearch(text string) {
	if text == e.search.Get() {
		return
	}
	e.search.Set(text)
}

// ToggleSort flips the sort direction.
func (e *Engine) ToggleSort() {
	e.direction.Update(currency.Direction.Toggle)
}

// SetDirection sets the sort direction if it differs.
func (e *Engine) SetDirection(d currency.Direction) {
	if d == e.direction.Get() {
		return
	}
	e.direction.Set(d)
}

// Select assigns c to the first free slot.
func (e *Engine) Select(c currency.Currency) SelectResult {
	res := e.selection.Select(c)
	e.log.Debugw("select", "code", c.Code, "result", res)
	return res
}

// IsSameAsFrom guards against pairing a currency with itself.
func (e *Engine) IsSameAsFrom(c currency.Currency) bool {
	return e.selection.IsSameAsFrom(c)
}

// Clear empties both slots.
func (e *Engine) Clear() {
	e.selection.Clear()
}

// Pair returns the selected pair when both slots are occupied.
func (e *Engine) Pair() (from, to currency.Currency, ok bool) {
	return e.selection.Pair()
}

// Fetch starts loading the catalog. Run the returned func off the owning
// goroutine and hand its result to Complete.
func (e *Engine) Fetch(ctx context.Context) FetchFunc {
	return e.catalog.Fetch(ctx)
}

// Retry re-runs Fetch; it is what the try-again affordance calls.
func (e *Engine) Retry(ctx context.Context) FetchFunc {
	return e.catalog.Retry(ctx)
}

// Complete applies a fetch result.
func (e *Engine) Complete(ctx context.Context, res FetchResult) (Outcome, error) {
	return e.catalog.Complete(ctx, res)
}

// FetchNow fetches and completes on the calling goroutine.
func (e *Engine) FetchNow(ctx context.Context) (Outcome, error) {
	return e.catalog.FetchNow(ctx)
}

// Reset returns the session to a clean slate: no selection, no search.
func (e *Engine) Reset() {
	e.selection.Clear()
	e.SetSearch("")
}

// Flush waits for pending persistence writes.
func (e *Engine) Flush() {
	e.catalog.Flush()
}

// Close waits for pending writes and releases every subscription.
func (e *Engine) Close() {
	e.catalog.Flush()
	e.bag.Dispose()
	e.selection.Close()
}
