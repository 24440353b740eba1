package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jask/jaskfx/internal/currency"
	"github.com/jask/jaskfx/internal/logger"
	"github.com/jask/jaskfx/internal/reactive"
)

// Source is the remote catalog.
type Source interface {
	GetCurrencies(ctx context.Context) ([]currency.Currency, error)
}

// Store persists the last good catalog.
type Store interface {
	SaveAll(ctx context.Context, list []currency.Currency) error
	List(ctx context.Context) ([]currency.Currency, error)
}

// LoadingState is the catalog's fetch state.
type LoadingState int

const (
	Idle LoadingState = iota
	Loading
	Ready
	Empty
)

func (s LoadingState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	default:
		return "idle"
	}
}

// Outcome says how a completed fetch was resolved.
type Outcome int

const (
	OutcomeRemote Outcome = iota
	OutcomeFallback
	OutcomeNoData
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRemote:
		return "remote"
	case OutcomeFallback:
		return "fallback"
	case OutcomeNoData:
		return "no-data"
	default:
		return "stale"
	}
}

// FetchResult carries a remote call's result back to the owning goroutine.
type FetchResult struct {
	Ticket     uint64
	Currencies []currency.Currency
	Err        error
}

// FetchFunc performs the remote call. It may run on any goroutine.
type FetchFunc func() FetchResult

// noStore keeps nothing, so every failed fetch ends in Empty.
type noStore struct{}

func (noStore) SaveAll(context.Context, []currency.Currency) error { return nil }
func (noStore) List(context.Context) ([]currency.Currency, error)  { return nil, nil }

// persistTimeout bounds the detached SaveAll.
const persistTimeout = 10 * time.Second

// Catalog owns the raw currency list and the fetch/fallback decision.
type Catalog struct {
	source    Source
	store     Store
	log       *logger.Logger
	direction reactive.Value[currency.Direction]

	list        *reactive.Cell[[]currency.Currency]
	state       *reactive.Cell[LoadingState]
	retryText   *reactive.Cell[bool]
	retryButton *reactive.Cell[bool]

	ticket uint64
	writes sync.WaitGroup
}

// NewCatalog builds a catalog that sorts by the current value of direction.
func NewCatalog(source Source, store Store, direction reactive.Value[currency.Direction], log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.Nop()
	}
	if store == nil {
		store = noStore{}
	}
	return &Catalog{
		source:      source,
		store:       store,
		log:         log.WithComponent("catalog"),
		direction:   direction,
		list:        reactive.NewCell[[]currency.Currency](nil),
		state:       reactive.NewCell(Idle),
		retryText:   reactive.NewCell(false),
		retryButton: reactive.NewCell(false),
	}
}

func (c *Catalog) List() reactive.Value[[]currency.Currency] { return c.list }
func (c *Catalog) State() reactive.Value[LoadingState]       { return c.state }

// TryAgainTextVisible and TryAgainButtonVisible move together.
func (c *Catalog) TryAgainTextVisible() reactive.Value[bool]   { return c.retryText }
func (c *Catalog) TryAgainButtonVisible() reactive.Value[bool] { return c.retryButton }

// Fetch marks the catalog loading and returns the remote call to run.
// Only the most recently issued fetch may change state when it completes.
func (c *Catalog) Fetch(ctx context.Context) FetchFunc {
	c.ticket++
	ticket := c.ticket
	c.state.Set(Loading)
	c.setRetryVisible(false)

	source := c.source
	return func() FetchResult {
		list, err := source.GetCurrencies(ctx)
		return FetchResult{Ticket: ticket, Currencies: list, Err: err}
	}
}

// Retry is a user-triggered Fetch. There is no backoff and no cap.
func (c *Catalog) Retry(ctx context.Context) FetchFunc {
	return c.Fetch(ctx)
}

// Complete applies a fetch result. It must run on the owning goroutine.
func (c *Catalog) Complete(ctx context.Context, res FetchResult) (Outcome, error) {
	if res.Ticket != c.ticket {
		c.log.Infow("dropping stale fetch result", "ticket", res.Ticket, "current", c.ticket)
		return OutcomeStale, nil
	}

	if res.Err == nil {
		list := currency.Sort(currency.Dedupe(res.Currencies), c.direction.Get())
		c.persist(ctx, list)
		c.list.Set(list)
		c.state.Set(Ready)
		c.log.Debugw("catalog loaded from remote", "count", len(list))
		return OutcomeRemote, nil
	}

	fetchErr := fmt.Errorf("%w: %w", ErrFetchFailed, res.Err)
	c.log.Warnw("remote fetch failed, trying persisted catalog", "error", res.Err)

	saved, err := c.store.List(ctx)
	if err != nil {
		c.log.Warnw("read persisted catalog", "error", err)
		saved = nil
	}
	if len(saved) > 0 {
		c.list.Set(currency.Sort(saved, c.direction.Get()))
		c.state.Set(Ready)
		c.log.Infow("catalog loaded from persistence", "count", len(saved))
		return OutcomeFallback, nil
	}

	c.state.Set(Empty)
	c.setRetryVisible(true)
	return OutcomeNoData, fmt.Errorf("%w: %w", ErrNoDataAvailable, fetchErr)
}

// FetchNow runs a fetch to completion on the calling goroutine.
func (c *Catalog) FetchNow(ctx context.Context) (Outcome, error) {
	return c.Complete(ctx, c.Fetch(ctx)())
}

// Flush waits for detached persistence writes.
func (c *Catalog) Flush() {
	c.writes.Wait()
}

// persist saves list without blocking the caller. Failures are logged and
// dropped: persistence is best effort and never reaches the user.
func (c *Catalog) persist(ctx context.Context, list []currency.Currency) {
	c.writes.Add(1)
	go func() {
		defer c.writes.Done()
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		defer cancel()
		if err := c.store.SaveAll(wctx, list); err != nil {
			c.log.Warnw("persist catalog", "error", err, "count", len(list))
		}
	}()
}

// resort republishes the catalog in dir order. An empty catalog is left alone.
func (c *Catalog) resort(dir currency.Direction) {
	if list := c.list.Get(); len(list) > 0 {
		c.list.Set(currency.Sort(list, dir))
	}
}

func (c *Catalog) setRetryVisible(v bool) {
	c.retryText.Set(v)
	c.retryButton.Set(v)
}
