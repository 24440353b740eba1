package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskfx/internal/config"
	"github.com/jask/jaskfx/internal/currency"
	"github.com/jask/jaskfx/internal/engine"
	"github.com/jask/jaskfx/internal/logger"
	"github.com/jask/jaskfx/internal/prefs"
	"github.com/jask/jaskfx/internal/reactive"
)

const (
	msgBothSelected = "already selected two currencies, press c to clear"
	msgSameAsFrom   = "pick a different currency for the pair"
	msgNoData       = "Couldn't load currencies and nothing is saved yet."
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeAmount
)

// App is the bubbletea model over an engine. The engine is only touched
// from Update, which bubbletea runs on a single goroutine.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	prefs  *prefs.Prefs
	log    *logger.Logger
	cfg    config.Config
	keys   keyMap

	mode   mode
	search textinput.Model
	amount textinput.Model
	cursor int
	status string
	width  int
	height int

	// mirrors of the engine outputs, kept current by subscriptions
	displayed      []currency.Currency
	catalog        []currency.Currency
	state          engine.LoadingState
	loading        bool
	tryAgainText   bool
	tryAgainButton bool
	fromText       string
	toText         string
	convertEnabled bool
	clearEnabled   bool
	direction      currency.Direction

	bag reactive.Bag
}

type fetchDoneMsg struct {
	res engine.FetchResult
}

type statusMsg string

// New builds the app. p may be nil, in which case the sort isn't remembered.
func New(ctx context.Context, cfg config.Config, e *engine.Engine, p *prefs.Prefs, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	search := textinput.New()
	search.Placeholder = "search by name"
	search.Prompt = "/ "

	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.Prompt = cfg.UI.CurrencySymbol + " "

	a := &App{
		ctx:    ctx,
		engine: e,
		prefs:  p,
		log:    log.WithComponent("tui"),
		cfg:    cfg,
		keys:   newKeyMap(),
		search: search,
		amount: amount,
	}
	a.bind()
	return a
}

func (a *App) bind() {
	e := a.engine
	a.bag.Add(
		e.Displayed().Subscribe(func(list []currency.Currency) {
			a.displayed = list
			a.clampCursor()
		}),
		e.Catalog().Subscribe(func(list []currency.Currency) { a.catalog = list }),
		e.State().Subscribe(func(s engine.LoadingState) { a.state = s }),
		e.Loading().Subscribe(func(v bool) { a.loading = v }),
		e.TryAgainTextVisible().Subscribe(func(v bool) { a.tryAgainText = v }),
		e.TryAgainButtonVisible().Subscribe(func(v bool) { a.tryAgainButton = v }),
		e.FromText().Subscribe(func(v string) { a.fromText = v }),
		e.ToText().Subscribe(func(v string) { a.toText = v }),
		e.ConvertEnabled().Subscribe(func(v bool) { a.convertEnabled = v }),
		e.ClearEnabled().Subscribe(func(v bool) { a.clearEnabled = v }),
		e.Direction().Subscribe(func(d currency.Direction) { a.direction = d }),
	)
}

// Close releases the view's subscriptions.
func (a *App) Close() {
	a.bag.Dispose()
}

func (a *App) Init() tea.Cmd {
	return fetchCmd(a.engine.Fetch(a.ctx))
}

func fetchCmd(run engine.FetchFunc) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{res: run()}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case fetchDoneMsg:
		a.applyFetch(m.res)
		return a, nil
	case statusMsg:
		a.status = string(m)
		return a, nil
	case tea.KeyMsg:
		switch a.mode {
		case modeSearch:
			return a.updateSearch(m)
		case modeAmount:
			return a.updateAmount(m)
		}
		return a.updateList(m)
	}
	return a, nil
}

func (a *App) applyFetch(res engine.FetchResult) {
	out, err := a.engine.Complete(a.ctx, res)
	switch out {
	case engine.OutcomeRemote:
		a.status = fmt.Sprintf("%d currencies", len(a.catalog))
	case engine.OutcomeFallback:
		// stale data is fine; the failed fetch isn't worth interrupting for
		a.status = fmt.Sprintf("%d currencies (saved)", len(a.catalog))
	case engine.OutcomeNoData:
		a.log.Warnw("no currency data", "error", err)
		a.status = ""
	}
}

func (a *App) updateList(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.displayed)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Search):
		a.mode = modeSearch
		return a, a.search.Focus()
	case key.Matches(m, a.keys.Sort):
		a.engine.ToggleSort()
		a.savePrefs()
	case key.Matches(m, a.keys.Select):
		a.pick()
	case key.Matches(m, a.keys.Clear):
		if a.clearEnabled {
			a.engine.Clear()
			a.status = "pair cleared"
		}
	case key.Matches(m, a.keys.Retry):
		if a.tryAgainButton {
			a.status = ""
			return a, fetchCmd(a.engine.Retry(a.ctx))
		}
	case key.Matches(m, a.keys.Convert):
		if a.convertEnabled {
			a.mode = modeAmount
			a.amount.SetValue("")
			return a, a.amount.Focus()
		}
	case key.Matches(m, a.keys.Back):
		if a.engine.Search().Get() != "" {
			a.search.SetValue("")
			a.engine.SetSearch("")
		}
	}
	return a, nil
}

func (a *App) pick() {
	if len(a.displayed) == 0 {
		return
	}
	c := a.displayed[a.cursor]
	if a.engine.IsSameAsFrom(c) {
		a.status = msgSameAsFrom
		return
	}
	if res := a.engine.Select(c); !res.Progressed() {
		a.status = msgBothSelected
		return
	}
	a.status = ""
}

func (a *App) updateSearch(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyEsc || m.Type == tea.KeyEnter {
		a.mode = modeList
		a.search.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.engine.SetSearch(strings.TrimSpace(a.search.Value()))
	return a, cmd
}

func (a *App) updateAmount(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.mode = modeList
		a.amount.Blur()
		return a, nil
	case tea.KeyEnter:
		from, to, ok := a.engine.Pair()
		amt, err := currency.ParseAmount(a.amount.Value())
		if !ok || err != nil {
			a.status = "enter an amount"
			return a, nil
		}
		a.mode = modeList
		a.amount.Blur()
		a.status = fmt.Sprintf("convert %s %s → %s", amt.String(), from.Code, to.Code)
		return a, nil
	}
	var cmd tea.Cmd
	a.amount, cmd = a.amount.Update(m)
	if v := a.amount.Value(); v != "" {
		if clean := currency.SanitizeAmount(v); clean != v {
			a.amount.SetValue(clean)
		}
	}
	return a, cmd
}

func (a *App) savePrefs() {
	if a.prefs == nil {
		return
	}
	if err := a.prefs.SaveView(prefs.View{Sort: a.direction.String()}); err != nil {
		a.log.Warnw("save view prefs", "error", err)
	}
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.displayed) {
		a.cursor = len(a.displayed) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}
