package tui

import (
	"fmt"
	"strings"

	"github.com/jask/jaskfx/internal/currency"
)

const defaultListHeight = 15

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("jaskfx"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("sort " + sortLabel(a.direction)))
	b.WriteString("\n\n")

	b.WriteString(a.renderPair())
	b.WriteString("\n")
	if a.mode == modeSearch || a.search.Value() != "" {
		b.WriteString(a.search.View())
		b.WriteString("\n")
	}
	if a.mode == modeAmount {
		b.WriteString(a.amount.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(listBoxStyle.Render(a.renderBody()))
	b.WriteString("\n")

	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(a.renderFooter())
	return b.String()
}

func (a *App) renderPair() string {
	from := a.fromText
	if from == "" {
		from = "—"
	}
	to := a.toText
	if to == "" {
		to = "—"
	}
	return fmt.Sprintf("From %s   To %s   %s %s",
		codeStyle.Render(from), codeStyle.Render(to),
		flag("convert", a.convertEnabled), flag("clear", a.clearEnabled))
}

func (a *App) renderBody() string {
	if a.loading {
		return dimStyle.Render("loading currencies…")
	}
	var lines []string
	if a.tryAgainText {
		lines = append(lines, errorStyle.Render(msgNoData))
	}
	if a.tryAgainButton {
		lines = append(lines, "[ r ] try again")
	}
	if len(lines) > 0 {
		return strings.Join(lines, "\n")
	}
	if len(a.displayed) == 0 {
		return a.renderEmptyResult()
	}

	height := a.listHeight()
	start := 0
	if a.cursor >= height {
		start = a.cursor - height + 1
	}
	end := min(len(a.displayed), start+height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, a.renderRow(i, a.displayed[i]))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderRow(i int, c currency.Currency) string {
	prefix := "  "
	if i == a.cursor {
		prefix = cursorStyle.Render("> ")
	}
	line := fmt.Sprintf("%s%-6s %-20s %s", prefix, c.Code, c.DisplayName, dimStyle.Render(c.FullName))
	if q := c.Quote; !q.IsZero() {
		line += "  " + dimStyle.Render(q.String())
	}
	return line
}

func (a *App) renderEmptyResult() string {
	text := a.engine.Search().Get()
	if text == "" {
		return dimStyle.Render("no currencies")
	}
	msg := fmt.Sprintf("nothing matches %q", text)
	if hints := currency.Suggest(a.catalog, text, 3); len(hints) > 0 {
		names := make([]string, len(hints))
		for i, h := range hints {
			names[i] = h.DisplayName
		}
		msg += " · did you mean " + strings.Join(names, ", ") + "?"
	}
	return dimStyle.Render(msg)
}

func (a *App) renderFooter() string {
	parts := make([]string, 0, 8)
	for _, b := range a.keys.help(a) {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return footerStyle.Render(strings.Join(parts, " · "))
}

func (a *App) listHeight() int {
	if a.height <= 0 {
		return defaultListHeight
	}
	// title, pair, search, status, footer and the box border
	return max(3, a.height-10)
}

func flag(name string, on bool) string {
	if on {
		return enabledStyle.Render(name)
	}
	return disabledStyle.Render(name)
}

func sortLabel(d currency.Direction) string {
	if d == currency.Descending {
		return "Z→A"
	}
	return "A→Z"
}
