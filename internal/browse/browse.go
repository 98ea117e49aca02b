// Package browse is the interactive list screen: one bubbletea event
// loop driving a listview controller. Keystrokes mutate controller
// state; loads run as background commands and come back as messages,
// so a slow response never freezes the UI and a stale one is dropped
// by the controller's generation guard.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tanviarora/aurum/internal/api"
	"github.com/tanviarora/aurum/internal/listview"
	"github.com/tanviarora/aurum/internal/render"
)

type loadedMsg[T any] struct {
	gen  uint64
	rows []T
	pg   *api.Pagination
	err  error
}

type deletedMsg struct {
	id  string
	err error
}

type model[T any] struct {
	title string
	cols  []string
	row   func(T) []string
	ctrl  *listview.Controller[T]

	selected int

	searching bool
	search    textinput.Model

	confirming bool
	pendingID  string

	status string

	width  int
	height int
}

// Run starts the browse screen for one resource and blocks until the
// user quits.
func Run[T any](title string, cols []string, row func(T) []string, ctrl *listview.Controller[T]) error {
	search := textinput.New()
	search.Prompt = "search: "
	search.CharLimit = 64
	m := model[T]{title: title, cols: cols, row: row, ctrl: ctrl, search: search}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model[T]) Init() tea.Cmd {
	return loadCmd(m.ctrl)
}

func loadCmd[T any](ctrl *listview.Controller[T]) tea.Cmd {
	gen, params := ctrl.Begin()
	return func() tea.Msg {
		rows, pg, err := ctrl.Fetch(context.Background(), params)
		return loadedMsg[T]{gen: gen, rows: rows, pg: pg, err: err}
	}
}

func (m model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case loadedMsg[T]:
		// Apply drops the result when a newer load has started since.
		_ = m.ctrl.Apply(msg.gen, msg.rows, msg.pg, msg.err)
		m.clampSelection()
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.status = "delete failed: " + api.UserMessage(msg.err)
		} else {
			m.status = fmt.Sprintf("deleted %s", msg.id)
			m.clampSelection()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirmation overlay swallows everything except its answer.
	if m.confirming {
		switch msg.String() {
		case "y", "Y":
			m.confirming = false
			id := m.pendingID
			ctrl := m.ctrl
			return m, func() tea.Msg {
				// Confirmed above; this is the only path that fires
				// the delete.
				err := ctrl.Delete(context.Background(), id, true)
				return deletedMsg{id: id, err: err}
			}
		default:
			m.confirming = false
			m.status = "delete cancelled"
			return m, nil
		}
	}

	if m.searching {
		switch msg.Type {
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			if m.ctrl.Mode() == listview.ServerSide {
				return m, loadCmd(m.ctrl)
			}
			return m, nil
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.ctrl.SetSearch("")
			if m.ctrl.Mode() == listview.ServerSide {
				return m, loadCmd(m.ctrl)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		// Client-side screens filter on every keystroke, like the
		// original search boxes; server-side waits for Enter.
		m.ctrl.SetSearch(m.search.Value())
		m.selected = 0
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.ctrl.Rows())-1 {
			m.selected++
		}

	case "left", "h":
		m.ctrl.PrevPage()
		m.selected = 0
		if m.ctrl.Mode() == listview.ServerSide {
			return m, loadCmd(m.ctrl)
		}
	case "right", "l":
		m.ctrl.NextPage()
		m.selected = 0
		if m.ctrl.Mode() == listview.ServerSide {
			return m, loadCmd(m.ctrl)
		}

	case "/":
		m.searching = true
		m.search.SetValue(m.ctrl.Search())
		m.search.CursorEnd()
		return m, m.search.Focus()

	case "s":
		fields := m.ctrl.SortFields()
		if len(fields) > 0 {
			current, _ := m.ctrl.SortState()
			m.ctrl.SetSort(nextField(fields, current))
			if m.ctrl.Mode() == listview.ServerSide {
				return m, loadCmd(m.ctrl)
			}
		}
	case "o":
		if current, _ := m.ctrl.SortState(); current != "" {
			m.ctrl.SetSort(current) // same field: flips direction
			if m.ctrl.Mode() == listview.ServerSide {
				return m, loadCmd(m.ctrl)
			}
		}

	case "r":
		m.status = ""
		return m, loadCmd(m.ctrl)

	case "d":
		rows := m.ctrl.Rows()
		if m.selected < len(rows) {
			m.pendingID = m.idOf(rows[m.selected])
			m.confirming = true
		}
	}
	return m, nil
}

func (m model[T]) idOf(row T) string {
	cells := m.row(row)
	if len(cells) > 0 {
		return cells[0]
	}
	return ""
}

func (m *model[T]) clampSelection() {
	if n := len(m.ctrl.Rows()); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func nextField(fields []string, current string) string {
	for i, f := range fields {
		if f == current {
			return fields[(i+1)%len(fields)]
		}
	}
	return fields[0]
}

func (m model[T]) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" "+m.title+" ") + "\n\n")

	if !m.ctrl.Loaded() && m.ctrl.LastError() != "" {
		// Nothing was ever shown: full error block with manual retry.
		b.WriteString(render.ErrorBlock(m.ctrl.LastError()) + "\n")
		b.WriteString(helpStyle.Render("r reload · q quit") + "\n")
		return b.String()
	}

	rows := m.ctrl.Rows()
	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = m.row(r)
	}
	b.WriteString(renderRows(m.cols, table, m.selected))

	first, last := m.ctrl.VisibleRange()
	b.WriteString("\n" + render.Pager(first, last, m.ctrl.TotalItems(), m.ctrl.Page(), m.ctrl.TotalPages(), m.ctrl.PageButtons()) + "\n")

	if field, asc := m.ctrl.SortState(); field != "" {
		dir := "↑"
		if !asc {
			dir = "↓"
		}
		b.WriteString(metaStyle.Render(fmt.Sprintf("sort: %s %s", field, dir)) + "\n")
	}

	if m.ctrl.LastError() != "" {
		// Previously loaded rows stay visible above this line.
		b.WriteString(errorLineStyle.Render("⚠ "+m.ctrl.LastError()) + "\n")
	}
	if m.status != "" {
		b.WriteString(metaStyle.Render(m.status) + "\n")
	}

	switch {
	case m.confirming:
		b.WriteString(confirmStyle.Render(fmt.Sprintf("Delete %s? y/n", m.pendingID)) + "\n")
	case m.searching:
		b.WriteString(searchStyle.Render(m.search.View()) + "\n")
	default:
		b.WriteString(helpStyle.Render("↑↓ select · ←→ page · / search · s sort · o direction · d delete · r reload · q quit") + "\n")
	}
	return b.String()
}
