// Package tui renders the board and translates key presses into service
// calls. It is a pure consumer of snapshots: every Update re-reads state
// through the service and never holds references into the stores.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/kanba/internal/board"
	"github.com/jask/kanba/internal/service"
)

type appMode string

const (
	modeBoard       appMode = "board"
	modeEditNote    appMode = "editNote"
	modeEditLane    appMode = "editLane"
	modeConfirmLane appMode = "confirmDeleteLane"
	modeJump        appMode = "jump"
)

const jumpLimit = 8

// App ties the board service to a Bubble Tea program.
type App struct {
	svc  *service.BoardService
	keys keyMap
	help help.Model

	mode       appMode
	laneCursor int
	noteCursor int

	// inline editor state
	inputBuffer string
	editingID   string

	// jump overlay state
	jumpQuery   string
	jumpMatches []service.Match
	jumpCursor  int

	status    string
	width     int
	laneWidth int
}

// New builds the app around an already-hydrated board service.
func New(svc *service.BoardService, laneWidth int) *App {
	return &App{
		svc:       svc,
		keys:      newKeyMap(),
		help:      help.New(),
		mode:      modeBoard,
		laneWidth: laneWidth,
		status:    "Ready. Press ? for help.",
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		switch a.mode {
		case modeEditNote, modeEditLane:
			return a.updateEditor(m)
		case modeConfirmLane:
			return a.updateConfirm(m)
		case modeJump:
			return a.updateJump(m)
		default:
			return a.updateBoard(m)
		}
	}
	return a, nil
}

// updateBoard handles keys in the normal board view.
func (a *App) updateBoard(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	lanes := a.svc.Snapshot().Lanes
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "?":
		a.help.ShowAll = !a.help.ShowAll
	case "left", "h":
		if a.laneCursor > 0 {
			a.laneCursor--
			a.clampNoteCursor()
		}
	case "right", "l":
		if a.laneCursor < len(lanes)-1 {
			a.laneCursor++
			a.clampNoteCursor()
		}
	case "up", "k":
		if a.noteCursor > 0 {
			a.noteCursor--
		}
	case "down", "j":
		if a.noteCursor < len(a.currentNotes())-1 {
			a.noteCursor++
		}
	case "H", "shift+left":
		a.moveSelected(-1)
	case "L", "shift+right":
		a.moveSelected(+1)
	case "n":
		a.newNote()
	case "N":
		a.newLane()
	case "enter", "e":
		a.editSelectedNote()
	case "r":
		a.renameCurrentLane()
	case "d":
		a.deleteSelectedNote()
	case "D":
		if len(lanes) > 0 {
			a.mode = modeConfirmLane
		}
	case "p":
		pruned, err := a.svc.PruneOrphans()
		if err != nil {
			a.status = "error: " + err.Error()
			break
		}
		a.status = fmt.Sprintf("pruned %d orphaned note(s)", pruned)
	case "/":
		a.mode = modeJump
		a.jumpQuery = ""
		a.jumpMatches = nil
		a.jumpCursor = 0
	}
	return a, nil
}

// updateEditor handles the inline note/lane editor. Esc finishes with
// blank text, which keeps the old value and drops back to viewing.
func (a *App) updateEditor(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	finish := func(text string) {
		var err error
		if a.mode == modeEditLane {
			err = a.svc.FinishLaneEdit(a.editingID, text)
		} else {
			err = a.svc.FinishNoteEdit(a.editingID, text)
		}
		if err != nil {
			a.status = "error: " + err.Error()
		}
		a.mode = modeBoard
		a.editingID = ""
		a.inputBuffer = ""
	}

	switch m.Type {
	case tea.KeyEsc:
		finish("")
	case tea.KeyEnter:
		finish(a.inputBuffer)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.inputBuffer) > 0 {
			a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
		}
	case tea.KeySpace:
		a.inputBuffer += " "
	case tea.KeyRunes:
		a.inputBuffer += string(m.Runes)
	}
	return a, nil
}

func (a *App) updateConfirm(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "y", "Y":
		a.mode = modeBoard
		lanes := a.svc.Snapshot().Lanes
		if a.laneCursor >= len(lanes) {
			return a, nil
		}
		lane := lanes[a.laneCursor]
		if err := a.svc.DeleteLane(lane.ID); err != nil {
			a.status = "error: " + err.Error()
			return a, nil
		}
		a.status = fmt.Sprintf("deleted lane %q (notes kept, press p to prune)", lane.Name)
		a.clampCursors()
	case "n", "N", "esc":
		a.mode = modeBoard
	}
	return a, nil
}

func (a *App) updateJump(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.mode = modeBoard
		return a, nil
	case tea.KeyEnter:
		a.mode = modeBoard
		if a.jumpCursor < len(a.jumpMatches) {
			a.jumpTo(a.jumpMatches[a.jumpCursor])
		}
		return a, nil
	case tea.KeyUp, tea.KeyCtrlP:
		if a.jumpCursor > 0 {
			a.jumpCursor--
		}
		return a, nil
	case tea.KeyDown, tea.KeyCtrlN:
		if a.jumpCursor < len(a.jumpMatches)-1 {
			a.jumpCursor++
		}
		return a, nil
	case tea.KeyBackspace, tea.KeyCtrlH:
		if len(a.jumpQuery) > 0 {
			a.jumpQuery = a.jumpQuery[:len(a.jumpQuery)-1]
		}
	case tea.KeySpace:
		a.jumpQuery += " "
	case tea.KeyRunes:
		a.jumpQuery += string(m.Runes)
	default:
		return a, nil
	}
	a.jumpMatches = service.FuzzyMatches(a.svc.Snapshot(), a.jumpQuery, jumpLimit)
	a.jumpCursor = 0
	return a, nil
}

// jumpTo moves the cursors to a fuzzy match target.
func (a *App) jumpTo(m service.Match) {
	lanes := a.svc.Snapshot().Lanes
	for i, l := range lanes {
		if l.ID != m.LaneID {
			continue
		}
		a.laneCursor = i
		a.noteCursor = 0
		if m.Kind == service.MatchNote {
			for j, n := range a.svc.LaneNotes(l.ID) {
				if n.ID == m.ID {
					a.noteCursor = j
					break
				}
			}
		}
		a.status = "jumped to " + m.Label
		return
	}
}

func (a *App) newNote() {
	lanes := a.svc.Snapshot().Lanes
	if len(lanes) == 0 {
		a.status = "create a lane first (N)"
		return
	}
	lane := lanes[a.laneCursor]
	id, err := a.svc.CreateNote(lane.ID, "")
	if err != nil {
		a.status = "error: " + err.Error()
		return
	}
	if err := a.svc.BeginNoteEdit(id); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.noteCursor = len(a.svc.LaneNotes(lane.ID)) - 1
	a.mode = modeEditNote
	a.editingID = id
	a.inputBuffer = ""
	a.status = "new note: type the task, enter to save"
}

func (a *App) newLane() {
	id, err := a.svc.CreateLane("")
	if err != nil {
		a.status = "error: " + err.Error()
		return
	}
	if err := a.svc.BeginLaneEdit(id); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.laneCursor = len(a.svc.Snapshot().Lanes) - 1
	a.noteCursor = 0
	a.mode = modeEditLane
	a.editingID = id
	a.inputBuffer = ""
	a.status = "new lane: type the name, enter to save"
}

func (a *App) editSelectedNote() {
	notes := a.currentNotes()
	if a.noteCursor >= len(notes) {
		return
	}
	n := notes[a.noteCursor]
	if err := a.svc.BeginNoteEdit(n.ID); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.mode = modeEditNote
	a.editingID = n.ID
	a.inputBuffer = n.Task
}

func (a *App) renameCurrentLane() {
	lanes := a.svc.Snapshot().Lanes
	if a.laneCursor >= len(lanes) {
		return
	}
	l := lanes[a.laneCursor]
	if err := a.svc.BeginLaneEdit(l.ID); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.mode = modeEditLane
	a.editingID = l.ID
	a.inputBuffer = l.Name
}

func (a *App) deleteSelectedNote() {
	notes := a.currentNotes()
	if a.noteCursor >= len(notes) {
		return
	}
	n := notes[a.noteCursor]
	if err := a.svc.DeleteNote(n.ID); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.status = fmt.Sprintf("deleted %q", n.Task)
	a.clampNoteCursor()
}

// moveSelected transfers the selected note to the adjacent lane.
func (a *App) moveSelected(dir int) {
	lanes := a.svc.Snapshot().Lanes
	target := a.laneCursor + dir
	if target < 0 || target >= len(lanes) {
		return
	}
	notes := a.currentNotes()
	if a.noteCursor >= len(notes) {
		return
	}
	n := notes[a.noteCursor]
	if err := a.svc.MoveNote(lanes[target].ID, n.ID); err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.laneCursor = target
	a.noteCursor = len(a.svc.LaneNotes(lanes[target].ID)) - 1
	a.status = fmt.Sprintf("moved %q to %s", n.Task, lanes[target].Name)
}

func (a *App) currentNotes() []board.Note {
	lanes := a.svc.Snapshot().Lanes
	if a.laneCursor >= len(lanes) {
		return nil
	}
	return a.svc.LaneNotes(lanes[a.laneCursor].ID)
}

func (a *App) clampCursors() {
	lanes := a.svc.Snapshot().Lanes
	if a.laneCursor >= len(lanes) {
		a.laneCursor = len(lanes) - 1
	}
	if a.laneCursor < 0 {
		a.laneCursor = 0
	}
	a.clampNoteCursor()
}

func (a *App) clampNoteCursor() {
	n := len(a.currentNotes())
	if a.noteCursor >= n {
		a.noteCursor = n - 1
	}
	if a.noteCursor < 0 {
		a.noteCursor = 0
	}
}

func (a *App) View() string {
	snap := a.svc.Snapshot()

	title := titleStyle.Render("Kanba")
	var body string
	if len(snap.Lanes) == 0 {
		body = statusStyle.Render("No lanes yet. Press N to create one.")
	} else {
		cols := make([]string, 0, len(snap.Lanes))
		for i, lane := range snap.Lanes {
			cols = append(cols, a.renderLane(lane, i == a.laneCursor))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}

	out := title + "\n" + body + "\n" + statusStyle.Render(a.status)

	switch a.mode {
	case modeConfirmLane:
		out += "\n" + overlayStyle.Render("Delete this lane? Its notes stay behind. [y/n]")
	case modeJump:
		out += "\n" + a.renderJump()
	}
	out += "\n" + a.help.View(a.keys)
	return out
}

func (a *App) renderLane(lane board.Lane, active bool) string {
	style := laneStyle
	if active {
		style = activeLaneStyle
	}

	name := lane.Name
	if lane.Editing && a.mode == modeEditLane {
		name = a.inputBuffer + "▏"
	}
	header := laneTitleStyle.Render(truncate(name, a.laneWidth-4))
	if lane.Editing && a.mode == modeEditLane {
		header = editingStyle.Render(truncate(name, a.laneWidth-4))
	}

	lines := []string{header, ""}
	notes := a.svc.LaneNotes(lane.ID)
	if len(notes) == 0 {
		lines = append(lines, statusStyle.Render("(empty)"))
	}
	for i, n := range notes {
		text := n.Task
		if n.Editing && a.mode == modeEditNote {
			text = a.inputBuffer + "▏"
		}
		line := truncate(text, a.laneWidth-6)
		switch {
		case n.Editing && a.mode == modeEditNote:
			line = editingStyle.Render("› " + line)
		case active && i == a.noteCursor:
			line = selectedNoteStyle.Render("› " + line)
		default:
			line = noteStyle.Render("  " + line)
		}
		lines = append(lines, line)
	}

	return style.Width(a.laneWidth).Render(strings.Join(lines, "\n"))
}

func (a *App) renderJump() string {
	var b strings.Builder
	b.WriteString("jump: " + a.jumpQuery + "▏")
	for i, m := range a.jumpMatches {
		marker := "  "
		if i == a.jumpCursor {
			marker = "› "
		}
		kind := "note"
		if m.Kind == service.MatchLane {
			kind = "lane"
		}
		b.WriteString(fmt.Sprintf("\n%s%s  %s", marker, kind, truncate(m.Label, 40)))
	}
	return overlayStyle.Render(b.String())
}

func truncate(s string, width int) string {
	if width < 1 {
		width = 1
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
