package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/dashboard"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/form"
)

const remoteCallTimeout = 15 * time.Second

// Messages produced when remote calls settle.
type (
	loadedMsg     struct{}
	removedMsg    struct{}
	submitDoneMsg struct {
		res form.Result
		err error
	}
	notesMsg struct {
		notes []domain.Note
		err   error
	}
	downloadDoneMsg struct {
		path string
		err  error
	}
)

func (m Model) loadCmd() tea.Cmd {
	vm, userID := m.vm, m.user.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteCallTimeout)
		defer cancel()
		vm.Load(ctx, userID)
		return loadedMsg{}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	vm := m.vm
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteCallTimeout)
		defer cancel()
		vm.Remove(ctx, id)
		return removedMsg{}
	}
}

func (m Model) submitCmd(draft *form.Draft) tea.Cmd {
	apps, resumes, log := m.apps, m.resumes, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*remoteCallTimeout)
		defer cancel()
		res, err := draft.Submit(ctx, apps, resumes, log)
		return submitDoneMsg{res: res, err: err}
	}
}

func (m Model) notesCmd(applicationID string) tea.Cmd {
	notes := m.notes
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), remoteCallTimeout)
		defer cancel()
		list, err := notes.ListByApplication(ctx, applicationID)
		return notesMsg{notes: list, err: err}
	}
}

func (m Model) downloadCmd(rec domain.ApplicationRecord) tea.Cmd {
	resumes := m.resumes
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*remoteCallTimeout)
		defer cancel()
		data, err := resumes.Download(ctx, rec.ResumeID)
		if err != nil {
			return downloadDoneMsg{err: err}
		}
		name := rec.CVFileName
		if name == "" {
			name = rec.ResumeID + ".pdf"
		}
		path := filepath.Join(".", filepath.Base(name))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return downloadDoneMsg{err: err}
		}
		return downloadDoneMsg{path: path}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg, removedMsg:
		if n := len(m.vm.Project(m.query())); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case notesMsg:
		if msg.err != nil {
			m.notice = "Failed to load notes"
			return m, nil
		}
		titles := make([]string, 0, len(msg.notes))
		for _, n := range msg.notes {
			if n.Title != "" {
				titles = append(titles, n.Title)
			}
		}
		m.notice = fmt.Sprintf("%d note(s) %s", len(msg.notes), strings.Join(titles, " · "))
		return m, nil

	case downloadDoneMsg:
		if msg.err != nil {
			m.notice = "Resume download failed"
		} else {
			m.notice = "Resume saved to " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case formView:
			return m.updateForm(msg)
		case confirmDeleteView:
			return m.updateConfirm(msg)
		case statsView:
			m.mode = listView
			return m, nil
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if m.formState != nil {
		m.formState.saving = false
	}
	if msg.err != nil {
		var verr *form.ValidationError
		if errors.As(msg.err, &verr) && m.formState != nil {
			m.formState.errs = verr.Fields
			return m, nil
		}
		// Store failure: draft stays intact so the user can retry.
		m.log.Warn("submit failed", zap.Error(msg.err))
		if m.formState != nil {
			m.formState.errs = form.FieldErrors{"_form": "Failed to save application — please try again"}
		}
		return m, nil
	}
	m.warning = msg.res.Warning
	m.formState = nil
	m.mode = listView
	// Reconcile from the store rather than patching from the local echo.
	return m, m.loadCmd()
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.cursor = 0
			return m, cmd
		}
	}

	projected := m.vm.Project(m.query())
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(projected)-1 {
			m.cursor++
		}
	case "a":
		m.formState = newFormState(form.NewDraft(), "Add Application")
		m.mode = formView
		m.warning = ""
		return m, textinput.Blink
	case "enter", "e":
		if m.cursor < len(projected) {
			m.formState = newFormState(form.FromRecord(projected[m.cursor]), "Edit Application")
			m.mode = formView
			m.warning = ""
			return m, textinput.Blink
		}
	case "d":
		if m.cursor < len(projected) {
			m.pendingDelete = projected[m.cursor].ID
			m.mode = confirmDeleteView
		}
	case "f":
		m.statusFilter = nextStatusFilter(m.statusFilter)
		m.cursor = 0
	case "s":
		m.sortKey = nextSortKey(m.sortKey)
	case "o":
		m.sortDesc = !m.sortDesc
	case "t":
		m.mode = statsView
	case "v":
		if m.cursor < len(projected) {
			return m, m.notesCmd(projected[m.cursor].ID)
		}
	case "x":
		if m.cursor < len(projected) && projected[m.cursor].HasResume() {
			return m, m.downloadCmd(projected[m.cursor])
		}
	case "R":
		return m, m.loadCmd()
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.pendingDelete
		m.pendingDelete = ""
		m.mode = listView
		return m, m.removeCmd(id)
	case "n", "N", "esc":
		m.pendingDelete = ""
		m.mode = listView
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fs := m.formState
	if fs == nil {
		m.mode = listView
		return m, nil
	}
	if fs.saving {
		// Form is frozen while the submit is in flight.
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Cancel discards the draft.
		m.formState = nil
		m.mode = listView
		return m, nil
	case "ctrl+s":
		fs.syncDraft()
		if errs := fs.draft.Validate(time.Now()); len(errs) > 0 {
			fs.errs = errs
			return m, nil
		}
		fs.errs = nil
		fs.saving = true
		return m, m.submitCmd(fs.draft)
	case "tab", "down":
		m.moveFocus(1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, textinput.Blink
	}

	switch fs.focus {
	case focusStatus:
		switch msg.String() {
		case "left", "h":
			fs.draft.SetStatus(cycleStatus(fs.draft.Status, -1))
		case "right", "l", " ":
			fs.draft.SetStatus(cycleStatus(fs.draft.Status, 1))
		}
		// Status change may have cleared the interview fields.
		fs.inputs[fieldInterviewTime].SetValue(fs.draft.InterviewTime)
		return m, nil

	case focusNotifications:
		if msg.String() == " " || msg.String() == "enter" {
			fs.draft.SetEmailNotifications(!fs.draft.EmailNotifications)
		}
		return m, nil
	}

	if fs.focus == fieldResumePath {
		switch msg.String() {
		case "enter":
			m.attachFromPath(fs)
			return m, nil
		case "ctrl+r":
			fs.draft.RemoveFile()
			fs.attachErr = ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	fs.syncDraft()
	// Live validation on every field change.
	fs.errs = fs.draft.Validate(time.Now())
	return m, cmd
}

// attachFromPath stages the file named in the resume input, reporting
// constraint violations next to the field without touching the draft.
func (m Model) attachFromPath(fs *formState) {
	path := strings.TrimSpace(fs.inputs[fieldResumePath].Value())
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fs.attachErr = "Cannot read file"
		return
	}
	if err := fs.draft.AttachFile(filepath.Base(path), data); err != nil {
		fs.attachErr = err.Error()
		return
	}
	fs.attachErr = ""
	if n, err := form.PageCount(data); err == nil {
		fs.attachErr = fmt.Sprintf("%d page(s)", n)
	}
}

// moveFocus advances the focus, skipping fields the current status disables.
func (m *Model) moveFocus(dir int) {
	fs := m.formState
	for i := 0; i < focusSlots; i++ {
		fs.focus = (fs.focus + dir + focusSlots) % focusSlots
		if fs.focus == fieldInterviewTime && !fs.interviewFieldsActive() {
			continue
		}
		if fs.focus == focusNotifications &&
			(!fs.interviewFieldsActive() || !fs.draft.NotificationsEnabled()) {
			continue
		}
		break
	}
	for i := range fs.inputs {
		if i == fs.focus {
			fs.inputs[i].Focus()
		} else {
			fs.inputs[i].Blur()
		}
	}
}

func nextSortKey(k dashboard.SortKey) dashboard.SortKey {
	order := []dashboard.SortKey{
		dashboard.SortByDateApplied,
		dashboard.SortByCompany,
		dashboard.SortByPosition,
		dashboard.SortByStatus,
	}
	for i, cur := range order {
		if cur == k {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func nextStatusFilter(cur string) string {
	options := []string{dashboard.StatusFilterAll}
	for _, s := range domain.Statuses {
		options = append(options, string(s))
	}
	for i, o := range options {
		if o == cur {
			return options[(i+1)%len(options)]
		}
	}
	return dashboard.StatusFilterAll
}

func cycleStatus(cur domain.Status, dir int) domain.Status {
	for i, s := range domain.Statuses {
		if s == cur {
			n := len(domain.Statuses)
			return domain.Statuses[(i+dir+n)%n]
		}
	}
	return domain.StatusApplied
}
