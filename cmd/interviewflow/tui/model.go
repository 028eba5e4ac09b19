// Package tui is the interactive dashboard: the application list with
// search/filter/sort, the stats panel, and the add/edit form. It is split
// across three files:
//   - model.go: types, construction, Init
//   - update.go: the event loop and remote-call commands
//   - view.go: rendering
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/client"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/dashboard"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/form"
	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/session"
)

// viewMode determines which screen is focused.
type viewMode int

const (
	listView viewMode = iota
	formView
	statsView
	confirmDeleteView
)

// Model is the bubbletea root model.
type Model struct {
	vm      *dashboard.ViewModel
	apps    *client.Applications
	resumes *client.Resumes
	notes   *client.Notes
	user    session.User
	log     *zap.Logger

	mode    viewMode
	width   int
	height  int
	spinner spinner.Model
	search  textinput.Model

	// List state. statusFilter cycles through "all" plus each status code;
	// sort state maps straight onto dashboard.Query.
	cursor       int
	statusFilter string
	sortKey      dashboard.SortKey
	sortDesc     bool

	// One draft at a time.
	formState *formState

	pendingDelete string // record id awaiting yes/no
	warning       string // non-fatal submit warnings
	notice        string // transient info line (downloads etc.)
}

// formState wraps the form.Draft with the input widgets that edit it.
type formState struct {
	draft  *form.Draft
	title  string
	inputs []textinput.Model // indexed by the field* constants
	focus  int
	errs   form.FieldErrors
	// saving freezes the form from the moment the submit command is
	// dispatched until its message settles; set and cleared on the event
	// loop, unlike the draft's own in-flight guard.
	saving bool
	// attachErr is the selection-time attachment error, shown next to the
	// resume field without blocking the rest of the form.
	attachErr string
}

// Field indexes into formState.inputs. Status and the notifications toggle
// are not text inputs; they occupy focus slots after the last input.
const (
	fieldCompany = iota
	fieldPosition
	fieldLocation
	fieldCompanyURL
	fieldApplyDate
	fieldInterviewTime
	fieldResumePath
	fieldNotes
	fieldCount

	focusStatus        = fieldCount // left/right cycles the status
	focusNotifications = fieldCount + 1
	focusSlots         = fieldCount + 2
)

// New wires the dashboard against the signed-in user.
func New(vm *dashboard.ViewModel, api *client.Client, user session.User, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	search := textinput.New()
	search.Placeholder = "Search position, company, location…"
	search.Prompt = "/ "
	search.CharLimit = 80

	return Model{
		vm:           vm,
		apps:         api.Applications(),
		resumes:      api.Resumes(),
		notes:        api.Notes(),
		user:         user,
		log:          log,
		spinner:      sp,
		search:       search,
		statusFilter: dashboard.StatusFilterAll,
		sortKey:      dashboard.SortByDateApplied,
		sortDesc:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// query assembles the current projection inputs.
func (m Model) query() dashboard.Query {
	dir := dashboard.Ascending
	if m.sortDesc {
		dir = dashboard.Descending
	}
	return dashboard.Query{
		Search:    m.search.Value(),
		Status:    m.statusFilter,
		SortKey:   m.sortKey,
		Direction: dir,
	}
}

func newFormState(draft *form.Draft, title string) *formState {
	fs := &formState{draft: draft, title: title, inputs: make([]textinput.Model, fieldCount)}
	mk := func(placeholder, value string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		in.SetValue(value)
		return in
	}
	fs.inputs[fieldCompany] = mk("Company name", draft.Company)
	fs.inputs[fieldPosition] = mk("Job title", draft.Position)
	fs.inputs[fieldLocation] = mk("City, State", draft.Location)
	fs.inputs[fieldCompanyURL] = mk("https://company.com/careers", draft.CompanyURL)
	fs.inputs[fieldApplyDate] = mk("2025-01-15T09:00", draft.ApplyDate)
	fs.inputs[fieldInterviewTime] = mk("2025-01-20T14:00", draft.InterviewTime)
	fs.inputs[fieldResumePath] = mk("path/to/resume.pdf", "")
	fs.inputs[fieldNotes] = mk("Notes", draft.Notes)
	fs.inputs[0].Focus()
	return fs
}

// syncDraft copies the text inputs back into the draft through its setters,
// so the field-activation rules run on every keystroke.
func (fs *formState) syncDraft() {
	fs.draft.Company = fs.inputs[fieldCompany].Value()
	fs.draft.Position = fs.inputs[fieldPosition].Value()
	fs.draft.Location = fs.inputs[fieldLocation].Value()
	fs.draft.CompanyURL = fs.inputs[fieldCompanyURL].Value()
	fs.draft.ApplyDate = fs.inputs[fieldApplyDate].Value()
	fs.draft.SetInterviewTime(fs.inputs[fieldInterviewTime].Value())
	fs.draft.Notes = fs.inputs[fieldNotes].Value()
}

// interviewFieldsActive mirrors draft state for rendering: the interview
// inputs only appear for interview-stage statuses.
func (fs *formState) interviewFieldsActive() bool {
	return domain.IsInterviewStage(fs.draft.Status)
}
