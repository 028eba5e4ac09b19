package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JavaBootcampJuly2025/InterviewFlow-Front/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	badgeStyle    = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// statusColor mirrors the web dashboard's badge palette: blue for applied,
// yellow for the interview stages, green for offer/accepted, red for
// rejected, gray for withdrawn.
func statusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusApplied:
		return lipgloss.Color("33")
	case domain.StatusHRScreen, domain.StatusTechnicalInterview, domain.StatusFinalInterview:
		return lipgloss.Color("178")
	case domain.StatusOffered, domain.StatusAccepted:
		return lipgloss.Color("35")
	case domain.StatusRejected:
		return lipgloss.Color("160")
	default:
		return lipgloss.Color("245")
	}
}

func statusBadge(s domain.Status) string {
	return badgeStyle.Foreground(statusColor(s)).Render(s.Label())
}

func (m Model) View() string {
	switch m.mode {
	case formView:
		return m.viewForm()
	case statsView:
		return m.viewStats()
	case confirmDeleteView:
		return m.viewList() + "\n" +
			errStyle.Render("Delete this application? (y/n)")
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("InterviewFlow — " + m.user.UserName))
	b.WriteString("\n\n")

	if m.vm.IsLoading() {
		b.WriteString(m.spinner.View() + " Loading applications…\n")
	}
	if msg := m.vm.ErrMsg(); msg != "" {
		b.WriteString(errStyle.Render(msg) + "\n")
	}
	if m.vm.Stale() {
		b.WriteString(warnStyle.Render("Showing offline snapshot — backend unreachable") + "\n")
	}
	if m.warning != "" {
		b.WriteString(warnStyle.Render(m.warning) + "\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}

	b.WriteString(m.search.View() + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("filter:%s  sort:%s %s",
		m.statusFilter, m.sortKey, directionGlyph(m.sortDesc))) + "\n\n")

	projected := m.vm.Project(m.query())
	if len(projected) == 0 && !m.vm.IsLoading() {
		b.WriteString(dimStyle.Render("No applications found.") + "\n")
	}
	for i, rec := range projected {
		line := fmt.Sprintf("%-28s %-24s %-12s %s",
			truncate(rec.Position, 28),
			truncate(rec.Company, 24),
			rec.DateApplied.Format("2006-01-02"),
			statusBadge(rec.Status))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		if i == m.cursor {
			b.WriteString(m.viewDetail(rec))
		}
	}

	b.WriteString("\n" + dimStyle.Render(
		"a add · e edit · d delete · / search · f filter · s sort · o order · t stats · v notes · x resume · R reload · q quit"))
	return b.String()
}

func (m Model) viewDetail(rec domain.ApplicationRecord) string {
	var parts []string
	if rec.Location != "" {
		parts = append(parts, rec.Location)
	}
	if rec.CompanyURL != "" {
		parts = append(parts, rec.CompanyURL)
	}
	if rec.CVFileName != "" {
		parts = append(parts, "CV: "+rec.CVFileName)
	}
	if rec.InterviewTime != nil {
		s := "Interview: " + rec.InterviewTime.Format("2006-01-02 15:04")
		if rec.EmailNotifications {
			s += " (reminders on)"
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return ""
	}
	return dimStyle.Render("    "+strings.Join(parts, " · ")) + "\n"
}

func (m Model) viewStats() string {
	s := m.vm.Stats()
	rows := []string{
		fmt.Sprintf("Total applications  %4d", s.Total),
		fmt.Sprintf("Applied             %4d", s.Applied),
		fmt.Sprintf("Interviews          %4d", s.Interviews),
		fmt.Sprintf("Offers              %4d", s.Offers),
		fmt.Sprintf("Rejected            %4d", s.Rejected),
	}
	return titleStyle.Render("Statistics") + "\n\n" +
		panelStyle.Render(strings.Join(rows, "\n")) + "\n\n" +
		dimStyle.Render("press any key to go back")
}

func (m Model) viewForm() string {
	fs := m.formState
	if fs == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fs.title) + "\n\n")

	if fs.saving {
		b.WriteString(m.spinner.View() + " Saving…\n\n")
	}
	if msg, ok := fs.errs["_form"]; ok {
		b.WriteString(errStyle.Render(msg) + "\n\n")
	}

	field := func(idx int, label, errKey string) {
		marker := "  "
		if fs.focus == idx {
			marker = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-18s %s\n", marker, label, fs.inputs[idx].View()))
		if msg, ok := fs.errs[errKey]; ok {
			b.WriteString("    " + errStyle.Render(msg) + "\n")
		}
	}

	field(fieldCompany, "Company *", "company")
	field(fieldPosition, "Position *", "position")
	field(fieldLocation, "Location", "")
	field(fieldCompanyURL, "Company URL", "companyUrl")
	field(fieldApplyDate, "Applied *", "applyDate")

	statusMarker := "  "
	if fs.focus == focusStatus {
		statusMarker = selectedStyle.Render("> ")
	}
	b.WriteString(fmt.Sprintf("%s%-18s ◂ %s ▸\n", statusMarker, "Status *", statusBadge(fs.draft.Status)))

	if fs.interviewFieldsActive() {
		field(fieldInterviewTime, "Interview", "interviewTime")

		toggleMarker := "  "
		if fs.focus == focusNotifications {
			toggleMarker = selectedStyle.Render("> ")
		}
		toggle := "[ ] Email reminders"
		if fs.draft.EmailNotifications {
			toggle = "[x] Email reminders"
		}
		if !fs.draft.NotificationsEnabled() {
			toggle = dimStyle.Render(toggle + " (requires interview time)")
		}
		b.WriteString(toggleMarker + toggle + "\n")
	}

	field(fieldResumePath, "Resume (PDF ≤5MiB)", "")
	if fs.attachErr != "" {
		b.WriteString("    " + warnStyle.Render(fs.attachErr) + "\n")
	}
	if name := fs.draft.FileName(); name != "" {
		b.WriteString("    " + noticeStyle.Render("attached: "+name) + dimStyle.Render("  (ctrl+r to remove)") + "\n")
	}
	field(fieldNotes, "Notes", "")

	b.WriteString("\n" + dimStyle.Render("ctrl+s save · esc cancel · tab next field"))
	return b.String()
}

func directionGlyph(desc bool) string {
	if desc {
		return "↓"
	}
	return "↑"
}

// truncate shortens s to at most n runes, never splitting a multibyte rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
