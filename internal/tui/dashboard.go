package tui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-visit-feedback/internal/service"
	"github.com/MKhiriev/go-visit-feedback/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// loadSeq numbers dashboard loads process-wide, so a load started by a page
// that was left never matches a newer page.
var loadSeq atomic.Uint64

var _ discarder = (*DashboardModel)(nil)

// CopyFunc writes text to the system clipboard.
type CopyFunc func(text string) error

type dashboardTab int

const (
	tabFeedback dashboardTab = iota
	tabCustomers
	tabArchive
	tabCount
)

func (t dashboardTab) title() string {
	switch t {
	case tabCustomers:
		return "Customers"
	case tabArchive:
		return "Archive"
	default:
		return "Feedback"
	}
}

// DashboardModel shows customers, feedback and archive records read-only,
// one tab each. Only the latest load is applied.
type DashboardModel struct {
	ctx       context.Context
	dashboard service.DashboardService
	copy      CopyFunc

	data    models.Dashboard
	loading bool
	seq     uint64
	overlay *errorOverlayModel

	tab     dashboardTab
	cursor  [tabCount]int
	detail  bool
	status  string
	spinner spinner.Model
}

func NewDashboardModel(ctx context.Context, dashboard service.DashboardService, copyFn CopyFunc) *DashboardModel {
	return &DashboardModel{
		ctx:       ctx,
		dashboard: dashboard,
		copy:      copyFn,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.load()
}

// Discard drops the pending load; its result will be ignored.
func (m *DashboardModel) Discard() {
	m.seq = 0
}

func (m *DashboardModel) load() tea.Cmd {
	m.seq = loadSeq.Add(1)
	m.loading = true
	m.overlay = nil

	seq := m.seq
	ctx := m.ctx
	dashboard := m.dashboard

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		data, err := dashboard.Load(ctx)
		return dashboardLoadedMsg{seq: seq, dashboard: data, err: err}
	})
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if m.seq == 0 || msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{
				message: humanizeServerUnavailableError(msg.err),
				hotKeys: "r: retry │ esc: back",
			}
			return m, nil
		}
		m.data = msg.dashboard
		for t := range tabCount {
			if n := m.rows(t); m.cursor[t] >= n {
				m.cursor[t] = max(n-1, 0)
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		if m.detail {
			m.detail = false
			return m, nil
		}
		return m, navigate(pageMenu, nil)
	}
	if key.Matches(msg, keys.reload) {
		return m, m.load()
	}
	if m.loading || m.overlay != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab, keys.right):
		if !m.detail {
			m.tab = (m.tab + 1) % tabCount
		}
	case key.Matches(msg, keys.backtab, keys.left):
		if !m.detail {
			m.tab = (m.tab + tabCount - 1) % tabCount
		}
	case key.Matches(msg, keys.up):
		if !m.detail && m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
	case key.Matches(msg, keys.down):
		if !m.detail && m.cursor[m.tab] < m.rows(m.tab)-1 {
			m.cursor[m.tab]++
		}
	case key.Matches(msg, keys.enter):
		if m.rows(m.tab) > 0 {
			m.detail = !m.detail
		}
	case key.Matches(msg, keys.copy):
		return m, m.copySelected()
	}
	return m, nil
}

func (m *DashboardModel) rows(t dashboardTab) int {
	switch t {
	case tabCustomers:
		return len(m.data.Customers)
	case tabArchive:
		return len(m.data.Archived)
	default:
		return len(m.data.Feedback)
	}
}

func (m *DashboardModel) selectedFeedback() (models.FeedbackRecord, bool) {
	i := m.cursor[tabFeedback]
	if i < 0 || i >= len(m.data.Feedback) {
		return models.FeedbackRecord{}, false
	}
	return m.data.Feedback[i], true
}

func (m *DashboardModel) selectedCustomer() (models.CustomerRecord, bool) {
	i := m.cursor[tabCustomers]
	if i < 0 || i >= len(m.data.Customers) {
		return models.CustomerRecord{}, false
	}
	return m.data.Customers[i], true
}

func (m *DashboardModel) selectedArchive() (models.ArchivedFeedback, bool) {
	i := m.cursor[tabArchive]
	if i < 0 || i >= len(m.data.Archived) {
		return models.ArchivedFeedback{}, false
	}
	return m.data.Archived[i], true
}

// copyText is what c copies on the active tab: the summary of a feedback or
// archive record (its text when no summary was produced), or a customer's
// email.
func (m *DashboardModel) copyText() (string, bool) {
	summaryOr := func(summary, text string) string {
		if strings.TrimSpace(summary) == "" {
			return text
		}
		return summary
	}

	switch m.tab {
	case tabCustomers:
		c, ok := m.selectedCustomer()
		return c.Email, ok && c.Email != ""
	case tabArchive:
		a, ok := m.selectedArchive()
		return summaryOr(a.Feedback.GPTSummary, a.Feedback.TextualFeedback), ok
	default:
		rec, ok := m.selectedFeedback()
		return summaryOr(rec.GPTSummary, rec.TextualFeedback), ok
	}
}

func (m *DashboardModel) copySelected() tea.Cmd {
	text, ok := m.copyText()
	if !ok || m.copy == nil {
		return nil
	}
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func (m *DashboardModel) customerName(id string) string {
	if c, ok := m.data.CustomerByID(id); ok {
		return c.Name
	}
	return "-"
}

func (m *DashboardModel) View() string {
	if m.loading {
		return renderPage("DASHBOARD", m.spinner.View()+" Loading dashboard...", "esc: back")
	}
	if m.overlay != nil {
		return renderPage("DASHBOARD", m.overlay.View(), "r: retry │ esc: back")
	}
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Customers: %d │ Feedback: %d │ Archived: %d\n\n",
		len(m.data.Customers), len(m.data.Feedback), len(m.data.Archived)))
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabCustomers:
		m.viewCustomers(&b)
	case tabArchive:
		m.viewArchive(&b)
	default:
		m.viewFeedback(&b)
	}

	m.viewStatus(&b)

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"tab/←/→: switch table │ ↑/↓: navigate │ enter: details │ c: copy │ r: reload │ esc: back")
}

func (m *DashboardModel) viewTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := range tabCount {
		if t == m.tab {
			tabs = append(tabs, titleStyle.Render("["+t.title()+"]"))
			continue
		}
		tabs = append(tabs, " "+t.title()+" ")
	}
	return strings.Join(tabs, " ")
}

func (m *DashboardModel) cursorMark(i int) string {
	if i == m.cursor[m.tab] {
		return ">"
	}
	return " "
}

func tableRule(widths ...int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return "──" + strings.Join(parts, "─┼─") + "\n"
}

func (m *DashboardModel) viewFeedback(b *strings.Builder) {
	if len(m.data.Feedback) == 0 {
		b.WriteString("No feedback yet\n")
		return
	}
	b.WriteString(fmt.Sprintf("  %-20s │ %-5s │ %-9s │ %s\n", "Customer", "Stars", "Sentiment", "Feedback"))
	b.WriteString(tableRule(20, 5, 9, 30))
	for i, rec := range m.data.Feedback {
		b.WriteString(fmt.Sprintf("%s %-20s │ %-5s │ %-9s │ %s\n",
			m.cursorMark(i),
			fitText(m.customerName(rec.CustomerID), 20),
			stars(rec.StarRating),
			fitText(valueOrDash(rec.Sentiment), 9),
			fitText(rec.TextualFeedback, 30),
		))
	}
}

func (m *DashboardModel) viewCustomers(b *strings.Builder) {
	if len(m.data.Customers) == 0 {
		b.WriteString("No customers yet\n")
		return
	}
	b.WriteString(fmt.Sprintf("  %-20s │ %-24s │ %-16s │ %s\n", "Name", "Email", "Branch", "Purpose"))
	b.WriteString(tableRule(20, 24, 16, 20))
	for i, c := range m.data.Customers {
		b.WriteString(fmt.Sprintf("%s %-20s │ %-24s │ %-16s │ %s\n",
			m.cursorMark(i),
			fitText(valueOrDash(c.Name), 20),
			fitText(valueOrDash(c.Email), 24),
			fitText(valueOrDash(c.BranchName), 16),
			fitText(valueOrDash(c.PurposeOfVisit), 20),
		))
	}
}

func (m *DashboardModel) viewArchive(b *strings.Builder) {
	if len(m.data.Archived) == 0 {
		b.WriteString("No archived records yet\n")
		return
	}
	b.WriteString(fmt.Sprintf("  %-20s │ %-5s │ %-20s │ %s\n", "Customer", "Stars", "Submitted", "Feedback ID"))
	b.WriteString(tableRule(20, 5, 20, 20))
	for i, a := range m.data.Archived {
		b.WriteString(fmt.Sprintf("%s %-20s │ %-5s │ %-20s │ %s\n",
			m.cursorMark(i),
			fitText(valueOrDash(a.CustomerData.Name), 20),
			stars(a.Feedback.StarRating),
			fitText(valueOrDash(a.Metadata.SubmissionTime), 20),
			fitText(valueOrDash(a.FeedbackID), 20),
		))
	}
}

func (m *DashboardModel) viewStatus(b *strings.Builder) {
	if m.status == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
}

func (m *DashboardModel) viewDetail() string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%-16s │ %s\n", label, valueOrDash(value)))
	}

	title := "FEEDBACK DETAIL"
	switch m.tab {
	case tabCustomers:
		title = "CUSTOMER DETAIL"
		c, _ := m.selectedCustomer()
		row("Name", c.Name)
		row("Email", c.Email)
		row("Mobile", c.Mobile)
		row("Email consent", yesNo(c.EmailConsent))
		row("Purpose", c.PurposeOfVisit)
		row("Branch ID", c.BranchID)
		row("Branch", c.BranchName)
		row("Staff", c.StaffName)
		row("Registered", c.CreatedAt)

	case tabArchive:
		title = "ARCHIVE DETAIL"
		a, _ := m.selectedArchive()
		row("Feedback ID", a.FeedbackID)
		row("Customer", a.CustomerData.Name)
		row("Email", a.CustomerData.Email)
		row("Purpose", a.CustomerData.PurposeOfVisit)
		row("Branch", a.CustomerData.BranchName)
		row("Staff", a.CustomerData.StaffName)
		row("Rating", fmt.Sprintf("%s %d/5", stars(a.Feedback.StarRating), a.Feedback.StarRating))
		row("Sentiment", a.Feedback.Sentiment)
		row("Summary", a.Feedback.GPTSummary)
		row("Feedback", a.Feedback.TextualFeedback)
		row("Submitted", a.Metadata.SubmissionTime)
		row("Survey token", a.Metadata.SurveyToken)

	default:
		rec, _ := m.selectedFeedback()
		customer, _ := m.data.CustomerByID(rec.CustomerID)
		row("Customer", customer.Name)
		row("Email", customer.Email)
		row("Purpose", customer.PurposeOfVisit)
		row("Branch", customer.BranchName)
		row("Staff", customer.StaffName)
		row("Rating", fmt.Sprintf("%s %d/5", stars(rec.StarRating), rec.StarRating))
		row("Sentiment", rec.Sentiment)
		row("Summary", rec.GPTSummary)
		row("Feedback", rec.TextualFeedback)
		row("Submitted", rec.CreatedAt)
		if archive, ok := m.data.ArchiveFor(rec.ID); ok {
			row("Archived at", archive.Metadata.SubmissionTime)
		}
		row("Blob path", rec.AzureFilePath)
	}

	m.viewStatus(&b)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "c: copy │ enter / esc: back")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
