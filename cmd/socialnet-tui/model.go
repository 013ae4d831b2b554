package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dd0wney/cluso-social/pkg/algorithms"
	"github.com/dd0wney/cluso-social/pkg/analysis"
)

type view int

const (
	dashboardView view = iota
	peopleView
	suggestView
	communitiesView
	betweennessView
	viewCount
)

var tabNames = []string{"Dashboard", "People", "Suggest", "Communities", "Betweenness"}

type model struct {
	analyzer          *analysis.Analyzer
	defaultIterations int

	currentView view
	input       textinput.Model
	peopleTable table.Model
	edgeTable   table.Model
	help        help.Model
	keys        keyMap
	width       int
	height      int
	message     string
	messageErr  bool
	startTime   time.Time

	stats       analysis.Stats
	mode        algorithms.SuggestionMode
	suggestedID int
	suggestions []int
	communities *algorithms.CommunityDetectionResult
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func initialModel(a *analysis.Analyzer, defaultIterations int) model {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 20

	m := model{
		analyzer:          a,
		defaultIterations: defaultIterations,
		currentView:       dashboardView,
		input:             ti,
		peopleTable: newTable([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Name", Width: 16},
			{Title: "Age", Width: 5},
			{Title: "Gender", Width: 8},
			{Title: "Occupation", Width: 16},
			{Title: "Degree", Width: 7},
			{Title: "Clustering", Width: 10},
		}),
		edgeTable: newTable([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Friendship", Width: 14},
			{Title: "Betweenness", Width: 12},
		}),
		help:      help.New(),
		keys:      keys,
		startTime: time.Now(),
		mode:      algorithms.SuggestByCommonFriends,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.stats = m.analyzer.Stats()
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.switchView((m.currentView + 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.switchView((m.currentView + viewCount - 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.Mode) && m.currentView == suggestView:
			m.mode = m.mode%algorithms.SuggestByAge + 1
			return m, nil

		case key.Matches(msg, m.keys.Refresh) && !m.input.Focused():
			m.refresh()
			m.setMessage(false, "Refreshed")
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			m.run()
			return m, nil
		}
	}

	switch m.currentView {
	case suggestView, communitiesView:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	case peopleView:
		m.peopleTable, cmd = m.peopleTable.Update(msg)
		cmds = append(cmds, cmd)
	case betweennessView:
		m.edgeTable, cmd = m.edgeTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) switchView(v view) {
	m.currentView = v
	m.message = ""
	m.input.Reset()

	switch v {
	case suggestView:
		m.input.Placeholder = "person id"
		m.input.Focus()
	case communitiesView:
		m.input.Placeholder = fmt.Sprintf("iterations (default %d)", m.defaultIterations)
		m.input.Focus()
	default:
		m.input.Blur()
	}
}

// run executes the action of the current view.
func (m *model) run() {
	switch m.currentView {
	case suggestView:
		id, err := strconv.Atoi(m.input.Value())
		if err != nil {
			m.setMessage(true, "Person id must be an integer")
			return
		}
		m.suggestedID = id
		m.suggestions = m.analyzer.SuggestFriends(id, m.mode)
		if !m.analyzer.PersonExists(id) {
			m.setMessage(true, fmt.Sprintf("No person with id %d", id))
			return
		}
		m.setMessage(false, fmt.Sprintf("%d suggestions for %d by %s", len(m.suggestions), id, m.mode))

	case communitiesView:
		iterations := m.defaultIterations
		if v := m.input.Value(); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				m.setMessage(true, "Iterations must be a non-negative integer")
				return
			}
			iterations = n
		}
		start := time.Now()
		m.communities = m.analyzer.CommunityDetection(iterations)
		m.setMessage(false, fmt.Sprintf("Found %d communities after %d removals in %s",
			len(m.communities.Communities), len(m.communities.RemovedEdges), time.Since(start).Round(time.Microsecond)))

	case betweennessView, peopleView, dashboardView:
		m.refresh()
	}
}

func (m *model) refresh() {
	m.stats = m.analyzer.Stats()

	people := m.analyzer.People()
	rows := make([]table.Row, 0, len(people))
	for _, p := range people {
		rows = append(rows, table.Row{
			strconv.Itoa(p.ID()),
			p.Name(),
			strconv.Itoa(p.Age()),
			p.Gender(),
			p.Occupation(),
			strconv.Itoa(p.Degree()),
			fmt.Sprintf("%.3f", m.analyzer.ClusteringCoefficient(p.ID())),
		})
	}
	m.peopleTable.SetRows(rows)

	ranked := m.analyzer.EdgeBetweenness(0)
	edgeRows := make([]table.Row, 0, len(ranked))
	for i, r := range ranked {
		edgeRows = append(edgeRows, table.Row{
			strconv.Itoa(i + 1),
			r.Edge.String(),
			fmt.Sprintf("%.0f", r.Score),
		})
	}
	m.edgeTable.SetRows(edgeRows)
}

func (m *model) setMessage(isErr bool, msg string) {
	m.message = msg
	m.messageErr = isErr
}
