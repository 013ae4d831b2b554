package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Social Network Analyzer"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case dashboardView:
		s.WriteString(m.renderDashboard())
	case peopleView:
		s.WriteString(m.renderPeople())
	case suggestView:
		s.WriteString(m.renderSuggest())
	case communitiesView:
		s.WriteString(m.renderCommunities())
	case betweennessView:
		s.WriteString(m.renderBetweenness())
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	rendered := make([]string, 0, len(tabNames))
	for i, tab := range tabNames {
		if view(i) == m.currentView {
			rendered = append(rendered, activeTabStyle.Render(tab))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m model) renderDashboard() string {
	uptime := time.Since(m.startTime).Round(time.Second)

	statsContent := fmt.Sprintf(`Network
━━━━━━━━━━━━━━━
People:        %d
Friendships:   %d
Avg clustering %.3f
Uptime:        %s`,
		m.stats.People,
		m.stats.Friendships,
		m.stats.AverageClustering,
		uptime,
	)

	degreeContent := "Most connected\n━━━━━━━━━━━━━━━\n" + m.topDegrees(5)

	return contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		statsBoxStyle.Render(statsContent),
		statsBoxStyle.Render(degreeContent),
	))
}

// topDegrees lists the n highest-degree people, lowest id first on ties.
func (m model) topDegrees(n int) string {
	ids := make([]int, 0, len(m.stats.Degrees))
	for id := range m.stats.Degrees {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b int) int {
		if d := m.stats.Degrees[b] - m.stats.Degrees[a]; d != 0 {
			return d
		}
		return a - b
	})
	if len(ids) > n {
		ids = ids[:n]
	}
	if len(ids) == 0 {
		return "No people loaded"
	}

	var s strings.Builder
	for i, id := range ids {
		fmt.Fprintf(&s, "%d. person %-6d %s %d\n", i+1, id, strings.Repeat("█", min(m.stats.Degrees[id], 20)), m.stats.Degrees[id])
	}
	return strings.TrimRight(s.String(), "\n")
}

func (m model) renderPeople() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("People"))
	s.WriteString("\n\n")
	s.WriteString(m.peopleTable.View())
	return contentStyle.Render(s.String())
}

func (m model) renderSuggest() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Friend Suggestions"))
	s.WriteString("\n\n")
	fmt.Fprintf(&s, "Mode: %s (press m to change)\n\n", m.mode)
	s.WriteString(m.input.View())

	if m.suggestions != nil {
		s.WriteString("\n\n")
		fmt.Fprintf(&s, "Suggested friends for person %d: %s", m.suggestedID, joinInts(m.suggestions))
	}
	return contentStyle.Render(s.String())
}

func (m model) renderCommunities() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Girvan-Newman Communities"))
	s.WriteString("\n\n")
	s.WriteString(m.input.View())

	if m.communities != nil {
		var body strings.Builder
		fmt.Fprintf(&body, "Communities: %d   Modularity: %.4f\n", len(m.communities.Communities), m.communities.Modularity)
		if len(m.communities.RemovedEdges) > 0 {
			removed := make([]string, len(m.communities.RemovedEdges))
			for i, e := range m.communities.RemovedEdges {
				removed[i] = e.String()
			}
			fmt.Fprintf(&body, "Removed: %s\n", strings.Join(removed, ", "))
		}
		body.WriteString("\n")
		for i, c := range m.communities.Communities {
			fmt.Fprintf(&body, "%d. [%d people, density %.2f] %s\n", i+1, c.Size, c.Density, joinInts(c.Members))
		}
		s.WriteString("\n\n")
		s.WriteString(communityBoxStyle.Render(strings.TrimRight(body.String(), "\n")))
	}
	return contentStyle.Render(s.String())
}

func (m model) renderBetweenness() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Edge Betweenness"))
	s.WriteString("\n\n")
	s.WriteString(m.edgeTable.View())
	return contentStyle.Render(s.String())
}

func joinInts(ids []int) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}
