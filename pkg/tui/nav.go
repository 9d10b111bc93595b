package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const goalRoutePrefix = "goal/"

// GoalRoute returns the route of a goal's detail screen.
func GoalRoute(id string) string {
	return goalRoutePrefix + id
}

// ParseGoalRoute extracts the goal ID from a detail route.
func ParseGoalRoute(route string) (string, bool) {
	id, ok := strings.CutPrefix(route, goalRoutePrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// NavigateMsg asks the model to show the screen for Route.
type NavigateMsg struct {
	Route string
}

// Navigator opens a goal's detail screen.
type Navigator interface {
	NavigateToGoal(id string) tea.Cmd
}

// RouteNavigator navigates by emitting a NavigateMsg for the goal's route.
type RouteNavigator struct{}

// NavigateToGoal implements Navigator.
func (RouteNavigator) NavigateToGoal(id string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: GoalRoute(id)}
	}
}
