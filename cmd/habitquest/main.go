package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/stefanpenner/habitquest/pkg/goal"
	"github.com/stefanpenner/habitquest/pkg/store"
	"github.com/stefanpenner/habitquest/pkg/tui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	// .env is optional
	_ = godotenv.Load()

	dataDir, args := getDataDir(args)
	s, err := store.NewStore(dataDir)
	if err != nil {
		return err
	}

	jsonOutput := hasFlag(args, "--json")
	args = removeFlag(args, "--json")

	if len(args) == 0 {
		return runTUI(s)
	}

	c := &cli{store: s, out: out, json: jsonOutput}

	switch args[0] {
	case "list":
		return c.list()
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: habitquest show <goal-id|goal/goal-id>")
		}
		return c.show(args[1])
	case "add":
		return c.add()
	case "template":
		return c.template()
	case "init":
		return c.init()
	default:
		return fmt.Errorf("unknown command: %s\nUsage: habitquest [list|show|add|template|init] [--json] [--dir <path>]", args[0])
	}
}

// getDataDir resolves the data directory from HABITQUEST_DIR, then --dir,
// then the OS default. The --dir flag is removed from args.
func getDataDir(args []string) (string, []string) {
	dir := ""
	var rest []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--dir" && i+1 < len(args) {
			dir = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}

	if env := os.Getenv("HABITQUEST_DIR"); env != "" {
		return env, rest
	}
	if dir != "" {
		return dir, rest
	}
	return store.DefaultDataDir(), rest
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func removeFlag(args []string, flag string) []string {
	var result []string
	for _, a := range args {
		if a != flag {
			result = append(result, a)
		}
	}
	return result
}

func runTUI(s *store.Store) error {
	if os.Getenv("HABITQUEST_DEBUG") != "" {
		if err := os.MkdirAll(s.Root, 0755); err != nil {
			return err
		}
		f, err := tea.LogToFile(filepath.Join(s.Root, "debug.log"), "habitquest")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := tui.NewModel(s, goal.UnavailableRewards{}, tui.RouteNavigator{})
	p := tea.NewProgram(m, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(s.Root, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: template watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	_, err = p.Run()
	return err
}

// CLI Commands

type cli struct {
	store *store.Store
	out   io.Writer
	json  bool
}

func (c *cli) list() error {
	goals := c.store.ListGoals()

	if c.json {
		return c.outputJSON(goalsToMap(goals))
	}

	for _, g := range goals {
		fmt.Fprintf(c.out, "%s %-40s %3.0f%%  next: %s\n", g.ID, g.Title, g.Progress*100, g.NextStep())
	}
	return nil
}

func (c *cli) show(ref string) error {
	id := ref
	if routeID, ok := tui.ParseGoalRoute(ref); ok {
		id = routeID
	}

	g, err := c.store.GetGoal(id)
	if errors.Is(err, store.ErrGoalNotFound) {
		return fmt.Errorf("goal %s not found", id)
	}
	if err != nil {
		return err
	}

	if c.json {
		return c.outputJSON(goalToMap(g))
	}

	c.printGoal(g)
	return nil
}

func (c *cli) add() error {
	g, err := c.store.AddDemoGoal()
	if err != nil {
		return err
	}

	if c.json {
		return c.outputJSON(goalToMap(g))
	}

	fmt.Fprintf(c.out, "Created: %s\n", tui.GoalRoute(g.ID))
	c.printGoal(g)
	return nil
}

func (c *cli) template() error {
	t := c.store.Template()

	if c.json {
		return c.outputJSON(map[string]interface{}{
			"title":      t.Title,
			"milestones": t.Milestones,
			"body":       t.Body,
			"path":       t.FilePath,
		})
	}

	content, err := store.SerializeTemplate(t)
	if err != nil {
		return err
	}
	if t.FilePath == "" {
		fmt.Fprintln(c.out, "# built-in template (run 'habitquest init' to write it to disk)")
	}
	fmt.Fprint(c.out, content)
	return nil
}

func (c *cli) init() error {
	path := c.store.TemplatePath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("template %s already exists", path)
	}

	t := store.DefaultTemplate()
	if err := c.store.SaveTemplate(t); err != nil {
		return err
	}

	if c.json {
		return c.outputJSON(map[string]string{"created": path})
	}

	fmt.Fprintf(c.out, "Created: %s\n", path)
	return nil
}

func (c *cli) printGoal(g goal.Goal) {
	fmt.Fprintf(c.out, "%s (%s)\n", g.Title, g.ID)
	fmt.Fprintf(c.out, "Progress: %.0f%%\n", g.Progress*100)
	fmt.Fprintf(c.out, "Next step: %s\n", g.NextStep())
	if g.Description != "" {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, g.Description)
	}
	fmt.Fprintln(c.out)
	for _, m := range g.Milestones() {
		icon := tui.IconLocked
		switch m.State {
		case goal.StateReached:
			icon = tui.IconReached
		case goal.StateActive:
			icon = tui.IconActive
		}
		fmt.Fprintf(c.out, "%s %d. %s: %s [%s]\n", icon, m.Index, m.Title, m.Subtitle, goal.ActionLabel(m))
	}
}

// JSON helpers

func (c *cli) outputJSON(v interface{}) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func goalToMap(g goal.Goal) map[string]interface{} {
	var milestones []map[string]interface{}
	for _, m := range g.Milestones() {
		milestones = append(milestones, map[string]interface{}{
			"id":            m.ID,
			"index":         m.Index,
			"title":         m.Title,
			"subtitle":      m.Subtitle,
			"state":         string(m.State),
			"actionEnabled": goal.IsActionEnabled(m),
		})
	}
	return map[string]interface{}{
		"id":          g.ID,
		"route":       tui.GoalRoute(g.ID),
		"title":       g.Title,
		"description": g.Description,
		"progress":    g.Progress,
		"nextStep":    g.NextStep(),
		"milestones":  milestones,
	}
}

func goalsToMap(goals []goal.Goal) []map[string]interface{} {
	var result []map[string]interface{}
	for _, g := range goals {
		result = append(result, goalToMap(g))
	}
	return result
}
