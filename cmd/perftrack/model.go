package main

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/session"
)

const logo = `
	██████╗ ███████╗██████╗ ███████╗████████╗██████╗  █████╗  ██████╗██╗  ██╗
	██╔══██╗██╔════╝██╔══██╗██╔════╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝
	██████╔╝█████╗  ██████╔╝█████╗     ██║   ██████╔╝███████║██║     █████╔╝
	██╔═══╝ ██╔══╝  ██╔══██╗██╔══╝     ██║   ██╔══██╗██╔══██║██║     ██╔═██╗
	██║     ███████╗██║  ██║██║        ██║   ██║  ██║██║  ██║╚██████╗██║  ██╗
	╚═╝     ╚══════╝╚═╝  ╚═╝╚═╝        ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝`

const commandHelp = `COMMANDS:
  /v <grid|stats|tasks|log>: switch view
  /m <yyyy-mm>: set grid month

  /t <name> [@category] [!low|medium|high|critical] [goal]: add task
  /done <n>: toggle task completed
  /rm <n>: delete task

  /l <n> <minutes> [note]: log activity for task n today
  /rml <n>: delete activity n (log view order)
  /c <n> [yyyy-mm-dd]: toggle habit completion (default today)

  /cat <name> [#hexcolor]: add category
  /rmcat <name>: delete category
  /email <address>: set notification email
  /remind: toggle weekly reminder emails
  /report: toggle weekly report emails
`

type view int

const (
	viewGrid view = iota
	viewStats
	viewTasks
	viewLog
)

type model struct {
	// children
	vp        viewport.Model
	userinput textinput.Model

	// supplied
	l    perftrack.Logger
	sess *session.Session

	// state
	view     view
	month    time.Time
	alerts   []string
	quitting bool
	h        int

	// configuration
	cmdTimeout time.Duration
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var tiCmd, vpCmd, cmd tea.Cmd

	m, cmd = m.updateParent(msg)

	// update children

	m.userinput, tiCmd = m.userinput.Update(msg)

	switch msg.(type) {
	case tea.KeyMsg:
		// vp updates on KeyMsg was causing a view flickering bug
	default:
		m.vp, vpCmd = m.vp.Update(msg)
	}

	return m, tea.Batch(tiCmd, vpCmd, cmd)
}

func (m model) updateParent(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		m.addAlert(msg.err.Error(), colorRed)
		m.refreshContent()
		return m, nil
	case RefreshMsg:
		m.refreshContent()
		return m, nil
	case tea.WindowSizeMsg:
		m.h = msg.Height
		m.userinput.Width = msg.Width
		m.vp.Width = msg.Width
		m.refreshContent()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			input := m.userinput.Value()
			m.userinput.Reset()
			if input == "" {
				return m, nil
			}

			var cmd tea.Cmd
			m.alerts = nil
			m, cmd = m.handleInput(input)
			m.refreshContent()
			return m, cmd
		case tea.KeyTab:
			m.view = (m.view + 1) % 4
			m.refreshContent()
			return m, nil
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *model) refreshContent() {
	m.vp.SetContent(m.renderView())
	vh := lipgloss.Height(m.renderView())
	fh := lipgloss.Height(m.renderFooter())
	m.vp.Height = min(vh, m.h-fh)
}

func (m model) renderFooter() string {
	if m.quitting {
		return ""
	}

	var footer strings.Builder
	footer.WriteRune('\n')
	footer.WriteString(m.userinput.View())
	footer.WriteString("\n\n")

	if len(m.alerts) > 0 {
		footer.WriteString(strings.Join(m.alerts, "\n"))
		footer.WriteString("\n\n")
	} else {
		footer.WriteString(faintStyle.Render("(tab to switch view, ctrl+c to quit)"))
		footer.WriteRune('\n')
	}

	return footer.String()
}

func (m model) View() string {
	return lipgloss.JoinVertical(0, m.vp.View(), m.renderFooter())
}

func (m model) newTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cmdTimeout)
}

func (m *model) addAlert(alert string, c string) {
	m.alerts = append(m.alerts, colorize(c, alert))
}

// displayTasks returns the session's tasks in display order: priority
// descending, stable within a priority.
func (m model) displayTasks() []perftrack.Task {
	tasks := make([]perftrack.Task, len(m.sess.Tasks()))
	copy(tasks, m.sess.Tasks())
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority > tasks[j].Priority
	})
	return tasks
}

// taskAt resolves a 1-based display index.
func (m model) taskAt(arg string) (perftrack.Task, bool) {
	n, err := strconv.Atoi(arg)
	tasks := m.displayTasks()
	if err != nil || n < 1 || n > len(tasks) {
		return perftrack.Task{}, false
	}
	return tasks[n-1], true
}

// displayActivities returns the session's activities newest first, the
// order the log view shows them in.
func (m model) displayActivities() []perftrack.ActivityLog {
	activities := m.sess.Activities()
	out := make([]perftrack.ActivityLog, 0, len(activities))
	for i := len(activities) - 1; i >= 0; i-- {
		out = append(out, activities[i])
	}
	return out
}

// activityAt resolves a 1-based display index.
func (m model) activityAt(arg string) (perftrack.ActivityLog, bool) {
	n, err := strconv.Atoi(arg)
	activities := m.displayActivities()
	if err != nil || n < 1 || n > len(activities) {
		return perftrack.ActivityLog{}, false
	}
	return activities[n-1], true
}

func (m model) handleInput(input string) (model, tea.Cmd) {
	if !strings.HasPrefix(input, "/") {
		m.addAlert(`enter "/h" for help`, colorYellow)
		return m, nil
	}

	parts := strings.SplitN(input, " ", 2)
	var arg string
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch parts[0] {
	case "/h":
		m.addAlert(commandHelp, colorYellow)
		return m, nil
	case "/v":
		switch arg {
		case "grid":
			m.view = viewGrid
		case "stats":
			m.view = viewStats
		case "tasks":
			m.view = viewTasks
		case "log":
			m.view = viewLog
		default:
			m.addAlert("usage: /v <grid|stats|tasks|log>", colorYellow)
		}
		return m, nil
	case "/m":
		month, err := time.ParseInLocation("2006-01", arg, time.Local)
		if err != nil {
			m.addAlert("usage: /m <yyyy-mm>", colorYellow)
			return m, nil
		}
		m.month = month
		return m, nil
	case "/t":
		return m.addTask(arg)
	case "/done":
		t, ok := m.taskAt(arg)
		if !ok {
			m.addAlert("usage: /done <n>", colorYellow)
			return m, nil
		}
		return m, m.run(func(ctx context.Context) error {
			_, err := m.sess.ToggleTask(ctx, t.ID)
			return err
		})
	case "/rm":
		t, ok := m.taskAt(arg)
		if !ok {
			m.addAlert("usage: /rm <n>", colorYellow)
			return m, nil
		}
		return m, m.run(func(ctx context.Context) error {
			return m.sess.DeleteTask(ctx, t.ID)
		})
	case "/l":
		return m.logActivity(arg)
	case "/rml":
		a, ok := m.activityAt(arg)
		if !ok {
			m.addAlert("usage: /rml <n>", colorYellow)
			return m, nil
		}
		return m, m.run(func(ctx context.Context) error {
			return m.sess.DeleteActivity(ctx, a.ID)
		})
	case "/c":
		return m.toggleCompletion(arg)
	case "/cat":
		return m.addCategory(arg)
	case "/rmcat":
		return m.deleteCategory(arg)
	case "/email":
		settings := m.sess.Settings()
		settings.Email = arg
		return m, m.run(func(ctx context.Context) error {
			return m.sess.UpdateSettings(ctx, settings)
		})
	case "/remind":
		settings := m.sess.Settings()
		settings.WeeklyReminderEnabled = !settings.WeeklyReminderEnabled
		return m, m.run(func(ctx context.Context) error {
			return m.sess.UpdateSettings(ctx, settings)
		})
	case "/report":
		settings := m.sess.Settings()
		settings.WeeklyReportEnabled = !settings.WeeklyReportEnabled
		return m, m.run(func(ctx context.Context) error {
			return m.sess.UpdateSettings(ctx, settings)
		})
	}

	m.addAlert(`enter "/h" for help`, colorYellow)
	return m, nil
}

func (m model) addTask(arg string) (model, tea.Cmd) {
	if arg == "" {
		m.addAlert("usage: /t <name> [@category] [!priority] [goal]", colorYellow)
		return m, nil
	}

	var name []string
	category := ""
	priority := perftrack.PriorityMedium
	goal := 30
	for _, word := range strings.Fields(arg) {
		switch {
		case strings.HasPrefix(word, "@"):
			category = strings.TrimPrefix(word, "@")
		case strings.HasPrefix(word, "!"):
			priority = perftrack.ParsePriority(strings.TrimPrefix(word, "!"))
		default:
			if n, err := strconv.Atoi(word); err == nil {
				goal = n
				continue
			}
			name = append(name, word)
		}
	}
	if category == "" && len(m.sess.Categories()) > 0 {
		category = m.sess.Categories()[0].Name
	}

	return m, m.run(func(ctx context.Context) error {
		_, err := m.sess.AddTask(ctx, strings.Join(name, " "), category, priority, goal)
		return err
	})
}

func (m model) logActivity(arg string) (model, tea.Cmd) {
	fields := strings.SplitN(arg, " ", 3)
	if len(fields) < 2 {
		m.addAlert("usage: /l <n> <minutes> [note]", colorYellow)
		return m, nil
	}
	t, ok := m.taskAt(fields[0])
	if !ok {
		m.addAlert("usage: /l <n> <minutes> [note]", colorYellow)
		return m, nil
	}
	// invalid numeric input is coerced, not rejected
	minutes, _ := strconv.Atoi(fields[1])
	var note string
	if len(fields) == 3 {
		note = fields[2]
	}

	return m, m.run(func(ctx context.Context) error {
		_, err := m.sess.LogActivity(ctx, t.ID, perftrack.Today(), minutes, note)
		return err
	})
}

func (m model) toggleCompletion(arg string) (model, tea.Cmd) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		m.addAlert("usage: /c <n> [yyyy-mm-dd]", colorYellow)
		return m, nil
	}
	t, ok := m.taskAt(fields[0])
	if !ok {
		m.addAlert("usage: /c <n> [yyyy-mm-dd]", colorYellow)
		return m, nil
	}
	date := perftrack.Today()
	if len(fields) > 1 {
		if _, err := time.ParseInLocation(perftrack.DateLayout, fields[1], time.Local); err != nil {
			m.addAlert("usage: /c <n> [yyyy-mm-dd]", colorYellow)
			return m, nil
		}
		date = perftrack.Date(fields[1])
	}

	return m, m.run(func(ctx context.Context) error {
		_, err := m.sess.ToggleCompletion(ctx, t.ID, date)
		return err
	})
}

func (m model) addCategory(arg string) (model, tea.Cmd) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		m.addAlert("usage: /cat <name> [#hexcolor]", colorYellow)
		return m, nil
	}
	color := "#3b82f6"
	var name []string
	for _, word := range fields {
		if strings.HasPrefix(word, "#") {
			color = word
			continue
		}
		name = append(name, word)
	}

	return m, m.run(func(ctx context.Context) error {
		_, err := m.sess.AddCategory(ctx, strings.Join(name, " "), color)
		return err
	})
}

func (m model) deleteCategory(arg string) (model, tea.Cmd) {
	if arg == "" {
		m.addAlert("usage: /rmcat <name>", colorYellow)
		return m, nil
	}
	var id string
	for _, c := range m.sess.Categories() {
		if strings.EqualFold(c.Name, arg) {
			id = c.ID
			break
		}
	}
	if id == "" {
		m.addAlert("no category named "+arg, colorYellow)
		return m, nil
	}

	return m, m.run(func(ctx context.Context) error {
		return m.sess.DeleteCategory(ctx, id)
	})
}

func (m model) run(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		timeout, cancel := m.newTimeout()
		defer cancel()
		if err := fn(timeout); err != nil {
			return ErrorMsg{
				err: err,
			}
		}
		return RefreshMsg{}
	}
}
