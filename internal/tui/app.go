// Package tui is the terminal client: it mirrors server state into active
// and completed lists and routes complete/uncomplete/delete actions through
// the optimistic mutation pipeline.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dotodo/todos/internal/client"
	"github.com/dotodo/todos/internal/models"
	"github.com/dotodo/todos/internal/pipeline"
	"github.com/dotodo/todos/internal/state"
	"github.com/dotodo/todos/internal/tui/notifications"
)

// Page is the currently visible task list
type Page int

const (
	PageActive Page = iota
	PageCompleted
)

// Messages

type initialDataMsg struct {
	tags  []models.Tag
	tasks []models.Task
}

type errMsg struct {
	err error
}

type remoteErrMsg struct {
	toast pipeline.Toast
	err   error
}

type taskCreatedMsg struct {
	task models.Task
}

type tagCreatedMsg struct {
	tag models.Tag
}

type tickMsg time.Time

// App is the bubbletea model for the todos client
type App struct {
	client *client.Client
	lists  *state.Lists
	pipe   *pipeline.Pipeline
	clock  pipeline.Clock

	page   Page
	cursor int
	tags   []models.Tag
	form   *createForm

	remoteErrs chan remoteErrMsg
	banner     string
	loaded     bool
	err        error

	width  int
	height int
}

// NewApp creates the client application. The pipeline's grace period and
// clock are injected so tests can drive time deterministically.
func NewApp(c *client.Client, clock pipeline.Clock, grace time.Duration) *App {
	lists := state.NewLists()
	errs := make(chan remoteErrMsg, 16)

	pipe := pipeline.New(pipeline.Config{
		Lists: lists,
		Clock: clock,
		Grace: grace,
		OnRemoteError: func(t pipeline.Toast, err error) {
			select {
			case errs <- remoteErrMsg{toast: t, err: err}:
			default:
			}
		},
	})

	return &App{
		client:     c,
		lists:      lists,
		pipe:       pipe,
		clock:      clock,
		remoteErrs: errs,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchInitialData(), a.waitForRemoteErr(), tick())
}

// fetchInitialData hydrates tags first, then tasks, mirroring the server
func (a *App) fetchInitialData() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		tags, err := a.client.Tags(ctx)
		if err != nil {
			return errMsg{err: fmt.Errorf("failed to load tags: %w", err)}
		}
		tasks, err := a.client.Tasks(ctx)
		if err != nil {
			return errMsg{err: fmt.Errorf("failed to load tasks: %w", err)}
		}
		return initialDataMsg{tags: tags, tasks: tasks}
	}
}

func (a *App) waitForRemoteErr() tea.Cmd {
	return func() tea.Msg {
		return <-a.remoteErrs
	}
}

// tick redraws once a second so toast countdowns stay current
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case initialDataMsg:
		a.tags = msg.tags
		a.lists.Hydrate(msg.tasks)
		a.loaded = true
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case remoteErrMsg:
		// Known gap: local state stays ahead of the server until refresh
		a.banner = fmt.Sprintf("sync failed for %q: %v", msg.toast.Task.Title, msg.err)
		return a, a.waitForRemoteErr()

	case taskCreatedMsg:
		a.lists.Append(state.ListActive, msg.task)
		a.form = nil
		return a, nil

	case tagCreatedMsg:
		a.tags = append(a.tags, msg.tag)
		if a.form != nil {
			a.form.selectTag(msg.tag)
		}
		return a, nil

	case tickMsg:
		return a, tick()

	case tea.KeyMsg:
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.updateList(msg)
	}

	return a, nil
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		// Commit anything still pending before quitting
		a.pipe.Flush(context.Background())
		return a, tea.Quit

	case "tab":
		if a.page == PageActive {
			a.page = PageCompleted
		} else {
			a.page = PageActive
		}
		a.cursor = 0

	case "j", "down":
		if a.cursor < len(a.visibleTasks())-1 {
			a.cursor++
		}

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}

	case " ", "enter":
		if t, ok := a.taskUnderCursor(); ok {
			a.banner = ""
			a.toggleDone(t)
			a.clampCursor()
		}

	case "d":
		if t, ok := a.taskUnderCursor(); ok {
			a.banner = ""
			a.deleteTask(t)
			a.clampCursor()
		}

	case "u":
		if toast, ok := a.pipe.Newest(); ok {
			a.pipe.Undo(toast.TaskID)
			a.clampCursor()
		}

	case "c":
		a.form = newCreateForm(a.tags)

	case "r":
		return a, a.fetchInitialData()
	}

	return a, nil
}

// toggleDone applies the optimistic move and schedules the PATCH
func (a *App) toggleDone(t models.Task) {
	id := t.ID
	done := !t.IsDone
	remote := func(ctx context.Context) error {
		_, err := a.client.UpdateTask(ctx, id, client.TaskPatch{IsDone: &done})
		return err
	}

	if done {
		a.pipe.Complete(t, remote)
	} else {
		a.pipe.Uncomplete(t, remote)
	}
}

// deleteTask applies the optimistic removal and schedules the DELETE
func (a *App) deleteTask(t models.Task) {
	id := t.ID
	a.pipe.Delete(t, func(ctx context.Context) error {
		_, err := a.client.DeleteTask(ctx, id)
		return err
	})
}

func (a *App) visibleTasks() []models.Task {
	if a.page == PageCompleted {
		return a.lists.Completed()
	}
	return a.lists.Active()
}

func (a *App) taskUnderCursor() (models.Task, bool) {
	tasks := a.visibleTasks()
	if a.cursor < 0 || a.cursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[a.cursor], true
}

func (a *App) clampCursor() {
	if n := len(a.visibleTasks()); a.cursor >= n && n > 0 {
		a.cursor = n - 1
	} else if n == 0 {
		a.cursor = 0
	}
}

func (a *App) View() string {
	if a.err != nil {
		return notifications.Render(notifications.Error, a.err.Error()) + "\n"
	}
	if !a.loaded {
		return dimStyle.Render("Loading...") + "\n"
	}
	if a.form != nil {
		return a.form.View()
	}

	var b strings.Builder

	// Header with tabs
	active := tabStyle.Render("Active")
	completed := tabStyle.Render("Completed")
	if a.page == PageActive {
		active = activeTabStyle.Render("Active")
	} else {
		completed = activeTabStyle.Render("Completed")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("ToDoS"), "  ", active, completed))
	b.WriteString("\n\n")

	// Task list
	tasks := a.visibleTasks()
	if len(tasks) == 0 {
		if a.page == PageActive {
			b.WriteString(dimStyle.Render("No active tasks"))
		} else {
			b.WriteString(dimStyle.Render("You don't have completed tasks!"))
		}
		b.WriteString("\n")
	}
	for i, t := range tasks {
		b.WriteString(a.renderTask(t, i == a.cursor))
		b.WriteString("\n")
	}

	// Pending toasts, oldest first
	for _, toast := range a.pipe.Toasts() {
		left := int(toast.Deadline.Sub(a.clock.Now()).Round(time.Second).Seconds())
		if left < 0 {
			left = 0
		}
		b.WriteString("\n")
		b.WriteString(notifications.RenderToast(toast.Task.Title, toastAction(toast.Kind), left))
	}

	if a.banner != "" {
		b.WriteString("\n")
		b.WriteString(notifications.Render(notifications.Warning, a.banner))
	}

	b.WriteString(helpStyle.Render(
		"space toggle · d delete · u undo · c create · tab switch · r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (a *App) renderTask(t models.Task, selected bool) string {
	check := "[ ]"
	title := t.Title
	if t.IsDone {
		check = "[x]"
		title = doneTitleStyle.Render(title)
	}

	row := fmt.Sprintf("%s %s %s", check, title, tagBadge(t.Tag.Title, t.Tag.Color))
	if selected {
		return cursorRowStyle.Render("> " + row)
	}
	return "  " + row
}

func toastAction(kind pipeline.Kind) string {
	switch kind {
	case pipeline.KindCompleted:
		return "completed"
	case pipeline.KindCompletedUndo:
		return "moved to active"
	case pipeline.KindDeleted:
		return "deleted"
	}
	return string(kind)
}
