package tui

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dotodo/todos/internal/client"
	"github.com/dotodo/todos/internal/models"
)

// formField tracks which input currently has focus
type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldTag
	fieldNewTagTitle
	fieldNewTagColor
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// createForm collects a new task: title, optional description, and a tag
// picked from the existing set or created inline.
type createForm struct {
	title       textinput.Model
	description textinput.Model
	newTagTitle textinput.Model
	newTagColor textinput.Model

	tags      []models.Tag
	tagCursor int
	newTag    bool

	focus formField
	errs  []string
}

func newCreateForm(tags []models.Tag) *createForm {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = 100
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Details (optional)"

	tagTitle := textinput.New()
	tagTitle.Placeholder = "Tag name"
	tagTitle.CharLimit = 50

	tagColor := textinput.New()
	tagColor.Placeholder = "#a855f7"
	tagColor.CharLimit = 7

	return &createForm{
		title:       title,
		description: description,
		newTagTitle: tagTitle,
		newTagColor: tagColor,
		tags:        tags,
	}
}

// selectTag makes the given tag the picker's selection, adding it to the
// picker first when it arrived after the form was opened (inline creation).
func (f *createForm) selectTag(tag models.Tag) {
	for i, t := range f.tags {
		if t.ID == tag.ID {
			f.tagCursor = i
			f.newTag = false
			f.setFocus(fieldTag)
			return
		}
	}
	f.tags = append(f.tags, tag)
	f.tagCursor = len(f.tags) - 1
	f.newTag = false
	f.setFocus(fieldTag)
}

func (f *createForm) setFocus(field formField) {
	f.focus = field
	for _, in := range []*textinput.Model{&f.title, &f.description, &f.newTagTitle, &f.newTagColor} {
		in.Blur()
	}
	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.description.Focus()
	case fieldNewTagTitle:
		f.newTagTitle.Focus()
	case fieldNewTagColor:
		f.newTagColor.Focus()
	}
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form

	switch msg.String() {
	case "esc":
		a.form = nil
		return a, nil

	case "tab", "shift+tab":
		f.advance(msg.String() == "shift+tab")
		return a, nil

	case "enter":
		switch f.focus {
		case fieldNewTagTitle, fieldNewTagColor:
			if cmd := a.submitNewTag(); cmd != nil {
				return a, cmd
			}
			return a, nil
		default:
			if cmd := a.submitTask(); cmd != nil {
				return a, cmd
			}
			return a, nil
		}
	}

	if f.focus == fieldTag {
		switch msg.String() {
		case "j", "down":
			if f.tagCursor < len(f.tags)-1 {
				f.tagCursor++
			}
		case "k", "up":
			if f.tagCursor > 0 {
				f.tagCursor--
			}
		case "n":
			f.newTag = true
			f.setFocus(fieldNewTagTitle)
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldNewTagTitle:
		f.newTagTitle, cmd = f.newTagTitle.Update(msg)
	case fieldNewTagColor:
		f.newTagColor, cmd = f.newTagColor.Update(msg)
	}
	return a, cmd
}

func (f *createForm) advance(back bool) {
	order := []formField{fieldTitle, fieldDescription, fieldTag}
	if f.newTag {
		order = []formField{fieldTitle, fieldDescription, fieldNewTagTitle, fieldNewTagColor}
	}
	idx := 0
	for i, field := range order {
		if field == f.focus {
			idx = i
			break
		}
	}
	if back {
		idx = (idx - 1 + len(order)) % len(order)
	} else {
		idx = (idx + 1) % len(order)
	}
	f.setFocus(order[idx])
}

func (a *App) submitTask() tea.Cmd {
	f := a.form
	f.errs = nil

	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		f.errs = append(f.errs, "title is required")
	}
	if len(f.tags) == 0 {
		f.errs = append(f.errs, "create a tag first (press n on the tag row)")
	}
	if len(f.errs) > 0 {
		return nil
	}

	params := client.CreateTaskParams{
		Title:       title,
		Description: strings.TrimSpace(f.description.Value()),
		TagID:       f.tags[f.tagCursor].ID,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		task, err := a.client.CreateTask(ctx, params)
		if err != nil {
			return errMsg{err: fmt.Errorf("failed to create task: %w", err)}
		}
		return taskCreatedMsg{task: *task}
	}
}

func (a *App) submitNewTag() tea.Cmd {
	f := a.form
	f.errs = nil

	title := strings.TrimSpace(f.newTagTitle.Value())
	color := strings.TrimSpace(f.newTagColor.Value())
	if title == "" {
		f.errs = append(f.errs, "tag name is required")
	}
	if !hexColorRe.MatchString(color) {
		f.errs = append(f.errs, "color must look like #a855f7")
	}
	if len(f.errs) > 0 {
		return nil
	}

	params := client.CreateTagParams{Title: title, Color: color}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		tag, err := a.client.CreateTag(ctx, params)
		if err != nil {
			return errMsg{err: fmt.Errorf("failed to create tag: %w", err)}
		}
		return tagCreatedMsg{tag: *tag}
	}
}

func (f *createForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Task"))
	b.WriteString("\n\n")

	b.WriteString(formLabel("Title", f.focus == fieldTitle))
	b.WriteString(f.title.View())
	b.WriteString("\n")
	b.WriteString(formLabel("Description", f.focus == fieldDescription))
	b.WriteString(f.description.View())
	b.WriteString("\n")

	b.WriteString(formLabel("Tag", f.focus == fieldTag))
	b.WriteString("\n")
	if f.newTag {
		b.WriteString("  " + formLabel("Name", f.focus == fieldNewTagTitle))
		b.WriteString(f.newTagTitle.View())
		b.WriteString("\n")
		b.WriteString("  " + formLabel("Color", f.focus == fieldNewTagColor))
		b.WriteString(f.newTagColor.View())
		b.WriteString("\n")
	} else {
		if len(f.tags) == 0 {
			b.WriteString(dimStyle.Render("  no tags yet, press n to create one"))
			b.WriteString("\n")
		}
		for i, t := range f.tags {
			marker := "  "
			if i == f.tagCursor && f.focus == fieldTag {
				marker = "> "
			}
			b.WriteString(marker + tagBadge(t.Title, t.Color) + "\n")
		}
	}

	for _, e := range f.errs {
		b.WriteString("\n")
		b.WriteString(errorTextStyle.Render(e))
	}

	b.WriteString(helpStyle.Render("enter submit · tab next field · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func formLabel(text string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render(text+":") + " "
	}
	return labelStyle.Render(text+":") + " "
}
