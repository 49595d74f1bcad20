package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/tui-go/internal/form"
	"github.com/taskdeck/tui-go/internal/model"
)

// View renders the UI
func (m Model) View() string {
	switch m.viewMode {
	case ViewModeLogin:
		return m.authView("Sign in", m.loginFields, m.loginForm,
			"enter submit • tab next field • ctrl+r create account • ctrl+c quit")
	case ViewModeRegister:
		return m.authView("Create account", m.registerFields, m.registerForm,
			"enter submit • tab next field • esc back to sign in")
	case ViewModeHelp:
		return m.helpView()
	case ViewModeTaskForm:
		return m.taskFormView()
	default:
		return m.dashboardView()
	}
}

// authView renders a login or registration form
func (m Model) authView(title string, fields []formField, frm *form.Form, hint string) string {
	var b strings.Builder

	b.WriteString(FormTitleStyle.Render("TASKDECK"))
	b.WriteString("  ")
	b.WriteString(DimStyle.Render(title))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(BannerNoticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}
	if m.authError != "" {
		b.WriteString(BannerErrorStyle.Render(m.authError))
		b.WriteString("\n\n")
	}

	for _, f := range fields {
		b.WriteString(FieldLabelStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n")
		if msg := frm.Error(f.name); msg != "" {
			b.WriteString(FieldErrorStyle.Render("  " + msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		spinner := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		b.WriteString(DimStyle.Render(spinner + " submitting…"))
		b.WriteString("\n\n")
	}

	b.WriteString(StatusBarStyle.Render(hint))

	box := FormBoxStyle.Render(b.String())
	return m.center(box)
}

// dashboardView renders the task list
func (m Model) dashboardView() string {
	var b strings.Builder

	// Header with greeting and counts
	name := ""
	if m.user != nil {
		name = m.user.Name
	}
	remaining := model.CountRemaining(m.tasks)
	header := HeaderStyle.Render("TASKDECK") +
		DimStyle.Render(fmt.Sprintf("  %s · %d of %d remaining", name, remaining, len(m.tasks)))
	b.WriteString(header)
	b.WriteString("\n\n")

	if m.taskError != "" {
		b.WriteString(BannerErrorStyle.Render(m.taskError))
		b.WriteString("\n\n")
	}

	// Filter tabs
	b.WriteString(m.renderFilterTabs())
	b.WriteString("\n\n")

	// Task list
	b.WriteString(m.renderTaskList())
	b.WriteString("\n")

	if m.confirmingDelete {
		if t := m.selectedTask(); t != nil {
			b.WriteString(ConfirmStyle.Render(fmt.Sprintf("Delete %q? y/n", truncate(t.Title, 40))))
			b.WriteString("\n")
		}
	}

	b.WriteString(StatusBarStyle.Render(m.renderShortHelp()))
	return b.String()
}

// renderFilterTabs renders the all/active/completed filter row
func (m Model) renderFilterTabs() string {
	tabs := make([]string, 0, 3)
	for _, f := range []model.Filter{model.FilterAll, model.FilterActive, model.FilterCompleted} {
		label := string(f)
		if f == m.filter {
			tabs = append(tabs, FilterActiveStyle.Render(label))
		} else {
			tabs = append(tabs, FilterInactiveStyle.Render(label))
		}
	}
	return "  " + strings.Join(tabs, "  ")
}

// renderTaskList renders the visible tasks with the selection cursor
func (m Model) renderTaskList() string {
	if m.loadingTasks {
		spinner := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		return TaskListStyle.Render(DimStyle.Render(spinner + " loading tasks…"))
	}

	visible := m.visibleTasks()
	if len(visible) == 0 {
		placeholder := "No tasks yet.\nPress n to create one."
		if m.filter != model.FilterAll {
			placeholder = "Nothing " + string(m.filter) + " right now."
		}
		return TaskListStyle.Render(DimStyle.Render(placeholder))
	}

	maxWidth := m.width - 10
	if maxWidth < 20 {
		maxWidth = 20
	}

	var lines []string
	for i, t := range visible {
		style := TaskActiveStyle
		if t.Completed {
			style = TaskDoneStyle
		}

		line := fmt.Sprintf("%s %s", t.StatusIcon(), truncate(t.Title, maxWidth))
		if t.Description != "" {
			line += DimStyle.Render("  · " + truncate(t.Description, maxWidth/2))
		}

		if i == m.selectedIndex {
			lines = append(lines, TaskSelectedStyle.Render("▸ "+line))
		} else {
			lines = append(lines, style.Render("  "+line))
		}
	}

	return TaskListStyle.Render(strings.Join(lines, "\n"))
}

// taskFormView renders the create/edit overlay
func (m Model) taskFormView() string {
	var b strings.Builder

	title := "New task"
	if m.editingTask != nil {
		title = "Edit task"
	}
	b.WriteString(FormTitleStyle.Render(title))
	b.WriteString("\n\n")

	if m.taskError != "" {
		b.WriteString(BannerErrorStyle.Render(m.taskError))
		b.WriteString("\n\n")
	}

	for _, f := range m.taskFields {
		b.WriteString(FieldLabelStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n")
		if msg := m.taskForm.Error(f.name); msg != "" {
			b.WriteString(FieldErrorStyle.Render("  " + msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		spinner := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		b.WriteString(DimStyle.Render(spinner + " saving…"))
		b.WriteString("\n\n")
	}

	b.WriteString(StatusBarStyle.Render("enter save • tab next field • esc cancel"))

	return m.center(FormBoxStyle.Render(b.String()))
}

// helpView renders the help overlay
func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(HelpTitleStyle.Render("Keys"))
	b.WriteString("\n\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(HelpKeyStyle.Render(fmt.Sprintf("%-10s", binding.Help().Key)))
			b.WriteString(HelpDescStyle.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(DimStyle.Render("? or esc to close"))
	return m.center(HelpStyle.Render(b.String()))
}

// renderShortHelp renders the status bar hint line
func (m Model) renderShortHelp() string {
	parts := make([]string, 0, 8)
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
	}
	parts = append(parts, "L log out")
	return strings.Join(parts, " • ")
}

// center positions content in the middle of the terminal when dimensions are
// known, and returns it as-is otherwise
func (m Model) center(content string) string {
	if !m.ready {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// truncate shortens s to max characters with an ellipsis
func truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
