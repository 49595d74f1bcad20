package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/tui-go/internal/api"
	"github.com/taskdeck/tui-go/internal/form"
	"github.com/taskdeck/tui-go/internal/model"
	"github.com/taskdeck/tui-go/internal/session"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewModeLogin     ViewMode = iota // Sign-in form
	ViewModeRegister                  // Account creation form
	ViewModeDashboard                 // Task list
	ViewModeTaskForm                  // Create/edit task overlay
	ViewModeHelp                      // Help overlay
)

// Messages
type authResultMsg struct {
	user *model.User
	err  error
}

type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

type taskSavedMsg struct {
	task    *model.Task
	editing bool
	err     error
}

type taskToggledMsg struct {
	task *model.Task
	err  error
}

type taskDeletedMsg struct {
	id  string
	err error
}

// SessionInvalidatedMsg is sent into the program when the API gateway
// reports a 401. The shell wires the gateway's unauthorized callback to this
// message; the gateway itself never touches navigation.
type SessionInvalidatedMsg struct{}

type spinnerTickMsg struct{}

// Spinner animation frames
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int
	ready  bool

	// View state
	viewMode ViewMode

	// Services
	client *api.Client
	store  *session.Store

	// Current user (nil when signed out)
	user *model.User

	// Auth forms
	loginForm      *form.Form
	loginFields    []formField
	registerForm   *form.Form
	registerFields []formField
	focusIdx       int
	authError      string
	notice         string

	// Submit-in-flight flag; submit affordances are disabled while true
	submitting bool

	// Dashboard state
	tasks            []model.Task
	selectedIndex    int
	filter           model.Filter
	loadingTasks     bool
	taskError        string
	confirmingDelete bool
	spinnerIndex     int

	// Task form state
	taskForm    *form.Form
	taskFields  []formField
	editingTask *model.Task

	// Key bindings
	keys KeyMap
}

// NewRootModel creates the root model. If the session store already holds a
// token the dashboard opens directly; otherwise the login form does.
func NewRootModel(client *api.Client, store *session.Store) Model {
	m := Model{
		viewMode:       ViewModeLogin,
		client:         client,
		store:          store,
		loginForm:      form.New(map[string]string{"email": "", "password": ""}, form.LoginRules()),
		loginFields:    newLoginFields(),
		registerForm:   form.New(map[string]string{"name": "", "email": "", "password": "", "confirmPassword": ""}, form.RegisterRules()),
		registerFields: newRegisterFields(),
		taskForm:       form.New(map[string]string{"title": "", "description": ""}, form.TaskRules()),
		taskFields:     newTaskFields(),
		filter:         model.FilterAll,
		keys:           DefaultKeyMap(),
	}

	if store.IsAuthenticated() {
		m.viewMode = ViewModeDashboard
		m.user = store.CurrentUser()
		m.loadingTasks = true
	}

	focusField(m.loginFields, 0)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.viewMode == ViewModeDashboard {
		cmds = append(cmds, m.loadTasksCmd(), spinnerTickCmd())
	}
	return tea.Batch(cmds...)
}

// loadTasksCmd fetches the task list
func (m Model) loadTasksCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		tasks, err := client.Tasks()
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

// Validation always runs on the event loop before a submit command is
// dispatched, and the command closes over a detached copy of the values. The
// command goroutine therefore never touches the form; keystrokes arriving
// while a request is in flight cannot race with it.

// loginCmd performs the login request over an already-validated value copy
func (m Model) loginCmd(values map[string]string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		user, err := client.Login(values["email"], values["password"])
		return authResultMsg{user: user, err: err}
	}
}

// registerCmd performs the registration request
func (m Model) registerCmd(values map[string]string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		user, err := client.Register(values["name"], values["email"], values["password"])
		return authResultMsg{user: user, err: err}
	}
}

// saveTaskCmd creates or updates a task, depending on whether an edit is in
// progress
func (m Model) saveTaskCmd(values map[string]string, editing *model.Task) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if editing != nil {
			title, desc := values["title"], values["description"]
			t, err := client.UpdateTask(editing.ID, api.TaskPatch{Title: &title, Description: &desc})
			return taskSavedMsg{task: t, editing: true, err: err}
		}
		t, err := client.CreateTask(values["title"], values["description"])
		return taskSavedMsg{task: t, err: err}
	}
}

// toggleTaskCmd flips completion on the server
func (m Model) toggleTaskCmd(task model.Task) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		t, err := client.ToggleTask(task.ID, !task.Completed)
		return taskToggledMsg{task: t, err: err}
	}
}

// deleteTaskCmd removes a task on the server
func (m Model) deleteTaskCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteTask(id)
		return taskDeletedMsg{id: id, err: err}
	}
}

// spinnerTickCmd returns a fast tick command for spinner animation
func spinnerTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// signedOut reports whether the model is on an auth view with no session
func (m Model) signedOut() bool {
	return m.viewMode == ViewModeLogin || m.viewMode == ViewModeRegister
}

// visibleTasks returns the tasks shown under the current filter
func (m Model) visibleTasks() []model.Task {
	return m.filter.Apply(m.tasks)
}

// selectedTask returns the task under the cursor, or nil
func (m Model) selectedTask() *model.Task {
	visible := m.visibleTasks()
	if m.selectedIndex < 0 || m.selectedIndex >= len(visible) {
		return nil
	}
	t := visible[m.selectedIndex]
	return &t
}

// clampSelection keeps the cursor inside the visible list
func (m *Model) clampSelection() {
	n := len(m.visibleTasks())
	if m.selectedIndex >= n {
		m.selectedIndex = n - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
}

// signOut drops the session and returns to the login view
func (m *Model) signOut(notice string) tea.Cmd {
	m.user = nil
	m.tasks = nil
	m.selectedIndex = 0
	m.filter = model.FilterAll
	m.submitting = false
	m.confirmingDelete = false
	m.editingTask = nil
	m.authError = ""
	m.taskError = ""
	m.notice = notice
	m.loginForm.Reset()
	m.registerForm.Reset()
	m.taskForm.Reset()
	resetFields(m.registerFields)
	resetFields(m.taskFields)
	m.focusIdx = 0
	m.viewMode = ViewModeLogin
	return resetFields(m.loginFields)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case spinnerTickMsg:
		if m.loadingTasks || m.submitting {
			m.spinnerIndex = (m.spinnerIndex + 1) % len(spinnerFrames)
			cmds = append(cmds, spinnerTickCmd())
		}

	case SessionInvalidatedMsg:
		// On the login view there is no session state worth tearing down;
		// a 401 here is a failed credential check, not an expiry
		if m.viewMode == ViewModeLogin {
			return m, nil
		}
		cmd := m.signOut("session expired, please sign in again")
		return m, cmd

	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.authError = msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.authError = ""
		m.notice = ""
		m.taskError = ""
		m.viewMode = ViewModeDashboard
		m.loadingTasks = true
		m.loginForm.Reset()
		m.registerForm.Reset()
		resetFields(m.loginFields)
		resetFields(m.registerFields)
		m.focusIdx = 0
		return m, tea.Batch(m.loadTasksCmd(), spinnerTickCmd())

	case tasksLoadedMsg:
		// An in-flight load can complete after a logout; drop the result
		if m.signedOut() {
			return m, nil
		}
		m.loadingTasks = false
		if msg.err != nil {
			m.taskError = "failed to load tasks"
			return m, nil
		}
		m.tasks = msg.tasks
		m.taskError = ""
		m.clampSelection()

	case taskSavedMsg:
		if m.signedOut() {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.taskError = "failed to save task"
			return m, nil
		}
		if msg.editing {
			for i := range m.tasks {
				if m.tasks[i].ID == msg.task.ID {
					m.tasks[i] = *msg.task
					break
				}
			}
		} else {
			// Optimistic prepend; server order is authoritative on reload
			m.tasks = append([]model.Task{*msg.task}, m.tasks...)
		}
		m.taskError = ""
		m.editingTask = nil
		m.taskForm.Reset()
		resetFields(m.taskFields)
		m.focusIdx = 0
		m.viewMode = ViewModeDashboard

	case taskToggledMsg:
		if m.signedOut() {
			return m, nil
		}
		if msg.err != nil {
			m.taskError = "failed to update task"
			return m, nil
		}
		for i := range m.tasks {
			if m.tasks[i].ID == msg.task.ID {
				m.tasks[i] = *msg.task
				break
			}
		}
		m.taskError = ""
		m.clampSelection()

	case taskDeletedMsg:
		if m.signedOut() {
			return m, nil
		}
		if msg.err != nil {
			m.taskError = "failed to delete task"
			return m, nil
		}
		kept := m.tasks[:0]
		for _, t := range m.tasks {
			if t.ID != msg.id {
				kept = append(kept, t)
			}
		}
		m.tasks = kept
		m.taskError = ""
		m.clampSelection()

	case tea.KeyMsg:
		switch m.viewMode {
		case ViewModeLogin:
			return m.updateLogin(msg)
		case ViewModeRegister:
			return m.updateRegister(msg)
		case ViewModeDashboard:
			return m.updateDashboard(msg)
		case ViewModeTaskForm:
			return m.updateTaskForm(msg)
		case ViewModeHelp:
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) {
				m.viewMode = ViewModeDashboard
			}
			return m, nil
		}
	}

	return m, tea.Batch(cmds...)
}

// updateLogin handles keys on the login form
func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case msg.String() == "ctrl+r":
		m.viewMode = ViewModeRegister
		m.authError = ""
		m.notice = ""
		m.focusIdx = 0
		return m, focusField(m.registerFields, 0)

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.focusIdx = (m.focusIdx + 1) % len(m.loginFields)
		return m, focusField(m.loginFields, m.focusIdx)

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.focusIdx = (m.focusIdx + len(m.loginFields) - 1) % len(m.loginFields)
		return m, focusField(m.loginFields, m.focusIdx)

	case msg.Type == tea.KeyEnter:
		if m.submitting {
			return m, nil
		}
		if !m.loginForm.Validate() {
			return m, nil
		}
		m.submitting = true
		m.authError = ""
		return m, tea.Batch(m.loginCmd(m.loginForm.Values()), spinnerTickCmd())
	}

	return m, updateFocusedField(m.loginFields, m.focusIdx, m.loginForm, msg)
}

// updateRegister handles keys on the registration form
func (m Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		m.viewMode = ViewModeLogin
		m.authError = ""
		m.focusIdx = 0
		return m, focusField(m.loginFields, 0)

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.focusIdx = (m.focusIdx + 1) % len(m.registerFields)
		return m, focusField(m.registerFields, m.focusIdx)

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.focusIdx = (m.focusIdx + len(m.registerFields) - 1) % len(m.registerFields)
		return m, focusField(m.registerFields, m.focusIdx)

	case msg.Type == tea.KeyEnter:
		if m.submitting {
			return m, nil
		}
		if !m.registerForm.Validate() {
			return m, nil
		}
		m.submitting = true
		m.authError = ""
		return m, tea.Batch(m.registerCmd(m.registerForm.Values()), spinnerTickCmd())
	}

	return m, updateFocusedField(m.registerFields, m.focusIdx, m.registerForm, msg)
}

// updateDashboard handles keys on the task list
func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmingDelete {
		switch msg.String() {
		case "y", "enter":
			m.confirmingDelete = false
			if t := m.selectedTask(); t != nil {
				return m, m.deleteTaskCmd(t.ID)
			}
			return m, nil
		default:
			m.confirmingDelete = false
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewModeHelp

	case key.Matches(msg, m.keys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIndex < len(m.visibleTasks())-1 {
			m.selectedIndex++
		}

	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.selectedIndex = 0

	case key.Matches(msg, m.keys.Refresh):
		m.loadingTasks = true
		return m, tea.Batch(m.loadTasksCmd(), spinnerTickCmd())

	case key.Matches(msg, m.keys.Toggle):
		if t := m.selectedTask(); t != nil {
			return m, m.toggleTaskCmd(*t)
		}

	case key.Matches(msg, m.keys.New):
		m.editingTask = nil
		m.taskForm.Reset()
		m.focusIdx = 0
		m.viewMode = ViewModeTaskForm
		return m, resetFields(m.taskFields)

	case key.Matches(msg, m.keys.Edit):
		if t := m.selectedTask(); t != nil {
			m.editingTask = t
			m.taskForm.Reset()
			m.taskForm.SetFieldValue("title", t.Title)
			m.taskForm.SetFieldValue("description", t.Description)
			m.taskFields[0].input.SetValue(t.Title)
			m.taskFields[1].input.SetValue(t.Description)
			m.focusIdx = 0
			m.viewMode = ViewModeTaskForm
			return m, focusField(m.taskFields, 0)
		}

	case key.Matches(msg, m.keys.Delete):
		if m.selectedTask() != nil {
			m.confirmingDelete = true
		}

	case key.Matches(msg, m.keys.Logout):
		m.store.Logout()
		cmd := m.signOut("")
		return m, cmd
	}

	return m, nil
}

// updateTaskForm handles keys on the create/edit overlay
func (m Model) updateTaskForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		m.editingTask = nil
		m.taskForm.Reset()
		m.focusIdx = 0
		m.viewMode = ViewModeDashboard
		return m, resetFields(m.taskFields)

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.focusIdx = (m.focusIdx + 1) % len(m.taskFields)
		return m, focusField(m.taskFields, m.focusIdx)

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.focusIdx = (m.focusIdx + len(m.taskFields) - 1) % len(m.taskFields)
		return m, focusField(m.taskFields, m.focusIdx)

	case msg.Type == tea.KeyEnter:
		if m.submitting {
			return m, nil
		}
		if !m.taskForm.Validate() {
			return m, nil
		}
		m.submitting = true
		return m, tea.Batch(m.saveTaskCmd(m.taskForm.Values(), m.editingTask), spinnerTickCmd())
	}

	return m, updateFocusedField(m.taskFields, m.focusIdx, m.taskForm, msg)
}
