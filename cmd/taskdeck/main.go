package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/tui-go/internal/api"
	"github.com/taskdeck/tui-go/internal/config"
	"github.com/taskdeck/tui-go/internal/session"
	"github.com/taskdeck/tui-go/internal/tui"
)

func main() {
	cfg := config.FromEnv()
	store := session.NewStore(cfg.DataDir)
	client := api.NewClient(cfg.APIURL, store)

	p := tea.NewProgram(
		tui.NewRootModel(client, store),
		tea.WithAltScreen(),
	)

	// Any 401 tears down the session; the shell reacts by navigating back
	// to the login view, even for background refreshes.
	client.OnUnauthorized(func() {
		p.Send(tui.SessionInvalidatedMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
