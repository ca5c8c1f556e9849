package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdReload(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Loader == nil {
			return payloadLoadedMsg{err: errors.New("Loader is nil")}
		}
		p, err := deps.Loader.Execute(context.Background(), deps.Request)
		return payloadLoadedMsg{payload: p, err: err}
	}
}
