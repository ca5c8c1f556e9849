package tui

import "github.com/aalvaropc/aocinput/internal/domain"

type payloadLoadedMsg struct {
	payload domain.Payload
	err     error
}
