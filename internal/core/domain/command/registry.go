package command

import (
	"errors"
	"readwatch/internal/core/domain"
	"readwatch/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[domain.Action]port.Command
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[domain.Action]port.Command)
	}

	log.Info().Str("action", string(handler.GetAction())).Msg("adding command handler to registry")
	r.commands[handler.GetAction()] = handler
}

func (r *Registry) Get(action domain.Action) (port.Command, error) {
	log.Debug().Str("action", string(action)).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[action]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

func (r *Registry) ListActions() []domain.Action {
	keys := make([]domain.Action, len(r.commands))

	i := 0
	for k := range r.commands {
		keys[i] = k
		i++
	}

	return keys
}
