package player

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound is returned by lookups that match no player.
var ErrPlayerNotFound = errors.New("player not found")

// NotFoundError names the player that could not be resolved.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("player %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrPlayerNotFound
}
