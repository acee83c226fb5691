// Package names resolves player account ids to display names.
package names

import (
	"context"
	"errors"
)

// ErrPlayerNotFound means the name service does not know the account.
var ErrPlayerNotFound = errors.New("player not found")

type Resolver interface {
	ResolveName(ctx context.Context, accountID string) (string, error)
}

// Passthrough uses the account id as the name. It is used when no name
// service is configured.
type Passthrough struct{}

func (Passthrough) ResolveName(_ context.Context, accountID string) (string, error) {
	if accountID == "" {
		return "", ErrPlayerNotFound
	}
	return accountID, nil
}
