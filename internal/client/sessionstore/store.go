// Package sessionstore is the durable mirror of the client session: the
// bearer token under "auth_token" and the JSON user record under
// "user_data". Backends write and clear the two keys as a pair.
package sessionstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
	"github.com/dmitrijs2005/craftconnect/internal/logging"
)

var (
	// ErrStorage marks a failure of the underlying medium.
	ErrStorage = errors.New("session storage error")
	// ErrDeserialization marks a persisted user record that could not be
	// decoded. Load heals it by clearing the pair; it is only logged.
	ErrDeserialization = errors.New("persisted user record is corrupt")
)

// Entry is a complete persisted session.
type Entry struct {
	Token string
	User  models.User
}

// Store persists the session pair.
//
// Load returns (nil, nil) when either key is missing. A corrupt user record
// clears both keys and is reported as absent.
type Store interface {
	Save(ctx context.Context, token string, user models.User) error
	Load(ctx context.Context) (*Entry, error)
	Clear(ctx context.Context) error
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

func encodeUser(user models.User) ([]byte, error) {
	if user.IsZero() {
		return nil, fmt.Errorf("%w: empty user record", ErrStorage)
	}
	return user.MarshalJSON()
}

// resolve turns the raw pair read by a backend into an Entry. clear is
// invoked when the user record does not decode.
func resolve(ctx context.Context, log logging.Logger, token string, rawUser []byte, clear func(context.Context) error) (*Entry, error) {
	if token == "" || len(rawUser) == 0 {
		return nil, nil
	}

	user, err := models.NewUser(rawUser)
	if err != nil {
		if log == nil {
			log = logging.Nop()
		}
		log.Warn(ctx, "discarding persisted session", "error", fmt.Errorf("%w: %w", ErrDeserialization, err))
		if cerr := clear(ctx); cerr != nil {
			log.Error(ctx, "failed to clear corrupt session", "error", cerr)
		}
		return nil, nil
	}

	return &Entry{Token: token, User: user}, nil
}
