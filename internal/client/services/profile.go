package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
)

// ProfileAPI is the part of the backend API ProfileService calls.
type ProfileAPI interface {
	Me(ctx context.Context) (models.User, error)
	UpdateUserProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.User, error)
}

// ProfileService keeps the session's user record in step with the backend.
type ProfileService struct {
	api     ProfileAPI
	session *SessionManager
}

func NewProfileService(api ProfileAPI, session *SessionManager) *ProfileService {
	return &ProfileService{api: api, session: session}
}

// Refresh fetches the current user from the backend and stores it in the
// session.
func (p *ProfileService) Refresh(ctx context.Context) (models.User, error) {
	if !p.session.Session().IsAuthenticated {
		return models.User{}, ErrNotAuthenticated
	}
	user, err := p.api.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch current user: %w", err)
	}
	if err := p.session.UpdateUser(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Save sends upd for the signed-in user and stores the returned record in
// the session.
func (p *ProfileService) Save(ctx context.Context, upd models.ProfileUpdate) (models.User, error) {
	cur := p.session.Session()
	if !cur.IsAuthenticated {
		return models.User{}, ErrNotAuthenticated
	}
	id := cur.User.ID()
	if id == "" {
		return models.User{}, errors.New("session user has no id")
	}

	user, err := p.api.UpdateUserProfile(ctx, id, upd)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	if err := p.session.UpdateUser(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
