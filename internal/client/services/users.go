package services

import (
	"context"
	"errors"

	"github.com/Purvesh8762/user-management/internal/client/api"
	"github.com/Purvesh8762/user-management/internal/client/models"
	"github.com/Purvesh8762/user-management/internal/common"
)

// UserService exposes the managed-user operations. Every call is a single
// round trip; the client never keeps a persistent mirror of the list, it is
// re-fetched after each mutation by the caller.
//
// A 401 from any of these calls clears the credential store before the
// error is returned, so the caller only has to redirect to login.
type UserService interface {
	List(ctx context.Context) ([]models.ManagedUser, error)
	Add(ctx context.Context, name, email string) (models.ManagedUser, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	client api.Client
	store  SessionStore
}

// NewUserService constructs a UserService bound to the given API client
// and credential store.
func NewUserService(client api.Client, store SessionStore) UserService {
	return &userService{client: client, store: store}
}

func (s *userService) List(ctx context.Context) ([]models.ManagedUser, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, s.clearOnRejection(ctx, err)
	}
	return users, nil
}

func (s *userService) Add(ctx context.Context, name, email string) (models.ManagedUser, error) {
	user, err := s.client.AddUser(ctx, name, email)
	if err != nil {
		return models.ManagedUser{}, s.clearOnRejection(ctx, err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return s.clearOnRejection(ctx, err)
	}
	return nil
}

// clearOnRejection implements the uniform authentication-rejection reaction:
// on 401 the stored session is wiped so the next gate check forces a login.
// The in-flight operation is abandoned, never retried.
func (s *userService) clearOnRejection(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrUnauthorized) {
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			return errors.Join(err, clearErr)
		}
		s.client.SetCredential("")
	}
	return err
}
