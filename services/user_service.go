package services

import (
	"context"

	"fooddelivery/identity"
	"fooddelivery/models"
)

// placeholderPassword is what every signup registers with the identity
// provider. Carried over from the original system; users are expected to
// change it through the provider.
const placeholderPassword = "123456"

type UserService struct {
	store    UserStore
	provider identity.Provider
}

func NewUserService(store UserStore, provider identity.Provider) *UserService {
	return &UserService{store: store, provider: provider}
}

// UserUpdate carries a partial update; nil fields keep the stored value.
type UserUpdate struct {
	Username *string `json:"username"`
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.store.FindAll(ctx)
}

func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.store.FindByID(ctx, id)
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.store.FindByUsername(ctx, username)
}

// Create registers the account with the identity provider (username is the
// email there), then mirrors {id, username} into the users collection under
// the provider's subject id.
func (s *UserService) Create(ctx context.Context, username string) (*models.User, error) {
	uid, err := s.provider.SignUp(ctx, username, placeholderPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{ID: uid, Username: username}
	if err := s.store.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, update *UserUpdate) (*models.User, error) {
	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Username != nil {
		current.Username = *update.Username
	}
	if err := s.store.Replace(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes the mirror document and cascades to the provider account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	return s.provider.DeleteUser(ctx, id)
}
