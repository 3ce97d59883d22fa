package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/identity"
	"fooddelivery/pkg/testutil"
	"fooddelivery/services"
)

// fakeProvider records identity-provider calls.
type fakeProvider struct {
	nextUID  string
	signups  []string
	deleted  []string
	verified map[string]*identity.Token
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{nextUID: "uid-1", verified: map[string]*identity.Token{}}
}

func (p *fakeProvider) SignUp(_ context.Context, email, password string) (string, error) {
	p.signups = append(p.signups, fmt.Sprintf("%s:%s", email, password))
	return p.nextUID, nil
}

func (p *fakeProvider) SignIn(_ context.Context, email, password string) (string, error) {
	return "", identity.ErrInvalidCredentials
}

func (p *fakeProvider) VerifyToken(_ context.Context, token string) (*identity.Token, error) {
	if t, ok := p.verified[token]; ok {
		return t, nil
	}
	return nil, identity.ErrInvalidToken
}

func (p *fakeProvider) DeleteUser(_ context.Context, uid string) error {
	p.deleted = append(p.deleted, uid)
	return nil
}

func TestUserCreateMirrorsProviderAccount(t *testing.T) {
	provider := newFakeProvider()
	svc := services.NewUserService(testutil.NewMemUserStore(), provider)
	ctx := context.Background()

	user, err := svc.Create(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "alice@example.com", user.Username)

	// Signup goes to the provider with the fixed placeholder password.
	require.Len(t, provider.signups, 1)
	assert.Equal(t, "alice@example.com:123456", provider.signups[0])

	stored, err := svc.FindByID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", stored.Username)
}

func TestUserUpdateMergesUsername(t *testing.T) {
	svc := services.NewUserService(testutil.NewMemUserStore(), newFakeProvider())
	ctx := context.Background()

	user, err := svc.Create(ctx, "alice@example.com")
	require.NoError(t, err)

	username := "alice@new.example.com"
	updated, err := svc.Update(ctx, user.ID, &services.UserUpdate{Username: &username})
	require.NoError(t, err)
	assert.Equal(t, username, updated.Username)

	same, err := svc.Update(ctx, user.ID, &services.UserUpdate{})
	require.NoError(t, err)
	assert.Equal(t, username, same.Username)
}

func TestUserDeleteCascadesToProvider(t *testing.T) {
	provider := newFakeProvider()
	svc := services.NewUserService(testutil.NewMemUserStore(), provider)
	ctx := context.Background()

	user, err := svc.Create(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))
	assert.Equal(t, []string{user.ID}, provider.deleted)

	_, err = svc.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFindByUsername(t *testing.T) {
	svc := services.NewUserService(testutil.NewMemUserStore(), newFakeProvider())
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice@example.com")
	require.NoError(t, err)

	user, err := svc.FindByUsername(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)

	_, err = svc.FindByUsername(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
