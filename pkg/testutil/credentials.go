package testutil

import (
	"context"

	"fooddelivery/identity"
)

// MemCredentialStore backs the local identity provider in tests.
type MemCredentialStore struct {
	byUID   map[string]identity.Credential
	byEmail map[string]string
}

func NewMemCredentialStore() *MemCredentialStore {
	return &MemCredentialStore{
		byUID:   map[string]identity.Credential{},
		byEmail: map[string]string{},
	}
}

func (m *MemCredentialStore) Insert(_ context.Context, cred *identity.Credential) error {
	if _, ok := m.byEmail[cred.Email]; ok {
		return identity.ErrEmailTaken
	}
	m.byUID[cred.UID] = *cred
	m.byEmail[cred.Email] = cred.UID
	return nil
}

func (m *MemCredentialStore) FindByEmail(_ context.Context, email string) (*identity.Credential, error) {
	uid, ok := m.byEmail[email]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	cred := m.byUID[uid]
	return &cred, nil
}

func (m *MemCredentialStore) Delete(_ context.Context, uid string) error {
	cred, ok := m.byUID[uid]
	if !ok {
		return identity.ErrUserNotFound
	}
	delete(m.byUID, uid)
	delete(m.byEmail, cred.Email)
	return nil
}
