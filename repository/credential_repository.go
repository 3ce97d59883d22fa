package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fooddelivery/identity"
)

// CredentialRepository backs the local identity provider.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(coll *mongo.Collection) *CredentialRepository {
	return &CredentialRepository{coll: coll}
}

func (r *CredentialRepository) Insert(ctx context.Context, cred *identity.Credential) error {
	_, err := r.coll.InsertOne(ctx, cred)
	if mongo.IsDuplicateKeyError(err) {
		return identity.ErrEmailTaken
	}
	return err
}

func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*identity.Credential, error) {
	var cred identity.Credential
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, identity.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *CredentialRepository) Delete(ctx context.Context, uid string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return identity.ErrUserNotFound
	}
	return nil
}
