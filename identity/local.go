package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Credential is a stored account record. The UID doubles as the users
// collection document id.
type Credential struct {
	UID          string `bson:"_id"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"passwordHash"`
}

type CredentialStore interface {
	// Insert returns ErrEmailTaken when the email is already registered.
	Insert(ctx context.Context, cred *Credential) error
	FindByEmail(ctx context.Context, email string) (*Credential, error)
	Delete(ctx context.Context, uid string) error
}

// LocalProvider implements Provider with bcrypt-hashed credentials and
// self-issued HS256 tokens.
type LocalProvider struct {
	store  CredentialStore
	secret []byte
	ttl    time.Duration
}

func NewLocalProvider(store CredentialStore, secret string) *LocalProvider {
	return &LocalProvider{store: store, secret: []byte(secret), ttl: 24 * time.Hour}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	cred := &Credential{
		UID:          primitive.NewObjectID().Hex(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := p.store.Insert(ctx, cred); err != nil {
		return "", err
	}
	return cred.UID, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	cred, err := p.store.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   cred.UID,
		"email": cred.Email,
		"exp":   time.Now().Add(p.ttl).Unix(),
	})
	return token.SignedString(p.secret)
}

func (p *LocalProvider) VerifyToken(ctx context.Context, tokenString string) (*Token, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	uid, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if uid == "" {
		return nil, ErrInvalidToken
	}
	return &Token{UID: uid, Email: email}, nil
}

func (p *LocalProvider) DeleteUser(ctx context.Context, uid string) error {
	return p.store.Delete(ctx, uid)
}
