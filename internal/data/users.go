package data

import (
	"LeagueStatsApi/internal/store"
	"LeagueStatsApi/internal/validator"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var AnonymousUser = &User{}

type User struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Password  password  `json:"-"`
	Activated bool      `json:"activated"`
}

func (u *User) IsAnonymous() bool {
	return u == AnonymousUser
}

// userRecord is the stored shape of a User; the password hash is persisted
// but never serialized on the API surface.
type userRecord struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"password_hash"`
	Activated    bool      `json:"activated"`
}

func (u *User) toRecord() userRecord {
	return userRecord{
		ID:           u.ID,
		CreatedAt:    u.CreatedAt,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.Password.hash,
		Activated:    u.Activated,
	}
}

func (r userRecord) toUser() *User {
	return &User{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  password{hash: r.PasswordHash},
		Activated: r.Activated,
	}
}

type UserModel struct {
	store store.Store
}

func userKey(email string) store.Filter {
	return store.Filter{"email": email}
}

func (m UserModel) Insert(ctx context.Context, user *User) error {
	_, err := m.store.GetRow(ctx, TableUsers, userKey(user.Email))
	switch {
	case err == nil:
		return ErrDuplicateEmail
	case errors.Is(err, store.ErrRowNotFound):
	default:
		return err
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	_, err = m.store.UpsertRow(ctx, TableUsers, userKey(user.Email), user.toRecord())
	return err
}

func (m UserModel) GetByEmail(ctx context.Context, email string) (*User, error) {
	doc, err := m.store.GetRow(ctx, TableUsers, userKey(email))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRowNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	var record userRecord
	if err := json.Unmarshal(doc, &record); err != nil {
		return nil, err
	}

	return record.toUser(), nil
}

func (m UserModel) Update(ctx context.Context, user *User) error {
	_, err := m.store.UpsertRow(ctx, TableUsers, userKey(user.Email), user.toRecord())
	return err
}

// GetForToken resolves the user holding an unexpired token with the given
// scope.
func (m UserModel) GetForToken(ctx context.Context, tokenScope, tokenPlaintext string) (*User,
	error) {
	hash := sha256.Sum256([]byte(tokenPlaintext))

	doc, err := m.store.GetRow(ctx, TableTokens, tokenKey(hex.EncodeToString(hash[:]), tokenScope))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRowNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	var record tokenRecord
	if err := json.Unmarshal(doc, &record); err != nil {
		return nil, err
	}
	if time.Now().After(record.Expiry) {
		return nil, ErrRecordNotFound
	}

	return m.GetByEmail(ctx, record.Email)
}

type password struct {
	plaintext *string
	hash      []byte
}

func (p *password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintextPassword
	p.hash = hash

	return nil
}

func (p *password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.hash, []byte(plaintextPassword))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

func ValidateEmail(v *validator.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(validator.Matches(email, validator.EmailRX), "email", "must be a valid email address")
}

func ValidatePasswordPlaintext(v *validator.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(len(password) >= 8, "password", "must be at least 8 characters long")
	v.Check(len(password) <= 72, "password", "must be 72 characters or fewer")
}

func ValidateUser(v *validator.Validator, user *User) {
	v.Check(user.FirstName != "", "first_name", "must be provided")
	v.Check(len(user.FirstName) <= 50, "first_name", "must be fewer than 50 characters")
	v.Check(user.LastName != "", "last_name", "must be provided")
	v.Check(len(user.LastName) <= 50, "last_name", "must be fewer than 50 characters")

	ValidateEmail(v, user.Email)

	if user.Password.plaintext != nil {
		ValidatePasswordPlaintext(v, *user.Password.plaintext)
	}

	if user.Password.hash == nil {
		panic("missing password hash for user")
	}
}
