package data

import (
	"LeagueStatsApi/internal/store"
	"LeagueStatsApi/internal/validator"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"encoding/json"
	"time"
)

const (
	ScopeActivation     = "activation"
	ScopeAuthentication = "authentication"
)

type Token struct {
	Plaintext string    `json:"token"`
	Hash      []byte    `json:"-"`
	Email     string    `json:"-"`
	Expiry    time.Time `json:"expiry"`
	Scope     string    `json:"-"`
}

type tokenRecord struct {
	Hash   string    `json:"hash"`
	Email  string    `json:"email"`
	Expiry time.Time `json:"expiry"`
	Scope  string    `json:"scope"`
}

func generateToken(email string, ttl time.Duration, scope string) (*Token, error) {
	token := &Token{
		Email:  email,
		Expiry: time.Now().Add(ttl),
		Scope:  scope,
	}

	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return nil, err
	}

	token.Plaintext = base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	hash := sha256.Sum256([]byte(token.Plaintext))
	token.Hash = hash[:]

	return token, nil
}

func ValidateTokenPlaintext(v *validator.Validator, tokenPlaintext string) {
	v.Check(tokenPlaintext != "", "token", "must be provided")
	v.Check(len(tokenPlaintext) == 26, "token", "must be 26 bytes long")
}

type TokenModel struct {
	store store.Store
}

func tokenKey(hashHex, scope string) store.Filter {
	return store.Filter{"hash": hashHex, "scope": scope}
}

// New generates a token for the user, persists it, and returns it with the
// plaintext still attached for one-time delivery to the caller.
func (m TokenModel) New(ctx context.Context, email string, ttl time.Duration, scope string) (
	*Token, error) {
	token, err := generateToken(email, ttl, scope)
	if err != nil {
		return nil, err
	}

	record := tokenRecord{
		Hash:   hex.EncodeToString(token.Hash),
		Email:  token.Email,
		Expiry: token.Expiry,
		Scope:  token.Scope,
	}

	_, err = m.store.UpsertRow(ctx, TableTokens, tokenKey(record.Hash, record.Scope), record)
	if err != nil {
		return nil, err
	}

	return token, nil
}

// DeleteAllForUser removes every token the user holds in the given scope.
func (m TokenModel) DeleteAllForUser(ctx context.Context, scope, email string) error {
	docs, err := m.store.GetRows(ctx, TableTokens,
		store.Filter{"email": email, "scope": scope})
	if err != nil {
		return err
	}

	for _, doc := range docs {
		var record tokenRecord
		if err := json.Unmarshal(doc, &record); err != nil {
			return err
		}
		if _, err := m.store.DeleteRow(ctx, TableTokens,
			tokenKey(record.Hash, record.Scope)); err != nil {
			return err
		}
	}

	return nil
}
