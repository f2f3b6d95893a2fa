package httpx

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/oauth"
	"golang.org/x/crypto/bcrypt"
)

// refreshTokenTTL bounds how long a refresh token row stays redeemable.
const refreshTokenTTL = 365 * 24 * time.Hour

type credentialsVerifier struct {
	db *sql.DB
}

// CredentialsVerifier authenticates the admin account against the user table
// and tracks refresh tokens in the token table.
func CredentialsVerifier(db *sql.DB) oauth.CredentialsVerifier {
	return &credentialsVerifier{db}
}

func (cs *credentialsVerifier) ValidateUser(username string, password string, scope string, r *http.Request) error {
	var hash []byte
	err := cs.db.
		QueryRow("SELECT password_hash FROM user WHERE username = ?", username).
		Scan(&hash)
	if err != nil {
		return err
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}

func (cs *credentialsVerifier) StoreTokenID(tokenType oauth.TokenType, credential string, tokenID string, refreshTokenID string) error {
	_, err := cs.db.Exec(
		"INSERT INTO token (username, token_id, refresh_token_id, expiration) VALUES (?, ?, ?, ?)",
		credential,
		tokenID,
		refreshTokenID,
		time.Now().Add(refreshTokenTTL),
	)
	return err
}

func (cs *credentialsVerifier) ValidateTokenID(tokenType oauth.TokenType, credential string, tokenID string, refreshTokenID string) error {
	// one-shot: redeeming a refresh token consumes its row
	var expiration time.Time
	err := cs.db.
		QueryRow(`
			DELETE FROM token
			WHERE username = ?
				AND token_id = ?
				AND refresh_token_id = ?
			RETURNING expiration`,
			credential,
			tokenID,
			refreshTokenID,
		).
		Scan(&expiration)
	if err != nil {
		return errors.New("could not refresh")
	}
	if expiration.Before(time.Now()) {
		return errors.New("could not refresh")
	}
	return nil
}

func (*credentialsVerifier) AddClaims(tokenType oauth.TokenType, credential string, tokenID string, scope string, r *http.Request) (map[string]string, error) {
	return map[string]string{"roles": "admin"}, nil
}

func (*credentialsVerifier) AddProperties(tokenType oauth.TokenType, credential string, tokenID string, scope string, r *http.Request) (map[string]string, error) {
	return map[string]string{}, nil
}

func (*credentialsVerifier) ValidateClient(clientID string, clientSecret string, scope string, r *http.Request) error {
	return errors.New("not supported")
}
