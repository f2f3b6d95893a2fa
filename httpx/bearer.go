package httpx

import (
	"database/sql"

	"github.com/go-chi/oauth"

	"github.com/Eslamsamyx/kayanlive-questionnaire/config"
)

// NewBearerServer builds the token endpoint backed by the admin credentials
// tables.
func NewBearerServer(db *sql.DB, cfg config.Config) *oauth.BearerServer {
	return oauth.NewBearerServer(cfg.TokenSecret, cfg.TokenTTL, CredentialsVerifier(db), nil)
}
