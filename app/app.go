package app

import (
	"database/sql"

	"github.com/go-chi/oauth"

	"github.com/Eslamsamyx/kayanlive-questionnaire/config"
	"github.com/Eslamsamyx/kayanlive-questionnaire/store"
)

type App struct {
	*sql.DB
	*oauth.BearerServer
	config.Config
	Store *store.Store
}
