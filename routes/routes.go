package routes

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	"github.com/Eslamsamyx/kayanlive-questionnaire/app"
	"github.com/Eslamsamyx/kayanlive-questionnaire/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	root.
		With(middlewares.CookieAuth(app.BearerServer), middlewares.Admin(app.TokenSecret)).
		Mount("/admin", servePrivateFiles("/admin"))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Get("/questionnaires/{id}", PublicGetQuestionnaire(app))
	api.Post("/questionnaires/{id}/submissions", PublicSubmitQuestionnaire(app))
	api.Post("/questionnaires/{id}/drafts", PublicSaveDraft(app))
	api.Post("/questionnaires/{id}/files", PublicUploadFiles(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.TokenSecret))

		r.Get("/submissions", ListSubmissions(app))
		r.Get("/submissions/{id}", GetSubmissionById(app))
		r.Get("/stats", GetStats(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}

func servePrivateFiles(path string) http.Handler {
	return http.StripPrefix(path, http.FileServer(http.Dir("private")))
}
