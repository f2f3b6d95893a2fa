package routes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/pkg/errors"

	"github.com/Eslamsamyx/kayanlive-questionnaire/app"
	"github.com/Eslamsamyx/kayanlive-questionnaire/httpx"
	"github.com/Eslamsamyx/kayanlive-questionnaire/log"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
	"github.com/Eslamsamyx/kayanlive-questionnaire/store"
)

type submissionPage struct {
	Submissions []model.Submission `json:"submissions"`
	NextCursor  string             `json:"nextCursor,omitempty"`
}

func ListSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			var err error
			limit, err = strconv.Atoi(raw)
			if err != nil {
				httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_query_param.limit")
				return
			}
		}
		cursor := r.URL.Query().Get("cursor")

		submissions, nextCursor, err := app.Store.ListSubmissions(r.Context(), limit, cursor)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_query_param.cursor")
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}

		render.JSON(w, r, submissionPage{
			Submissions: submissions,
			NextCursor:  nextCursor,
		})
	}
}

func GetSubmissionById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		submission, err := app.Store.GetSubmission(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_submission", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_submission", err)
			return
		}

		render.JSON(w, r, submission)
	}
}

func GetStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := app.Store.Stats(r.Context())
		if err != nil {
			httpx.LogInternalError(w, "db.get_stats", err)
			return
		}

		render.JSON(w, r, stats)
	}
}
