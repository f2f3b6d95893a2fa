package routes

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/app"
	"github.com/Eslamsamyx/kayanlive-questionnaire/catalog"
	"github.com/Eslamsamyx/kayanlive-questionnaire/httpx"
	"github.com/Eslamsamyx/kayanlive-questionnaire/log"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
	"github.com/Eslamsamyx/kayanlive-questionnaire/renderer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/validation"
)

type sectionView struct {
	Name     string             `json:"name"`
	Controls []renderer.Control `json:"controls"`
}

type questionnaireView struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Sections    []sectionView `json:"sections"`
}

func PublicGetQuestionnaire(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		questionnaire, ok := catalog.Lookup(id)
		if !ok {
			httpx.LogNotFound(w, "get_questionnaire", id)
			return
		}

		view := questionnaireView{
			ID:          questionnaire.ID,
			Title:       questionnaire.Title,
			Description: questionnaire.Description,
		}
		for _, section := range questionnaire.Sections() {
			sv := sectionView{Name: section.Name}
			for _, q := range section.Questions {
				sv.Controls = append(sv.Controls, renderer.Render(q, answer.Value{}, nil))
			}
			view.Sections = append(view.Sections, sv)
		}

		render.JSON(w, r, view)
	}
}

func PublicSubmitQuestionnaire(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		questionnaire, ok := catalog.Lookup(id)
		if !ok {
			httpx.LogNotFound(w, "submit_questionnaire", id)
			return
		}

		req := model.SubmissionRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		req.QuestionnaireID = questionnaire.ID

		answers, files, ok := collectAnswers(w, questionnaire, req.Answers, req.UploadedFiles)
		if !ok {
			return
		}

		// answers are re-validated server side, the client pass is advisory
		failures := map[int]string{}
		for _, section := range questionnaire.Sections() {
			sectionFailures, _ := validation.ValidateSection(section.Questions, answers, files)
			for qid, msg := range sectionFailures {
				failures[qid] = msg
			}
		}
		if len(failures) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, map[string]any{
				"success": false,
				"errors":  failures,
			})
			return
		}

		resp, err := app.Store.Submit(r.Context(), req)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_submission", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, resp)
	}
}

func PublicSaveDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		questionnaire, ok := catalog.Lookup(id)
		if !ok {
			httpx.LogNotFound(w, "save_draft", id)
			return
		}

		req := model.DraftRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		req.QuestionnaireID = questionnaire.ID

		// drafts only need well-formed answers, not complete ones
		if _, _, ok := collectAnswers(w, questionnaire, req.Answers, nil); !ok {
			return
		}

		resp, err := app.Store.SaveDraft(r.Context(), req)
		if err != nil {
			httpx.LogInternalError(w, "db.upsert_draft", err)
			return
		}

		render.JSON(w, r, resp)
	}
}

// collectAnswers rebuilds typed answer state from wire records, rejecting
// answers for unknown question ids or with malformed values.
func collectAnswers(
	w http.ResponseWriter,
	questionnaire *catalog.Questionnaire,
	wire []model.SubmissionAnswer,
	uploaded []model.UploadedFile,
) (answers map[int]answer.Value, files map[int][]model.FileMeta, ok bool) {
	answers = map[int]answer.Value{}
	for _, a := range wire {
		if _, known := questionnaire.Question(a.QuestionID); !known {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"request.unknown_question", "unknown question id %d", a.QuestionID)
			return nil, nil, false
		}
		v, err := answer.FromWire(a.TextValue, a.JSONValue)
		if err != nil {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"request.parse_answer", "question %d: %s", a.QuestionID, err)
			return nil, nil, false
		}
		answers[a.QuestionID] = v
	}

	files = map[int][]model.FileMeta{}
	for _, f := range uploaded {
		files[f.QuestionID] = append(files[f.QuestionID], model.FileMeta{
			Name: f.OriginalName,
			Size: f.FileSize,
			Type: f.MimeType,
		})
	}
	return answers, files, true
}

const maxUploadMemory = 32 << 20

func PublicUploadFiles(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		questionnaire, ok := catalog.Lookup(id)
		if !ok {
			httpx.LogNotFound(w, "upload_files", id)
			return
		}

		err := r.ParseMultipartForm(maxUploadMemory)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_multipart")
			return
		}

		questionId, err := strconv.Atoi(r.FormValue("questionId"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_form_value.questionId")
			return
		}
		question, ok := questionnaire.Question(questionId)
		if !ok {
			httpx.LogNotFound(w, "upload_files.question", questionId)
			return
		}
		if question.Type != model.TypeFileUpload && question.Type != model.TypeVideoUpload {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.question_not_file")
			return
		}

		headers := r.MultipartForm.File["files"]
		if len(headers) == 0 {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.no_files")
			return
		}
		if !question.Multiple && len(headers) > 1 {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"request.too_many_files", "question %d accepts a single file", questionId)
			return
		}

		metas := make([]model.FileMeta, len(headers))
		for i, h := range headers {
			metas[i] = model.FileMeta{
				Name: h.Filename,
				Size: h.Size,
				Type: h.Header.Get("content-type"),
			}
		}
		if res := validation.ValidateFiles(question, metas); !res.IsValid {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, map[string]any{
				"success": false,
				"errors":  map[int]string{questionId: res.Error},
			})
			return
		}

		err = os.MkdirAll(app.UploadDir, 0o755)
		if err != nil {
			httpx.LogInternalError(w, "upload.mkdir", err)
			return
		}

		uploaded := make([]model.UploadedFile, 0, len(headers))
		for _, h := range headers {
			record, err := saveUpload(app.UploadDir, questionId, h)
			if err != nil {
				httpx.LogInternalError(w, "upload.save", err)
				return
			}
			uploaded = append(uploaded, record)
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"success": true,
			"files":   uploaded,
		})
	}
}

// saveUpload stores one part under a fresh uuid name, keeping the original
// extension so downloads get a sensible content type.
func saveUpload(dir string, questionId int, h *multipart.FileHeader) (model.UploadedFile, error) {
	src, err := h.Open()
	if err != nil {
		return model.UploadedFile{}, err
	}
	defer src.Close()

	id, err := uuid.NewV4()
	if err != nil {
		return model.UploadedFile{}, err
	}
	fileName := id.String() + filepath.Ext(h.Filename)
	filePath := filepath.Join(dir, fileName)

	dst, err := os.Create(filePath)
	if err != nil {
		return model.UploadedFile{}, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(filePath)
		return model.UploadedFile{}, err
	}

	return model.UploadedFile{
		QuestionID:   questionId,
		FileName:     fileName,
		OriginalName: h.Filename,
		FileSize:     size,
		MimeType:     h.Header.Get("content-type"),
		FilePath:     filePath,
	}, nil
}
