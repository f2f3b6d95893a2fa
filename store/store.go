// Package store is the submission gateway: the boundary through which
// finalized and draft payloads reach durable storage, plus the admin read
// surface over persisted submissions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
	"github.com/Eslamsamyx/kayanlive-questionnaire/sanitize"
)

// ErrNotFound signals a lookup for a submission id that does not exist.
var ErrNotFound = errors.New("submission not found")

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Submit persists a finalized answer set and returns its submission id.
// Every free-text field passes the sanitization boundary first; an email that
// fails the pattern is stored as absent rather than failing the submission.
func (s *Store) Submit(ctx context.Context, req model.SubmissionRequest) (model.SubmissionResponse, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return model.SubmissionResponse{}, errors.Wrap(err, "submit: new id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.SubmissionResponse{}, errors.Wrap(err, "submit: begin tx")
	}
	defer tx.Rollback()

	now := time.Now()
	var submittedAt *time.Time
	if req.IsComplete {
		submittedAt = &now
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO submission (id, questionnaire_id, company_name, contact_person, email, industry, is_complete, submitted_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(),
		req.QuestionnaireID,
		nullable(sanitize.CompanyName(req.CompanyName)),
		nullable(sanitize.Text(req.ContactPerson)),
		nullable(sanitize.Email(req.Email)),
		nullable(sanitize.Text(req.Industry)),
		req.IsComplete,
		submittedAt,
		now,
	)
	if err != nil {
		return model.SubmissionResponse{}, errors.Wrap(err, "submit: insert submission")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO submission_answer (submission_id, question_id, question_type, section, text_value, json_value)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return model.SubmissionResponse{}, errors.Wrap(err, "submit: prepare answers")
	}
	defer stmt.Close()

	for _, a := range req.Answers {
		textValue, jsonValue, err := sanitizeAnswer(a)
		if err != nil {
			return model.SubmissionResponse{}, errors.Wrapf(err, "submit: answer %d", a.QuestionID)
		}
		_, err = stmt.ExecContext(ctx, id.String(), a.QuestionID, a.QuestionType, a.Section, textValue, jsonValue)
		if err != nil {
			return model.SubmissionResponse{}, errors.Wrapf(err, "submit: insert answer %d", a.QuestionID)
		}
	}

	for _, f := range req.UploadedFiles {
		f = sanitize.FileMetadata(f)
		_, err = tx.ExecContext(ctx, `
			INSERT INTO uploaded_file (submission_id, question_id, file_name, original_name, file_size, mime_type, file_path)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id.String(), f.QuestionID, f.FileName, f.OriginalName, f.FileSize, f.MimeType, f.FilePath,
		)
		if err != nil {
			return model.SubmissionResponse{}, errors.Wrapf(err, "submit: insert file %q", f.FileName)
		}
	}

	if err = tx.Commit(); err != nil {
		return model.SubmissionResponse{}, errors.Wrap(err, "submit: commit")
	}

	return model.SubmissionResponse{
		Success:      true,
		SubmissionID: id.String(),
		Message:      "Questionnaire submitted successfully",
	}, nil
}

// SaveDraft upserts a partial answer set. A request without a draft id
// creates a new row; with one, the save is idempotent on that id.
func (s *Store) SaveDraft(ctx context.Context, req model.DraftRequest) (model.DraftResponse, error) {
	draftID := req.DraftID
	if draftID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return model.DraftResponse{}, errors.Wrap(err, "draft: new id")
		}
		draftID = id.String()
	}

	answers := make([]model.SubmissionAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		textValue, jsonValue, err := sanitizeAnswer(a)
		if err != nil {
			return model.DraftResponse{}, errors.Wrapf(err, "draft: answer %d", a.QuestionID)
		}
		a.TextValue, a.JSONValue = nil, nil
		if textValue.Valid {
			a.TextValue = &textValue.String
		}
		if jsonValue.Valid {
			var decoded any
			if err := json.Unmarshal([]byte(jsonValue.String), &decoded); err != nil {
				return model.DraftResponse{}, errors.Wrapf(err, "draft: answer %d", a.QuestionID)
			}
			a.JSONValue = decoded
		}
		answers = append(answers, a)
	}

	blob, err := json.Marshal(answers)
	if err != nil {
		return model.DraftResponse{}, errors.Wrap(err, "draft: marshal answers")
	}

	now := time.Now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO draft (id, questionnaire_id, company_name, contact_person, email, industry, answers, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			company_name = excluded.company_name,
			contact_person = excluded.contact_person,
			email = excluded.email,
			industry = excluded.industry,
			answers = excluded.answers,
			updated_at = excluded.updated_at`,
		draftID,
		req.QuestionnaireID,
		nullable(sanitize.CompanyName(req.CompanyName)),
		nullable(sanitize.Text(req.ContactPerson)),
		nullable(sanitize.Email(req.Email)),
		nullable(sanitize.Text(req.Industry)),
		string(blob),
		now,
		now,
	)
	if err != nil {
		return model.DraftResponse{}, errors.Wrap(err, "draft: upsert")
	}

	return model.DraftResponse{
		Success: true,
		DraftID: draftID,
		Message: "Draft saved",
	}, nil
}

// sanitizeAnswer enforces the exactly-one-of invariant on the wire record and
// runs the sanitization boundary over whichever side is populated.
func sanitizeAnswer(a model.SubmissionAnswer) (textValue, jsonValue sql.NullString, err error) {
	if a.TextValue != nil {
		textValue = sql.NullString{String: sanitize.Text(*a.TextValue), Valid: true}
		return textValue, jsonValue, nil
	}
	if a.JSONValue == nil {
		return textValue, jsonValue, nil
	}

	blob, err := json.Marshal(sanitize.JSON(a.JSONValue))
	if err != nil {
		return textValue, jsonValue, errors.Wrap(err, "marshal json value")
	}
	jsonValue = sql.NullString{String: string(blob), Valid: true}
	return textValue, jsonValue, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
