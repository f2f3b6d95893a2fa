package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// ListSubmissions pages through submissions newest-first. cursor is the id of
// the last submission of the previous page; an empty cursor starts at the
// top. nextCursor comes back empty on the last page.
func (s *Store) ListSubmissions(ctx context.Context, limit int, cursor string) (submissions []model.Submission, nextCursor string, err error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	query := `
		SELECT id, questionnaire_id, company_name, contact_person, email, industry, is_complete, submitted_at, created_at
		FROM submission`
	args := []any{}

	if cursor != "" {
		var createdAt time.Time
		err = s.db.QueryRowContext(ctx, `SELECT created_at FROM submission WHERE id = ?`, cursor).Scan(&createdAt)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", errors.Wrap(ErrNotFound, "list: cursor")
		}
		if err != nil {
			return nil, "", errors.Wrap(err, "list: resolve cursor")
		}
		query += ` WHERE created_at < ? OR (created_at = ? AND id < ?)`
		args = append(args, createdAt, createdAt, cursor)
	}

	// one extra row decides whether another page exists
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, "", errors.Wrap(err, "list: query")
	}
	defer rows.Close()

	submissions = []model.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, "", errors.Wrap(err, "list: scan")
		}
		submissions = append(submissions, sub)
	}
	if err = rows.Err(); err != nil {
		return nil, "", errors.Wrap(err, "list: rows")
	}

	if len(submissions) > limit {
		submissions = submissions[:limit]
		nextCursor = submissions[limit-1].ID
	}

	if err = s.attachDetails(ctx, submissions); err != nil {
		return nil, "", err
	}
	return submissions, nextCursor, nil
}

// GetSubmission fetches one submission with its answers (in question order)
// and file records. Returns ErrNotFound for unknown ids.
func (s *Store) GetSubmission(ctx context.Context, id string) (model.Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, questionnaire_id, company_name, contact_person, email, industry, is_complete, submitted_at, created_at
		FROM submission
		WHERE id = ?`,
		id,
	)
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Submission{}, ErrNotFound
	}
	if err != nil {
		return model.Submission{}, errors.Wrap(err, "get submission")
	}

	page := []model.Submission{sub}
	if err = s.attachDetails(ctx, page); err != nil {
		return model.Submission{}, err
	}
	return page[0], nil
}

// Stats aggregates the dashboard counters; recent means the last 7 days.
func (s *Store) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(CASE WHEN is_complete THEN 1 END),
			COUNT(CASE WHEN created_at >= ? THEN 1 END)
		FROM submission`,
		time.Now().Add(-7*24*time.Hour),
	).Scan(&stats.TotalSubmissions, &stats.CompletedSubmissions, &stats.RecentSubmissions)
	if err != nil {
		return model.Stats{}, errors.Wrap(err, "stats")
	}

	if stats.TotalSubmissions > 0 {
		stats.CompletionRate = int(float64(stats.CompletedSubmissions)/float64(stats.TotalSubmissions)*100 + 0.5)
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (model.Submission, error) {
	var sub model.Submission
	var companyName, contactPerson, email, industry sql.NullString
	var submittedAt sql.NullTime

	err := row.Scan(
		&sub.ID, &sub.QuestionnaireID,
		&companyName, &contactPerson, &email, &industry,
		&sub.IsComplete, &submittedAt, &sub.CreatedAt,
	)
	if err != nil {
		return model.Submission{}, err
	}

	sub.CompanyName = companyName.String
	sub.ContactPerson = contactPerson.String
	sub.Email = email.String
	sub.Industry = industry.String
	if submittedAt.Valid {
		t := submittedAt.Time
		sub.SubmittedAt = &t
	}
	sub.Answers = []model.SubmissionAnswer{}
	sub.UploadedFiles = []model.UploadedFile{}
	return sub, nil
}

// attachDetails loads answers and file records for a page of submissions.
func (s *Store) attachDetails(ctx context.Context, submissions []model.Submission) error {
	if len(submissions) == 0 {
		return nil
	}

	index := make(map[string]int, len(submissions))
	placeholders := make([]string, len(submissions))
	ids := make([]any, len(submissions))
	for i, sub := range submissions {
		index[sub.ID] = i
		placeholders[i] = "?"
		ids[i] = sub.ID
	}
	in := strings.Join(placeholders, ", ")

	rows, err := s.db.QueryContext(ctx, `
		SELECT submission_id, question_id, question_type, section, text_value, json_value
		FROM submission_answer
		WHERE submission_id IN (`+in+`)
		ORDER BY question_id`,
		ids...,
	)
	if err != nil {
		return errors.Wrap(err, "load answers")
	}
	defer rows.Close()

	for rows.Next() {
		var submissionID string
		var a model.SubmissionAnswer
		var textValue, jsonValue sql.NullString
		if err = rows.Scan(&submissionID, &a.QuestionID, &a.QuestionType, &a.Section, &textValue, &jsonValue); err != nil {
			return errors.Wrap(err, "scan answer")
		}
		if textValue.Valid {
			a.TextValue = &textValue.String
		}
		if jsonValue.Valid {
			if err = json.Unmarshal([]byte(jsonValue.String), &a.JSONValue); err != nil {
				return errors.Wrapf(err, "parse json value of question %d", a.QuestionID)
			}
		}
		i := index[submissionID]
		submissions[i].Answers = append(submissions[i].Answers, a)
	}
	if err = rows.Err(); err != nil {
		return errors.Wrap(err, "answers rows")
	}

	fileRows, err := s.db.QueryContext(ctx, `
		SELECT submission_id, question_id, file_name, original_name, file_size, mime_type, file_path
		FROM uploaded_file
		WHERE submission_id IN (`+in+`)
		ORDER BY id`,
		ids...,
	)
	if err != nil {
		return errors.Wrap(err, "load files")
	}
	defer fileRows.Close()

	for fileRows.Next() {
		var submissionID string
		var f model.UploadedFile
		if err = fileRows.Scan(&submissionID, &f.QuestionID, &f.FileName, &f.OriginalName, &f.FileSize, &f.MimeType, &f.FilePath); err != nil {
			return errors.Wrap(err, "scan file")
		}
		i := index[submissionID]
		submissions[i].UploadedFiles = append(submissions[i].UploadedFiles, f)
	}
	return errors.Wrap(fileRows.Err(), "file rows")
}
