package validation

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

// ValidateSection evaluates every question of a section. The returned map
// carries the first failing message per question id; the error aggregates all
// of them for callers that want the combined view.
func ValidateSection(questions []model.Question, answers map[int]answer.Value, files map[int][]model.FileMeta) (map[int]string, error) {
	failures := map[int]string{}
	var agg *multierror.Error

	for _, q := range questions {
		var res Result
		if q.Type == model.TypeFileUpload || q.Type == model.TypeVideoUpload {
			res = ValidateFiles(q, files[q.ID])
		} else {
			res = Validate(q, answers[q.ID])
		}
		if !res.IsValid {
			failures[q.ID] = res.Error
			agg = multierror.Append(agg, errors.Errorf("question %d: %s", q.ID, res.Error))
		}
	}

	return failures, agg.ErrorOrNil()
}
