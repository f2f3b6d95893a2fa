// Package validation maps a question definition plus a candidate answer to
// a valid/invalid result with a human-readable reason. All functions are pure:
// no I/O, no mutation, safe to call on every keystroke.
//
// Only the first failing rule's message is surfaced per field. Section-level
// aggregation is available through ValidateSection.
package validation

import (
	"time"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

// Result is the ephemeral outcome of one evaluation. Never persisted.
type Result struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

func valid() Result { return Result{IsValid: true} }

func invalid(msg string) Result { return Result{Error: msg} }

// Default length bounds applied when the question declares none.
const (
	defaultTextMin     = 1
	defaultTextMax     = 500
	defaultTextareaMax = 2000
	defaultPhoneMin    = 7
	defaultPhoneMax    = 20
)

// Questions whose dates must be today or later: event date and the two
// proposal deadlines of the project brief.
var futureDated = map[int]bool{
	8:  true,
	39: true,
	40: true,
}

// timeNow is swapped out by tests of the future-date rule.
var timeNow = time.Now

type rule func(q model.Question, v answer.Value) Result

// One handler per type tag; unknown tags fall through to validateDefault.
var rules = map[string]rule{
	model.TypeText:           validateText,
	model.TypeTextarea:       validateText,
	model.TypeEmail:          validateEmail,
	model.TypePhone:          validatePhone,
	model.TypeURL:            validateURL,
	model.TypeNumber:         validateNumber,
	model.TypeCurrency:       validateCurrency,
	model.TypePercentage:     validatePercentage,
	model.TypeSelect:         validateChoice,
	model.TypeMultipleChoice: validateChoice,
	model.TypeRating:         validateRating,
	model.TypeStarRating:     validateRating,
	model.TypeEmojiRating:    validateRating,
	model.TypeSlider:         validateSlider,
	model.TypeBoolean:        validateBoolean,
	model.TypeCheckbox:       validateSelections,
	model.TypeRanking:        validateSelections,
	model.TypeDate:           validateDate,
	model.TypeDateRange:      validateDateRange,
	model.TypeMultiField:     validateMultiField,
	model.TypeMatrix:         validateMatrix,
	model.TypeSignature:      validateSignature,
}

// Validate evaluates a value-shaped answer against its question. File-typed
// questions carry their answer as a file list and go through ValidateFiles.
func Validate(q model.Question, v answer.Value) Result {
	if q.Type == model.TypeFileUpload || q.Type == model.TypeVideoUpload {
		return ValidateFiles(q, nil)
	}
	r, ok := rules[q.Type]
	if !ok {
		r = validateDefault
	}
	return r(q, v)
}

// parseDate accepts the date shapes clients send for date answers.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOnly truncates to a calendar date so time-of-day never affects the
// today-or-later comparison.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
