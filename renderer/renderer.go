// Package renderer is the per-type rendering contract. For every question
// type there is one handler, registered in a lookup table keyed by type tag:
// it describes the interactive control a thin client should draw (widget kind,
// current value, display string) and normalizes raw client payloads into typed
// answer values.
package renderer

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

// Control is the type-appropriate interactive representation of one question,
// serialized to the client as-is.
type Control struct {
	QuestionID int              `json:"questionId"`
	Widget     string           `json:"widget"`
	Question   model.Question   `json:"question"`
	Value      answer.Value     `json:"value"`
	Display    string           `json:"display,omitempty"`
	Files      []model.FileMeta `json:"files,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// Handler is one variant of the rendering contract.
type Handler interface {
	// Widget names the control kind the client should draw.
	Widget() string
	// Parse translates a raw client event payload into a value of the
	// correct shape for this type.
	Parse(q model.Question, raw json.RawMessage) (answer.Value, error)
	// Display renders the current value as a short human-readable string.
	Display(q model.Question, v answer.Value) string
}

var handlers = map[string]Handler{}

func registerHandler(h Handler, types ...string) {
	for _, t := range types {
		handlers[t] = h
	}
}

func lookup(questionType string) Handler {
	if h, ok := handlers[questionType]; ok {
		return h
	}
	return defaultHandler
}

// Render produces the control descriptor for a question with its current
// answer state. The caller fills in Error when the field is touched and
// invalid.
func Render(q model.Question, v answer.Value, files []model.FileMeta) Control {
	h := lookup(q.Type)
	return Control{
		QuestionID: q.ID,
		Widget:     h.Widget(),
		Question:   q,
		Value:      v,
		Display:    h.Display(q, v),
		Files:      files,
	}
}

// ParseAnswer normalizes a raw answer payload by question type. File-typed
// questions report their state through ParseFiles instead.
func ParseAnswer(q model.Question, raw json.RawMessage) (answer.Value, error) {
	if q.Type == model.TypeFileUpload || q.Type == model.TypeVideoUpload {
		return answer.Value{}, errors.New("renderer: file answers travel through ParseFiles")
	}
	return lookup(q.Type).Parse(q, raw)
}

// ParseFiles accepts both payload shapes the client emits for file questions:
// a bare metadata array (picker selection) or an object with a "files" key
// (drag-and-drop). Both converge on the same list.
func ParseFiles(raw json.RawMessage) ([]model.FileMeta, error) {
	var list []model.FileMeta
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Files []model.FileMeta `json:"files"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errors.Wrap(err, "renderer: parse file payload")
	}
	return wrapped.Files, nil
}
