package renderer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

var defaultHandler Handler = scalarHandler{widget: "textbox"}

func init() {
	registerHandler(scalarHandler{widget: "textbox"},
		model.TypeText, model.TypeEmail, model.TypePhone, model.TypeURL, model.TypeColor, model.TypeTime)
	registerHandler(scalarHandler{widget: "textarea"}, model.TypeTextarea)
	registerHandler(scalarHandler{widget: "numberbox"},
		model.TypeNumber, model.TypePercentage, model.TypeSlider, model.TypeRating,
		model.TypeStarRating, model.TypeEmojiRating, model.TypeLikertScale)
	registerHandler(scalarHandler{widget: "choice"}, model.TypeSelect, model.TypeMultipleChoice)
	registerHandler(scalarHandler{widget: "datebox"}, model.TypeDate)
	registerHandler(currencyHandler{}, model.TypeCurrency)
	registerHandler(booleanHandler{}, model.TypeBoolean)
	registerHandler(listHandler{}, model.TypeCheckbox, model.TypeRanking)
	registerHandler(recordHandler{widget: "daterange", keys: dateRangeKeys}, model.TypeDateRange)
	registerHandler(recordHandler{widget: "fieldset", keys: multiFieldKeys}, model.TypeMultiField)
	registerHandler(recordHandler{widget: "fieldset", keys: addressKeys}, model.TypeAddress)
	registerHandler(recordHandler{widget: "grid", keys: matrixKeys}, model.TypeMatrix)
	registerHandler(canvasHandler{}, model.TypeSignature, model.TypeDrawing)
	registerHandler(fileHandler{}, model.TypeFileUpload, model.TypeVideoUpload)
}

// scalarHandler covers every type whose answer is a single string. Numeric
// payloads from loose clients are stringified rather than rejected.
type scalarHandler struct {
	widget string
}

func (h scalarHandler) Widget() string { return h.widget }

func (h scalarHandler) Parse(q model.Question, raw json.RawMessage) (answer.Value, error) {
	s, err := parseScalar(raw)
	if err != nil {
		return answer.Value{}, err
	}
	return answer.Text(s), nil
}

func (h scalarHandler) Display(q model.Question, v answer.Value) string {
	return v.Text()
}

func parseScalar(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), nil
	}
	return "", errors.New("renderer: expected a scalar answer")
}

type currencyHandler struct{}

func (currencyHandler) Widget() string { return "numberbox" }

func (currencyHandler) Parse(q model.Question, raw json.RawMessage) (answer.Value, error) {
	s, err := parseScalar(raw)
	if err != nil {
		return answer.Value{}, err
	}
	return answer.Text(s), nil
}

func (currencyHandler) Display(q model.Question, v answer.Value) string {
	if v.Text() == "" {
		return ""
	}
	if q.Currency != "" {
		return q.Currency + " " + v.Text()
	}
	return v.Text()
}

type booleanHandler struct{}

func (booleanHandler) Widget() string { return "toggle" }

func (booleanHandler) Parse(q model.Question, raw json.RawMessage) (answer.Value, error) {
	s, err := parseScalar(raw)
	if err != nil {
		return answer.Value{}, err
	}
	return answer.Text(s), nil
}

func (booleanHandler) Display(q model.Question, v answer.Value) string {
	switch v.Text() {
	case "true":
		if q.TrueLabel != "" {
			return q.TrueLabel
		}
		return "Yes"
	case "false":
		if q.FalseLabel != "" {
			return q.FalseLabel
		}
		return "No"
	}
	return ""
}

// listHandler covers answers shaped as an array of strings.
type listHandler struct{}

func (listHandler) Widget() string { return "multi-choice" }

func (listHandler) Parse(q model.Question, raw json.RawMessage) (answer.Value, error) {
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return answer.Value{}, errors.Wrap(err, "renderer: expected an array of strings")
	}
	return answer.List(items...), nil
}

func (listHandler) Display(q model.Question, v answer.Value) string {
	return strings.Join(v.List(), ", ")
}

type recordKey struct {
	id    string
	label string
}

// recordHandler covers answers shaped as a string-keyed record. keys yields
// the declared entries in display order; unknown keys in the payload are kept
// as-is since matrix quantity companions are derived, not declared.
type recordHandler struct {
	widget string
	keys   func(q model.Question) []recordKey
}

func (h recordHandler) Widget() string { return h.widget }

func (h recordHandler) Parse(q model.Question, raw json.RawMessage) (answer.Value, error) {
	var record map[string]string
	if err := json.Unmarshal(raw, &record); err != nil {
		return answer.Value{}, errors.Wrap(err, "renderer: expected a string record")
	}
	return answer.Record(record), nil
}

func (h recordHandler) Display(q model.Question, v answer.Value) string {
	var parts []string
	for _, key := range h.keys(q) {
		if val := v.Get(key.id); val != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", key.label, val))
		}
	}
	return strings.Join(parts, "; ")
}

func dateRangeKeys(q model.Question) []recordKey {
	start, end := q.StartLabel, q.EndLabel
	if start == "" {
		start = "Start"
	}
	if end == "" {
		end = "End"
	}
	return []recordKey{{"startDate", start}, {"endDate", end}}
}

func multiFieldKeys(q model.Question) []recordKey {
	keys := make([]recordKey, len(q.Fields))
	for i, f := range q.Fields {
		keys[i] = recordKey{f.ID, f.Label}
	}
	return keys
}

func addressKeys(model.Question) []recordKey {
	return []recordKey{
		{"street", "Street"},
		{"city", "City"},
		{"state", "State"},
		{"zipCode", "ZIP"},
		{"country", "Country"},
	}
}

func matrixKeys(q model.Question) []recordKey {
	keys := make([]recordKey, 0, 2*len(q.Rows))
	for _, row := range q.Rows {
		keys = append(keys, recordKey{row, row}, recordKey{row + "_quantity", row + " quantity"})
	}
	return keys
}

// canvasHandler covers freehand capture types: the serialized value is a
// data-URL image produced on pointer release, and clear emits an empty string.
type canvasHandler struct{}

func (canvasHandler) Widget() string { return "canvas" }

func (canvasHandler) Parse(q model.Question, raw json.RawMessage) (answer.Value, error) {
	s, err := parseScalar(raw)
	if err != nil {
		return answer.Value{}, err
	}
	if s != "" && !strings.HasPrefix(s, "data:image/") {
		return answer.Value{}, errors.New("renderer: expected an embedded image")
	}
	return answer.Text(s), nil
}

func (canvasHandler) Display(q model.Question, v answer.Value) string {
	if v.Text() == "" {
		return ""
	}
	return "(captured)"
}

type fileHandler struct{}

func (fileHandler) Widget() string { return "dropzone" }

func (fileHandler) Parse(q model.Question, raw json.RawMessage) (answer.Value, error) {
	return answer.Value{}, errors.New("renderer: file answers travel through ParseFiles")
}

func (fileHandler) Display(q model.Question, v answer.Value) string { return "" }
