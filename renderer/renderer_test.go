package renderer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

func TestRenderWidgets(t *testing.T) {
	tests := []struct {
		questionType string
		widget       string
	}{
		{model.TypeText, "textbox"},
		{model.TypeEmail, "textbox"},
		{model.TypeTextarea, "textarea"},
		{model.TypeNumber, "numberbox"},
		{model.TypeCurrency, "numberbox"},
		{model.TypeSelect, "choice"},
		{model.TypeDate, "datebox"},
		{model.TypeBoolean, "toggle"},
		{model.TypeCheckbox, "multi-choice"},
		{model.TypeRanking, "multi-choice"},
		{model.TypeDateRange, "daterange"},
		{model.TypeMultiField, "fieldset"},
		{model.TypeAddress, "fieldset"},
		{model.TypeMatrix, "grid"},
		{model.TypeSignature, "canvas"},
		{model.TypeDrawing, "canvas"},
		{model.TypeFileUpload, "dropzone"},
		{model.TypeVideoUpload, "dropzone"},
		{"unknown-type", "textbox"},
	}
	for _, tt := range tests {
		t.Run(tt.questionType, func(t *testing.T) {
			c := Render(model.Question{ID: 1, Type: tt.questionType}, answer.Value{}, nil)
			assert.Equal(t, tt.widget, c.Widget)
			assert.Equal(t, 1, c.QuestionID)
		})
	}
}

func TestParseScalarShapes(t *testing.T) {
	q := model.Question{Type: model.TypeNumber}

	v, err := ParseAnswer(q, json.RawMessage(`"42"`))
	require.NoError(t, err)
	assert.Equal(t, "42", v.Text())

	// loose clients send bare numbers and booleans
	v, err = ParseAnswer(q, json.RawMessage(`42.5`))
	require.NoError(t, err)
	assert.Equal(t, "42.5", v.Text())

	v, err = ParseAnswer(model.Question{Type: model.TypeBoolean}, json.RawMessage(`true`))
	require.NoError(t, err)
	assert.Equal(t, "true", v.Text())

	_, err = ParseAnswer(q, json.RawMessage(`["not","scalar"]`))
	assert.Error(t, err)
}

func TestParseListAndRecord(t *testing.T) {
	v, err := ParseAnswer(model.Question{Type: model.TypeCheckbox}, json.RawMessage(`["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v.List())

	_, err = ParseAnswer(model.Question{Type: model.TypeCheckbox}, json.RawMessage(`"scalar"`))
	assert.Error(t, err)

	v, err = ParseAnswer(model.Question{Type: model.TypeMatrix}, json.RawMessage(`{"Stage":"yes","Stage_quantity":"2"}`))
	require.NoError(t, err)
	assert.Equal(t, "yes", v.Get("Stage"))
	assert.Equal(t, "2", v.Get("Stage_quantity"))
}

func TestParseCanvas(t *testing.T) {
	q := model.Question{Type: model.TypeSignature}

	v, err := ParseAnswer(q, json.RawMessage(`"data:image/png;base64,iVBOR"`))
	require.NoError(t, err)
	assert.Contains(t, v.Text(), "data:image/")

	// clear action
	v, err = ParseAnswer(q, json.RawMessage(`""`))
	require.NoError(t, err)
	assert.Equal(t, "", v.Text())

	_, err = ParseAnswer(q, json.RawMessage(`"just text"`))
	assert.Error(t, err)
}

func TestParseAnswerRejectsFileTypes(t *testing.T) {
	_, err := ParseAnswer(model.Question{Type: model.TypeFileUpload}, json.RawMessage(`[]`))
	assert.Error(t, err)
	_, err = ParseAnswer(model.Question{Type: model.TypeVideoUpload}, json.RawMessage(`[]`))
	assert.Error(t, err)
}

func TestParseFilesBothShapes(t *testing.T) {
	bare := json.RawMessage(`[{"name":"brief.pdf","size":1024,"type":"application/pdf"}]`)
	files, err := ParseFiles(bare)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "brief.pdf", files[0].Name)
	assert.Equal(t, int64(1024), files[0].Size)

	wrapped := json.RawMessage(`{"files":[{"name":"a.png","size":10,"type":"image/png"},{"name":"b.png","size":20,"type":"image/png"}]}`)
	files, err = ParseFiles(wrapped)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	_, err = ParseFiles(json.RawMessage(`"nope"`))
	assert.Error(t, err)
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		q    model.Question
		v    answer.Value
		want string
	}{
		{"scalar", model.Question{Type: model.TypeText}, answer.Text("hello"), "hello"},
		{"currency with unit", model.Question{Type: model.TypeCurrency, Currency: "AED"}, answer.Text("1000"), "AED 1000"},
		{"currency bare", model.Question{Type: model.TypeCurrency}, answer.Text("1000"), "1000"},
		{"currency empty", model.Question{Type: model.TypeCurrency, Currency: "AED"}, answer.Value{}, ""},
		{"boolean default labels", model.Question{Type: model.TypeBoolean}, answer.Text("true"), "Yes"},
		{"boolean custom labels", model.Question{Type: model.TypeBoolean, TrueLabel: "Indoor", FalseLabel: "Outdoor"}, answer.Text("false"), "Outdoor"},
		{"boolean unanswered", model.Question{Type: model.TypeBoolean}, answer.Value{}, ""},
		{"list", model.Question{Type: model.TypeCheckbox}, answer.List("LED Wall", "Kiosk"), "LED Wall, Kiosk"},
		{"date range", model.Question{Type: model.TypeDateRange}, answer.Record(map[string]string{
			"startDate": "2026-09-01", "endDate": "2026-09-03",
		}), "Start: 2026-09-01; End: 2026-09-03"},
		{"signature captured", model.Question{Type: model.TypeSignature}, answer.Text("data:image/png;base64,x"), "(captured)"},
		{"signature empty", model.Question{Type: model.TypeSignature}, answer.Value{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Render(tt.q, tt.v, nil)
			assert.Equal(t, tt.want, c.Display)
		})
	}
}

func TestDisplayMatrixOrder(t *testing.T) {
	q := model.Question{Type: model.TypeMatrix, Rows: []string{"Stage", "Lounge"}}
	v := answer.Record(map[string]string{
		"Lounge":          "yes",
		"Lounge_quantity": "2",
		"Stage":           "no",
	})
	c := Render(q, v, nil)
	// declared row order, not map order
	assert.Equal(t, "Stage: no; Lounge: yes; Lounge quantity: 2", c.Display)
}
