// Package catalog is the static question definition table. Questionnaires are
// registered at init time and never mutated afterwards; every accessor is
// read-only.
package catalog

import (
	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

// DefaultSection is the bucket for questions without a section label.
const DefaultSection = "General"

type Questionnaire struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`

	byID     map[int]int // question id -> index into Questions
	sections []Section
}

// Section is a named, ordered group of questions presented as one step.
type Section struct {
	Name      string           `json:"name"`
	Questions []model.Question `json:"questions"`
}

var registry = map[string]*Questionnaire{}

func register(q *Questionnaire) {
	q.index()
	registry[q.ID] = q
}

// New assembles an unregistered questionnaire, deriving its id and section
// indexes.
func New(id, title, description string, questions []model.Question) *Questionnaire {
	q := &Questionnaire{ID: id, Title: title, Description: description, Questions: questions}
	q.index()
	return q
}

func (q *Questionnaire) index() {
	q.byID = make(map[int]int, len(q.Questions))
	for i, question := range q.Questions {
		if _, dup := q.byID[question.ID]; dup {
			panic("catalog: duplicate question id in " + q.ID)
		}
		q.byID[question.ID] = i
	}
	q.sections = deriveSections(q.Questions)
}

// deriveSections groups questions by section label, preserving the order in
// which each label first occurs. Empty labels collapse into DefaultSection.
func deriveSections(questions []model.Question) []Section {
	index := map[string]int{}
	var sections []Section
	for _, q := range questions {
		name := q.Section
		if name == "" {
			name = DefaultSection
		}
		i, ok := index[name]
		if !ok {
			i = len(sections)
			index[name] = i
			sections = append(sections, Section{Name: name})
		}
		sections[i].Questions = append(sections[i].Questions, q)
	}
	return sections
}

// Lookup returns the registered questionnaire with the given id.
func Lookup(id string) (*Questionnaire, bool) {
	q, ok := registry[id]
	return q, ok
}

// Question returns the question with the given id, by value.
func (q *Questionnaire) Question(id int) (model.Question, bool) {
	i, ok := q.byID[id]
	if !ok {
		return model.Question{}, false
	}
	return q.Questions[i], true
}

// Sections returns the derived section list in first-occurrence order.
func (q *Questionnaire) Sections() []Section {
	return q.sections
}

// WireAnswers converts an in-memory answer map into wire records, in catalog
// order. Unanswered questions are skipped; scalar answers populate textValue
// and structured ones jsonValue.
func (q *Questionnaire) WireAnswers(answers map[int]answer.Value) []model.SubmissionAnswer {
	records := make([]model.SubmissionAnswer, 0, len(answers))
	for _, question := range q.Questions {
		v, ok := answers[question.ID]
		if !ok || v.Kind() == answer.KindNone {
			continue
		}
		section := question.Section
		if section == "" {
			section = DefaultSection
		}
		textValue, jsonValue := v.Wire()
		records = append(records, model.SubmissionAnswer{
			QuestionID:   question.ID,
			QuestionType: question.Type,
			Section:      section,
			TextValue:    textValue,
			JSONValue:    jsonValue,
		})
	}
	return records
}

func num(v float64) *float64 { return &v }
