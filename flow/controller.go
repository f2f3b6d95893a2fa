// Package flow drives one questionnaire session: the welcome/answering/
// submitting/complete lifecycle, the section cursor, the aggregated answer
// and file maps, and the hand-off to the submission gateway.
package flow

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/catalog"
	"github.com/Eslamsamyx/kayanlive-questionnaire/draft"
	"github.com/Eslamsamyx/kayanlive-questionnaire/log"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
	"github.com/Eslamsamyx/kayanlive-questionnaire/schedule"
	"github.com/Eslamsamyx/kayanlive-questionnaire/validation"
)

type State int

const (
	StateWelcome State = iota
	StateAnswering
	StateSubmitting
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateAnswering:
		return "answering"
	case StateSubmitting:
		return "submitting"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// DefaultValidationDelay is the quiescence window for live validation, so the
// message area is not thrashed while typing. The answer value itself is never
// debounced.
const DefaultValidationDelay = 300 * time.Millisecond

var (
	ErrNotAnswering      = errors.New("flow: not in answering state")
	ErrSectionIncomplete = errors.New("flow: required questions in this section are unanswered")
)

// Gateway is the boundary procedure submissions travel through.
type Gateway interface {
	Submit(ctx context.Context, req model.SubmissionRequest) (model.SubmissionResponse, error)
}

// ValidationListener observes debounced live-validation results for touched
// questions.
type ValidationListener func(questionID int, res validation.Result)

// Controller owns all session state. Interaction methods are safe to call
// from the event goroutine; internal timers synchronize through the mutex.
type Controller struct {
	questionnaire *catalog.Questionnaire
	sections      []catalog.Section
	gateway       Gateway
	saver         *draft.Saver
	listener      ValidationListener
	delay         time.Duration

	mu           sync.Mutex
	state        State
	section      int
	answers      map[int]answer.Value
	files        map[int][]model.FileMeta
	uploads      []model.UploadedFile
	touched      map[int]bool
	validators   map[int]*schedule.Task
	submissionID string
	lastError    string
}

type Option func(*Controller)

// WithSaver wires draft persistence; the controller takes ownership and
// closes it on teardown.
func WithSaver(s *draft.Saver) Option {
	return func(c *Controller) { c.saver = s }
}

func WithValidationListener(l ValidationListener) Option {
	return func(c *Controller) { c.listener = l }
}

func WithValidationDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

func New(questionnaire *catalog.Questionnaire, gateway Gateway, opts ...Option) *Controller {
	c := &Controller{
		questionnaire: questionnaire,
		sections:      questionnaire.Sections(),
		gateway:       gateway,
		delay:         DefaultValidationDelay,
		answers:       map[int]answer.Value{},
		files:         map[int][]model.FileMeta{},
		touched:       map[int]bool{},
		validators:    map[int]*schedule.Task{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) SectionIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.section
}

// CurrentSection returns the section under the cursor.
func (c *Controller) CurrentSection() catalog.Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sections[c.section]
}

func (c *Controller) SubmissionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submissionID
}

// LastError holds the failure banner text after a rejected submission.
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// Start begins answering. No side effects beyond the state change.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateWelcome {
		c.state = StateAnswering
	}
}

// Restart is the explicit "start another" action, the only way back from the
// terminal complete state.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateComplete {
		return
	}
	c.state = StateWelcome
	c.section = 0
	c.answers = map[int]answer.Value{}
	c.files = map[int][]model.FileMeta{}
	c.uploads = nil
	c.touched = map[int]bool{}
	c.submissionID = ""
	c.lastError = ""
}

// SetAnswer records the latest value for a question, marks it touched, and
// arms its debounced live validation. Values are applied in call order and
// never coalesced; only the validation display is debounced.
func (c *Controller) SetAnswer(questionID int, v answer.Value) {
	c.mu.Lock()
	c.answers[questionID] = v
	c.touched[questionID] = true
	task := c.validatorLocked(questionID)
	c.mu.Unlock()

	if task != nil {
		task.Reset()
	}
	c.persistDraft()
}

// ClearAnswer handles explicit clear actions (signature clear and the like).
func (c *Controller) ClearAnswer(questionID int) {
	c.SetAnswer(questionID, answer.Value{})
}

// SetFiles records the file handles reported for a file-typed question.
func (c *Controller) SetFiles(questionID int, files []model.FileMeta) {
	c.mu.Lock()
	c.files[questionID] = files
	c.touched[questionID] = true
	task := c.validatorLocked(questionID)
	c.mu.Unlock()

	if task != nil {
		task.Reset()
	}
	c.persistDraft()
}

// AttachUpload registers the metadata record the upload endpoint returned, to
// be carried in the submission payload.
func (c *Controller) AttachUpload(record model.UploadedFile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uploads = append(c.uploads, record)
}

func (c *Controller) Answer(questionID int) answer.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answers[questionID]
}

func (c *Controller) Files(questionID int) []model.FileMeta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.files[questionID]
}

func (c *Controller) Touched(questionID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched[questionID]
}

// validatorLocked lazily creates the per-question debounce task.
func (c *Controller) validatorLocked(questionID int) *schedule.Task {
	if c.listener == nil {
		return nil
	}
	task, ok := c.validators[questionID]
	if !ok {
		task = schedule.NewTask(c.delay, func() { c.validateNow(questionID) })
		c.validators[questionID] = task
	}
	return task
}

// validateNow runs when a question's debounce window elapses: it validates
// the latest value and reports the result upward.
func (c *Controller) validateNow(questionID int) {
	question, ok := c.questionnaire.Question(questionID)
	if !ok {
		return
	}

	c.mu.Lock()
	var res validation.Result
	if question.Type == model.TypeFileUpload || question.Type == model.TypeVideoUpload {
		res = validation.ValidateFiles(question, c.files[questionID])
	} else {
		res = validation.Validate(question, c.answers[questionID])
	}
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(questionID, res)
	}
}

// SectionSatisfied reports whether every required question in the current
// section has an answer of the right shape, which is what gates forward
// navigation.
func (c *Controller) SectionSatisfied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sectionSatisfiedLocked()
}

func (c *Controller) sectionSatisfiedLocked() bool {
	section := c.sections[c.section]
	for _, q := range section.Questions {
		if !q.Required {
			continue
		}

		switch q.Type {
		case model.TypeFileUpload, model.TypeVideoUpload:
			if len(c.files[q.ID]) == 0 {
				return false
			}
		case model.TypeMultiField:
			v := c.answers[q.ID]
			for _, field := range q.Fields {
				if field.Required && strings.TrimSpace(v.Get(field.ID)) == "" {
					return false
				}
			}
		default:
			if c.answers[q.ID].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Next advances to the following section, or, on the last section, assembles
// the payload and submits. On gateway failure the controller stays on the
// last section with every answer intact, ready for a retry.
func (c *Controller) Next(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateAnswering {
		c.mu.Unlock()
		return ErrNotAnswering
	}
	if !c.sectionSatisfiedLocked() {
		c.mu.Unlock()
		return ErrSectionIncomplete
	}

	if c.section < len(c.sections)-1 {
		c.section++
		c.mu.Unlock()
		c.persistDraft()
		return nil
	}

	req := c.payloadLocked()
	c.state = StateSubmitting
	c.lastError = ""
	c.mu.Unlock()

	resp, err := c.gateway.Submit(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateAnswering
		c.lastError = "Submission failed, please try again"
		return errors.Wrap(err, "flow: submit")
	}

	c.state = StateComplete
	c.submissionID = resp.SubmissionID
	if c.saver != nil {
		c.saver.Close()
	}
	return nil
}

// Previous steps back one section. Back navigation is never blocked and
// never submits.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateAnswering && c.section > 0 {
		c.section--
	}
}

// Advance is the keyboard shortcut: equivalent to Next when answering and the
// current section is satisfied, a no-op otherwise.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()
	ready := c.state == StateAnswering && c.sectionSatisfiedLocked()
	c.mu.Unlock()
	if !ready {
		return nil
	}
	return c.Next(ctx)
}

// Progress is the derived completion metric, recomputed on demand.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateWelcome:
		return 0
	case StateComplete:
		return 100
	}
	return float64(c.section+1) / float64(len(c.sections)) * 100
}

func (c *Controller) payloadLocked() model.SubmissionRequest {
	companyName, contactPerson, email, industry := catalog.ContactFields(c.answers)
	return model.SubmissionRequest{
		QuestionnaireID: c.questionnaire.ID,
		CompanyName:     companyName,
		ContactPerson:   contactPerson,
		Email:           email,
		Industry:        industry,
		Answers:         c.questionnaire.WireAnswers(c.answers),
		UploadedFiles:   append([]model.UploadedFile{}, c.uploads...),
		IsComplete:      true,
	}
}

// Snapshot captures the state mirrored by draft persistence: answers, file
// metadata and the section cursor.
func (c *Controller) Snapshot() draft.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() draft.Snapshot {
	answers := make(map[int]answer.Value, len(c.answers))
	for id, v := range c.answers {
		answers[id] = v
	}
	files := make(map[int][]model.FileMeta, len(c.files))
	for id, metas := range c.files {
		files[id] = append([]model.FileMeta{}, metas...)
	}
	return draft.Snapshot{
		QuestionnaireID: c.questionnaire.ID,
		Answers:         answers,
		Files:           files,
		SectionIndex:    c.section,
	}
}

// ApplyDraft restores a snapshot the user accepted: answers are repopulated
// exactly and the cursor returns to the saved section. Files are not
// restorable from a snapshot; the user re-attaches them.
func (c *Controller) ApplyDraft(snap draft.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting || c.state == StateComplete {
		return
	}

	c.answers = map[int]answer.Value{}
	for id, v := range snap.Answers {
		c.answers[id] = v
	}
	c.files = map[int][]model.FileMeta{}

	c.section = snap.SectionIndex
	if c.section < 0 {
		c.section = 0
	}
	if c.section > len(c.sections)-1 {
		c.section = len(c.sections) - 1
	}
	c.state = StateAnswering
}

func (c *Controller) persistDraft() {
	if c.saver == nil {
		return
	}
	if err := c.saver.Persist(c.Snapshot()); err != nil {
		log.Warnf("flow.draft_save: %s", err)
	}
}

// Close cancels every pending timer. Called on component teardown.
func (c *Controller) Close() {
	c.mu.Lock()
	tasks := make([]*schedule.Task, 0, len(c.validators))
	for _, t := range c.validators {
		tasks = append(tasks, t)
	}
	saver := c.saver
	c.mu.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
	if saver != nil {
		saver.Close()
	}
}
