package draft

import (
	"context"
	"sync"
	"time"

	"github.com/Eslamsamyx/kayanlive-questionnaire/catalog"
	"github.com/Eslamsamyx/kayanlive-questionnaire/log"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
	"github.com/Eslamsamyx/kayanlive-questionnaire/schedule"
)

// DefaultRemoteDelay is the quiescence window before a remote draft save.
const DefaultRemoteDelay = 5 * time.Second

// RemoteSaver is the slice of the submission gateway drafts travel through.
type RemoteSaver interface {
	SaveDraft(ctx context.Context, req model.DraftRequest) (model.DraftResponse, error)
}

// Saver mirrors snapshots locally on every call and schedules a debounced
// remote save that neither blocks nor fails the local one. The remote save is
// an idempotent upsert: the draft id returned by the first save keys every
// later one.
type Saver struct {
	local         *LocalStore
	remote        RemoteSaver
	questionnaire *catalog.Questionnaire
	task          *schedule.Task

	mu      sync.Mutex
	pending *Snapshot
	draftID string
}

func NewSaver(local *LocalStore, remote RemoteSaver, questionnaire *catalog.Questionnaire, delay time.Duration) *Saver {
	if delay <= 0 {
		delay = DefaultRemoteDelay
	}
	s := &Saver{
		local:         local,
		remote:        remote,
		questionnaire: questionnaire,
	}
	s.task = schedule.NewTask(delay, s.flushRemote)
	return s
}

// Persist mirrors the snapshot to local storage immediately and (re)schedules
// the remote save. The local write's error is the only one surfaced; remote
// failures are observed later and only logged, since the local copy already
// holds the data.
func (s *Saver) Persist(snap Snapshot) error {
	s.mu.Lock()
	if s.draftID != "" {
		snap.DraftID = s.draftID
	}
	s.pending = &snap
	s.mu.Unlock()

	err := s.local.Save(snap)
	s.task.Reset()
	return err
}

// DraftID returns the remote draft key once the first remote save succeeded.
func (s *Saver) DraftID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftID
}

// Flush forces a pending remote save to run now.
func (s *Saver) Flush() {
	s.task.Flush()
}

// Close cancels any pending remote save. Called on teardown.
func (s *Saver) Close() {
	s.task.Stop()
}

func (s *Saver) flushRemote() {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	draftID := s.draftID
	s.mu.Unlock()

	if snap == nil {
		return
	}

	companyName, contactPerson, email, industry := catalog.ContactFields(snap.Answers)
	resp, err := s.remote.SaveDraft(context.Background(), model.DraftRequest{
		QuestionnaireID: snap.QuestionnaireID,
		CompanyName:     companyName,
		ContactPerson:   contactPerson,
		Email:           email,
		Industry:        industry,
		Answers:         s.questionnaire.WireAnswers(snap.Answers),
		DraftID:         draftID,
	})
	if err != nil {
		// the local snapshot already holds the data; retry on next save
		log.Warnf("draft.remote_save: %s", err)
		return
	}

	s.mu.Lock()
	s.draftID = resp.DraftID
	s.mu.Unlock()
}
