// Package draft mirrors in-progress answer state into durable local storage
// and, after a quiescence window, into the remote draft endpoint. Restored
// sessions get their answers back exactly; file content is never part of a
// snapshot, so attached files come back as needing re-upload.
package draft

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

const (
	// DefaultRetention is how long a snapshot stays restorable.
	DefaultRetention = 7 * 24 * time.Hour
	// keepBackups is the rolling window of per-save backup files.
	keepBackups = 3
)

// Snapshot is the partially completed state mirrored for recovery.
type Snapshot struct {
	QuestionnaireID string                   `json:"questionnaireId"`
	Answers         map[int]answer.Value     `json:"answers"`
	Files           map[int][]model.FileMeta `json:"files,omitempty"`
	SectionIndex    int                      `json:"sectionIndex"`
	DraftID         string                   `json:"draftId,omitempty"`
	SavedAt         time.Time                `json:"savedAt"`
}

// LocalStore keeps snapshots as JSON files under one directory, one main file
// per questionnaire id plus a rolling set of timestamped backups.
type LocalStore struct {
	dir       string
	retention time.Duration
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "draft: create dir")
	}
	return &LocalStore{dir: dir, retention: DefaultRetention}, nil
}

func (s *LocalStore) path(questionnaireID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("questionnaire_%s_draft.json", questionnaireID))
}

func (s *LocalStore) backupGlob(questionnaireID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("questionnaire_%s_draft_backup_*.json", questionnaireID))
}

// Save writes the snapshot and a timestamped backup, then prunes backups
// beyond the rolling window. Pruning failures are not fatal.
func (s *LocalStore) Save(snap Snapshot) error {
	snap.SavedAt = time.Now()

	blob, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "draft: marshal snapshot")
	}
	if err = os.WriteFile(s.path(snap.QuestionnaireID), blob, 0o644); err != nil {
		return errors.Wrap(err, "draft: write snapshot")
	}

	backup := filepath.Join(s.dir, fmt.Sprintf("questionnaire_%s_draft_backup_%020d.json",
		snap.QuestionnaireID, snap.SavedAt.UnixNano()))
	if err = os.WriteFile(backup, blob, 0o644); err != nil {
		return errors.Wrap(err, "draft: write backup")
	}

	s.prune(snap.QuestionnaireID)
	return nil
}

// Load returns the restore candidate for a questionnaire, if a snapshot
// exists and is younger than the retention window. Stale snapshots are
// discarded on the spot. The returned snapshot never carries files: restored
// sessions require the user to re-attach them.
func (s *LocalStore) Load(questionnaireID string) (Snapshot, bool, error) {
	blob, err := os.ReadFile(s.path(questionnaireID))
	if os.IsNotExist(err) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, errors.Wrap(err, "draft: read snapshot")
	}

	var snap Snapshot
	if err = json.Unmarshal(blob, &snap); err != nil {
		return Snapshot{}, false, errors.Wrap(err, "draft: parse snapshot")
	}

	if time.Since(snap.SavedAt) > s.retention {
		_ = s.Clear(questionnaireID)
		return Snapshot{}, false, nil
	}

	snap.Files = nil
	return snap, true, nil
}

// Clear removes the snapshot and all its backups.
func (s *LocalStore) Clear(questionnaireID string) error {
	err := os.Remove(s.path(questionnaireID))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "draft: remove snapshot")
	}

	backups, _ := filepath.Glob(s.backupGlob(questionnaireID))
	for _, b := range backups {
		_ = os.Remove(b)
	}
	return nil
}

func (s *LocalStore) prune(questionnaireID string) {
	backups, err := filepath.Glob(s.backupGlob(questionnaireID))
	if err != nil || len(backups) <= keepBackups {
		return
	}
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	for _, b := range backups[keepBackups:] {
		_ = os.Remove(b)
	}
}
