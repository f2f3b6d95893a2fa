package draft

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func testSnapshot() Snapshot {
	return Snapshot{
		QuestionnaireID: "project-brief",
		Answers: map[int]answer.Value{
			1: answer.Text("Acme Events"),
			7: answer.List("LED Wall", "Kiosk"),
		},
		Files: map[int][]model.FileMeta{
			12: {{Name: "logo.png", Size: 1024, Type: "image/png"}},
		},
		SectionIndex: 2,
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(testSnapshot()))

	got, ok, err := s.Load("project-brief")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "project-brief", got.QuestionnaireID)
	assert.Equal(t, 2, got.SectionIndex)
	assert.Equal(t, "Acme Events", got.Answers[1].Text())
	assert.Equal(t, []string{"LED Wall", "Kiosk"}, got.Answers[7].List())
	assert.False(t, got.SavedAt.IsZero())
	// file content is not restorable, attachments come back empty
	assert.Nil(t, got.Files)
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Load("project-brief")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadStaleSnapshotIsDiscarded(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(testSnapshot()))

	// age the main file past retention
	path := s.path("project-brief")
	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(blob, &snap))
	snap.SavedAt = time.Now().Add(-8 * 24 * time.Hour)
	blob, err = json.Marshal(snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, blob, 0o644))

	_, ok, err := s.Load("project-brief")
	require.NoError(t, err)
	assert.False(t, ok)

	// discarding also removed the files
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	backups, _ := filepath.Glob(s.backupGlob("project-brief"))
	assert.Empty(t, backups)
}

func TestBackupsPrunedToThree(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 6; i++ {
		require.NoError(t, s.Save(testSnapshot()))
		time.Sleep(2 * time.Millisecond)
	}

	backups, err := filepath.Glob(s.backupGlob("project-brief"))
	require.NoError(t, err)
	assert.Len(t, backups, keepBackups)

	// latest snapshot still loads
	_, ok, err := s.Load("project-brief")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(testSnapshot()))
	require.NoError(t, s.Clear("project-brief"))

	_, ok, err := s.Load("project-brief")
	require.NoError(t, err)
	assert.False(t, ok)

	// clearing an absent draft is fine
	require.NoError(t, s.Clear("project-brief"))
}

func TestSnapshotsAreIsolatedByQuestionnaire(t *testing.T) {
	s := newTestStore(t)

	first := testSnapshot()
	second := testSnapshot()
	second.QuestionnaireID = "other-brief"
	second.SectionIndex = 5

	require.NoError(t, s.Save(first))
	require.NoError(t, s.Save(second))
	require.NoError(t, s.Clear("project-brief"))

	got, ok, err := s.Load("other-brief")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, got.SectionIndex)
}
