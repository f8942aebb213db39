package hooks

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hoist-run/hoist/pkg/config"
	"github.com/hoist-run/hoist/pkg/enum"
	"github.com/hoist-run/hoist/pkg/impl/logging"
	"github.com/hoist-run/hoist/pkg/impl/modules"
	"github.com/hoist-run/hoist/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.etcd.io/bbolt"
)

func TestManagerJournalsLifecycle(t *testing.T) {
	flaky := newTestHook()
	flaky.err = fmt.Errorf("boom")
	catalog := modules.NewCatalog()
	require.NoError(t, catalog.Register("flaky", func() (types.Hook, error) { return flaky, nil }))

	lg := zerolog.Nop()
	jc := config.JournalConfig{Enabled: true, Path: filepath.Join(t.TempDir(), "hooks.db")}
	m, err := New(&Options{Journal: jc}, catalog, &lg)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Load("flaky"))
	m.DecorateLaunchTaskLabels(&types.TaskInfo{Uid: "task-1"}, &types.FrameworkInfo{}, &types.AgentInfo{})
	require.NoError(t, m.Unload("flaky"))

	entries, err := m.journal.Entries(time.Now())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, enum.HookLoaded, entries[0].Event)
	require.Equal(t, enum.HookInvokeFailed, entries[1].Event)
	require.Equal(t, enum.HookUnloaded, entries[2].Event)
}

func TestJournal(t *testing.T) {
	suite.Run(t, new(JournalSuite))
}

type JournalSuite struct {
	suite.Suite
	tmpDir  string
	journal *Journal
}

func (s *JournalSuite) SetupSuite() {
	var err error
	s.tmpDir, err = os.MkdirTemp("", "hook-journal-test")
	s.Require().NoError(err)
}

func (s *JournalSuite) TearDownSuite() {
	_ = os.RemoveAll(s.tmpDir)
}

func (s *JournalSuite) SetupTest() {
	path := filepath.Join(s.tmpDir, fmt.Sprintf("journal-%v.db", time.Now().UnixNano()))
	var err error
	s.journal, err = NewJournal(config.JournalConfig{Path: path, MaxDays: 3}, logging.NewDefaultLogger(nil))
	s.Require().NoError(err)
}

func (s *JournalSuite) TearDownTest() {
	_ = s.journal.Close()
}

func (s *JournalSuite) TestRecordAndEntries() {
	s.journal.Record(enum.HookLoaded, "labeler", "", nil)
	s.journal.Record(enum.HookInvokeFailed, "labeler", "launch task label decorator", fmt.Errorf("boom"))
	s.journal.Record(enum.HookUnloaded, "labeler", "", nil)

	entries, err := s.journal.Entries(time.Now())
	s.Require().NoError(err)
	s.Require().Len(entries, 3)

	s.Equal(enum.HookLoaded, entries[0].Event)
	s.Equal(enum.HookInvokeFailed, entries[1].Event)
	s.Equal("launch task label decorator", entries[1].Site)
	s.Equal("boom", entries[1].Error)
	s.Equal(enum.HookUnloaded, entries[2].Event)
	for _, e := range entries {
		s.Equal("labeler", e.Hook)
		s.NotEmpty(e.Uid)
	}
}

func (s *JournalSuite) TestEntriesOnEmptyDay() {
	entries, err := s.journal.Entries(time.Now().AddDate(0, 0, -30))
	s.NoError(err)
	s.Empty(entries)
}

func (s *JournalSuite) TestPruneKeepsNewestDays() {
	// Seed buckets for the past five days, oldest first.
	err := s.journal.db.Update(func(tx *bbolt.Tx) error {
		for i := 5; i >= 1; i-- {
			day := time.Now().AddDate(0, 0, -i).Format(enum.DateFormat)
			if _, err := tx.CreateBucketIfNotExists([]byte(day)); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)

	s.Require().NoError(s.journal.Prune(2))

	days, err := s.journal.Days()
	s.Require().NoError(err)
	s.Require().Len(days, 2)
	s.Equal(time.Now().AddDate(0, 0, -2).Format(enum.DateFormat), days[0])
	s.Equal(time.Now().AddDate(0, 0, -1).Format(enum.DateFormat), days[1])
}

func (s *JournalSuite) TestRecordPrunesOldDays() {
	err := s.journal.db.Update(func(tx *bbolt.Tx) error {
		for i := 10; i >= 1; i-- {
			day := time.Now().AddDate(0, 0, -i).Format(enum.DateFormat)
			if _, err := tx.CreateBucketIfNotExists([]byte(day)); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)

	// Recording stays within the configured MaxDays of 3.
	s.journal.Record(enum.HookLoaded, "labeler", "", nil)

	days, err := s.journal.Days()
	s.Require().NoError(err)
	s.Len(days, 3)
}

func (s *JournalSuite) TestNilJournalIsDisabled() {
	var j *Journal
	j.Record(enum.HookLoaded, "labeler", "", nil)

	entries, err := j.Entries(time.Now())
	s.NoError(err)
	s.Empty(entries)
	s.NoError(j.Prune(1))
	s.NoError(j.Close())
}
