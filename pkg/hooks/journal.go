package hooks

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hoist-run/hoist/pkg/config"
	"github.com/hoist-run/hoist/pkg/enum"
	"github.com/hoist-run/hoist/pkg/types"
	"github.com/satori/uuid"
	"go.etcd.io/bbolt"
)

var (
	DefaultJournalPath    = "./hooks.db"
	DefaultJournalMaxDays = 7
)

var BoltDBOption = &bbolt.Options{
	Timeout:      time.Second,
	NoGrowSync:   false,
	FreelistType: bbolt.FreelistArrayType,
}

// JournalEntry is one recorded registry or hook event.
type JournalEntry struct {
	Uid       string         `json:"uid"`
	Event     enum.HookEvent `json:"event"`
	Hook      string         `json:"hook"`
	Site      string         `json:"site,omitempty"`
	Error     string         `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func (e *JournalEntry) Key() []byte {
	return []byte(fmt.Sprintf("%v", e.Timestamp.UnixNano()))
}

// Journal is an optional local record of hook module lifecycle and runtime
// failures, one bbolt bucket per day. It is diagnostics only: journaling
// errors are logged and never surfaced to callers, and a nil Journal is a
// valid disabled journal.
type Journal struct {
	db      *bbolt.DB
	maxDays int
	lg      types.Logger
}

func NewJournal(jc config.JournalConfig, lg types.Logger) (*Journal, error) {
	path := jc.Path
	if path == "" {
		path = DefaultJournalPath
	}
	maxDays := jc.MaxDays
	if maxDays <= 0 {
		maxDays = DefaultJournalMaxDays
	}

	db, err := bbolt.Open(path, os.ModePerm, BoltDBOption)
	if err != nil {
		return nil, fmt.Errorf("error opening hook journal db file (%v): %w", path, err)
	}
	return &Journal{db: db, maxDays: maxDays, lg: lg}, nil
}

// Record appends an entry to today's bucket, pruning old buckets as a side
// effect. Best effort: failures are logged only.
func (j *Journal) Record(ev enum.HookEvent, hook, site string, cause error) {
	if j == nil {
		return
	}

	e := &JournalEntry{
		Uid:       uuid.NewV4().String(),
		Event:     ev,
		Hook:      hook,
		Site:      site,
		Timestamp: time.Now(),
	}
	if cause != nil {
		e.Error = cause.Error()
	}

	err := j.db.Update(func(tx *bbolt.Tx) error {
		day, err := tx.CreateBucketIfNotExists([]byte(e.Timestamp.Format(enum.DateFormat)))
		if err != nil {
			return err
		}
		byt, err := json.Marshal(e)
		if err != nil {
			return err
		}
		return day.Put(e.Key(), byt)
	})
	if err != nil {
		j.lg.Log(types.LevelWarn, "error", err, "event", string(ev), "hook", hook,
			"message", "failed to record hook journal entry")
		return
	}

	if err = j.Prune(j.maxDays); err != nil {
		j.lg.Log(types.LevelWarn, "error", err, "message", "failed to prune hook journal")
	}
}

// Entries returns the entries recorded on the given day, oldest first.
func (j *Journal) Entries(day time.Time) (entries []JournalEntry, err error) {
	if j == nil {
		return nil, nil
	}

	err = j.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(day.Format(enum.DateFormat)))
		if b == nil {
			return nil
		}

		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var e JournalEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	return
}

// Days returns the days having journal entries, oldest first.
func (j *Journal) Days() (days []string, err error) {
	if j == nil {
		return nil, nil
	}

	err = j.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			days = append(days, string(name))
			return nil
		})
	})
	sort.Strings(days)
	return
}

// Prune drops the oldest daily buckets until at most keep remain.
func (j *Journal) Prune(keep int) error {
	if j == nil {
		return nil
	}

	days, err := j.Days()
	if err != nil {
		return err
	}
	if len(days) <= keep {
		return nil
	}

	return j.db.Update(func(tx *bbolt.Tx) error {
		for _, day := range days[:len(days)-keep] {
			if err := tx.DeleteBucket([]byte(day)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}
