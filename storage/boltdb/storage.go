package boltdb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	planner "github.com/danielkim-905/schedule-planner"
)

type LoggerFn func(string, ...interface{})

type repo struct {
	d    *bolt.DB
	root []byte
	path string
	log  LoggerFn
	err  LoggerFn
}

const rootBucket = "schedule"

// DefaultFile is the database file name used under the app's storage path.
const DefaultFile = "schedule.bdb"

// Config
type Config struct {
	Path  string
	LogFn LoggerFn
	ErrFn LoggerFn
}

// New returns a new schedule repository
func New(c Config) *repo {
	b := repo{
		root: []byte(rootBucket),
		path: c.Path,
		log:  func(string, ...interface{}) {},
		err:  func(string, ...interface{}) {},
	}
	if c.ErrFn != nil {
		b.err = c.ErrFn
	}
	if c.LogFn != nil {
		b.log = c.LogFn
	}

	return &b
}

func (r *repo) open() error {
	var err error
	r.d, err = bolt.Open(r.path, 0600, nil)
	if err != nil {
		return fmt.Errorf("could not open db %s %w", r.path, err)
	}
	err = r.d.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(r.root)
		if err != nil {
			return fmt.Errorf("unable to create root bucket %s: %w", r.root, err)
		}
		if !root.Writable() {
			return fmt.Errorf("non writeable root bucket %s", r.root)
		}
		return nil
	})
	return err
}

// close closes the boltdb database if possible.
func (r *repo) close() error {
	if r.d == nil {
		return nil
	}
	return r.d.Close()
}

// SaveEntries appends entries to the schedule. Keys come from the bucket
// sequence so load order always matches the order entries were added in.
func (r *repo) SaveEntries(entries ...planner.Entry) error {
	var err error
	err = r.open()
	if err != nil {
		return err
	}
	defer r.close()

	return r.d.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		if !root.Writable() {
			return fmt.Errorf("non writeable bucket %s", r.root)
		}
		for _, e := range entries {
			raw, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("could not marshal entry: %w", err)
			}
			seq, err := root.NextSequence()
			if err != nil {
				return fmt.Errorf("could not get next sequence: %w", err)
			}
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, seq)
			if err = root.Put(key, raw); err != nil {
				return fmt.Errorf("could not store encoded entry: %w", err)
			}
			r.log("saved entry %s", e)
		}
		return nil
	})
}

// LoadEntries returns saved entries in insertion order. With days given only
// entries for those weekdays are returned.
func (r *repo) LoadEntries(days ...string) (planner.Schedule, error) {
	var err error
	err = r.open()
	if err != nil {
		return nil, err
	}
	defer r.close()

	entries := make(planner.Schedule, 0)
	err = r.d.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		c := root.Cursor()
		for key, raw := c.First(); key != nil; key, raw = c.Next() {
			e, err := loadItem(raw)
			if err != nil {
				r.err("error loading entry: %s", err)
				continue
			}
			if len(days) > 0 && !dayMatches(e.Day, days) {
				continue
			}
			entries = append(entries, e)
		}
		return nil
	})
	return entries, err
}

// Clear drops all saved entries.
func (r *repo) Clear() error {
	var err error
	err = r.open()
	if err != nil {
		return err
	}
	defer r.close()

	return r.d.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(r.root); err != nil {
			return fmt.Errorf("unable to delete bucket %s: %w", r.root, err)
		}
		_, err := tx.CreateBucketIfNotExists(r.root)
		return err
	})
}

func loadItem(raw []byte) (planner.Entry, error) {
	e := planner.Entry{}
	if len(raw) == 0 {
		return e, fmt.Errorf("empty raw item")
	}
	err := json.Unmarshal(raw, &e)
	return e, err
}

func dayMatches(day string, days []string) bool {
	for _, d := range days {
		if planner.NormalizeDay(d) == day {
			return true
		}
	}
	return false
}
