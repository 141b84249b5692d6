// Package store provides the durable collection-name → JSON blob mapping the
// repositories build on. Each collection is persisted as a single row, so
// every mutation is a whole-collection read-modify-write; Update and
// UpdateMany hold the collection's lock for the full cycle to keep two
// concurrent mutations from losing a write.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stackit-app/backend/internal/errorz"
)

// Collection names used by the repositories and the seeder.
const (
	QuestionsCollection = "questions"
	AnswersCollection   = "answers"
	CommentsCollection  = "comments"
)

type collection struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte
	UpdatedAt time.Time
}

// Store is the persistence surface consumed by the repositories.
type Store interface {
	// Read returns the collection blob, or nil if the collection is absent.
	Read(name string) ([]byte, error)

	// Write replaces the collection blob.
	Write(name string, data []byte) error

	// Update runs fn inside the collection's lock: fn receives the current
	// blob (nil when absent) and returns the replacement.
	Update(name string, fn func(data []byte) ([]byte, error)) error

	// UpdateMany is Update across several collections at once. All locks are
	// held for the duration of fn and the writes commit in one transaction,
	// so cross-collection updates are atomic.
	UpdateMany(names []string, fn func(data map[string][]byte) (map[string][]byte, error)) error

	// Seed writes data only if the collection does not exist yet.
	Seed(name string, data []byte) error

	Close() error
}

type gormStore struct {
	db  *gorm.DB
	log *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lockFor returns the mutex serializing writers of one collection.
func (s *gormStore) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func (s *gormStore) Read(name string) ([]byte, error) {
	var c collection
	err := s.db.First(&c, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errorz.Storagef("read collection %q: %v", name, err)
	}
	return c.Data, nil
}

func (s *gormStore) Write(name string, data []byte) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()
	return s.write(s.db, name, data)
}

func (s *gormStore) write(tx *gorm.DB, name string, data []byte) error {
	c := collection{Name: name, Data: data, UpdatedAt: time.Now().UTC()}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&c).Error
	if err != nil {
		return errorz.Storagef("write collection %q: %v", name, err)
	}
	return nil
}

func (s *gormStore) Update(name string, fn func(data []byte) ([]byte, error)) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	data, err := s.Read(name)
	if err != nil {
		return err
	}
	next, err := fn(data)
	if err != nil {
		return err
	}
	return s.write(s.db, name, next)
}

func (s *gormStore) UpdateMany(names []string, fn func(data map[string][]byte) (map[string][]byte, error)) error {
	// Lock in sorted order so two UpdateMany calls can never deadlock.
	ordered := append([]string(nil), names...)
	sort.Strings(ordered)
	for i, name := range ordered {
		if i > 0 && name == ordered[i-1] {
			continue
		}
		l := s.lockFor(name)
		l.Lock()
		defer l.Unlock()
	}

	data := make(map[string][]byte, len(names))
	for _, name := range names {
		blob, err := s.Read(name)
		if err != nil {
			return err
		}
		data[name] = blob
	}

	next, err := fn(data)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			blob, ok := next[name]
			if !ok {
				continue
			}
			if err := s.write(tx, name, blob); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *gormStore) Seed(name string, data []byte) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	existing, err := s.Read(name)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	s.log.Info("seeding collection", zap.String("collection", name))
	return s.write(s.db, name, data)
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
