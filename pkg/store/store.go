// Package store is the persistent storage of crotchet: the REPL command
// history, kept in a bbolt database file.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.crotchet.dev/pkg/logutil"
	. "src.crotchet.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// Functions that initialize the buckets, keyed by description.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is a Store backed by a database file. It is opened by one REPL
// session at a time; a second session waits up to a second for the file lock
// and then fails.
type DBStore interface {
	Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file. It fails if another
// process holds the database for more than a second.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the database file.
func (s *dbStore) Close() error {
	logger.Println("closing store")
	return s.db.Close()
}
