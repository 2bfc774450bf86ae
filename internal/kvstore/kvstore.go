package kvstore

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// KVStore is a read/write-by-key byte-blob store backed by sqlite. It is
// the persistence mechanism for the achievement engine and anything else
// that needs a single opaque blob per key.
type KVStore struct {
	db *gorm.DB
}

type Record struct {
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     []byte
}

func NewKVStore(dbFilePath string) (*KVStore, error) {
	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database")
		return nil, err
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}

	return &KVStore{
		db: db,
	}, nil
}

// Close closes the database connection. This should be called when the
// KVStore is no longer needed, especially in tests to allow cleanup of
// temporary database files on Windows.
func (store *KVStore) Close() error {
	sqlDB, err := store.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB returns the underlying GORM database connection. This allows other
// packages (like activity) to use the same database.
func (store *KVStore) DB() *gorm.DB {
	return store.db
}

// Get returns the blob stored under key. A key that has never been written
// yields (nil, nil), not an error.
func (store *KVStore) Get(key string) ([]byte, error) {
	var record Record
	result := store.db.First(&record, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return record.Value, nil
}

// Put writes the blob under key, replacing any previous value.
func (store *KVStore) Put(key string, value []byte) error {
	record := Record{Key: key, Value: value}
	result := store.db.Save(&record)
	return result.Error
}

// Delete removes the blob stored under key.
func (store *KVStore) Delete(key string) error {
	result := store.db.Delete(&Record{}, "key = ?", key)
	return result.Error
}
