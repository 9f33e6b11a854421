package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	lvlstorage "github.com/syndtr/goleveldb/leveldb/storage"
)

// LevelStore implements Store with a goleveldb database.
type LevelStore struct {
	db *leveldb.DB
}

// OpenLevelStore opens (or creates) the database at path.
func OpenLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &LevelStore{db: db}, nil
}

// NewMemLevelStore returns a LevelStore that keeps everything in memory.
func NewMemLevelStore() (*LevelStore, error) {
	db, err := leveldb.Open(lvlstorage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &LevelStore{db: db}, nil
}

func (ls *LevelStore) Get(key string) (Record, error) {
	data, err := ls.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	record := make(Record)
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode %q: %w", key, err)
	}
	return record, nil
}

func (ls *LevelStore) Put(key string, record Record) error {
	if record == nil {
		record = Record{}
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := ls.db.Put([]byte(key), data, nil); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (ls *LevelStore) Close() error {
	return ls.db.Close()
}
