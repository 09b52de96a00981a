package store

import (
	"encoding/json"
	"errors"

	"github.com/itousif38-netizen/SN-ENTP/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Persister reads and writes one JSON value per storage key. Load decodes
// into out and reports missing or corrupt values as errors; the store treats
// both the same way and falls back to defaults. Save replaces the stored
// value wholesale.
type Persister interface {
	Load(key string, out interface{}) error
	Save(key string, value interface{}) error
}

// KVPersister stores each value as a jsonb blob in the kv_entries table.
type KVPersister struct {
	db *gorm.DB
}

func NewKVPersister(db *gorm.DB) *KVPersister {
	return &KVPersister{db: db}
}

func (p *KVPersister) Load(key string, out interface{}) error {
	var entry models.KVEntry
	if err := p.db.First(&entry, "key = ?", key).Error; err != nil {
		return err
	}
	return json.Unmarshal(entry.Value, out)
}

func (p *KVPersister) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := models.KVEntry{Key: key, Value: data}
	return p.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// MemPersister keeps values in a map. Used in tests and when running without
// a database (records then live only for the process lifetime).
type MemPersister struct {
	values map[string][]byte
}

func NewMemPersister() *MemPersister {
	return &MemPersister{values: map[string][]byte{}}
}

func (p *MemPersister) Load(key string, out interface{}) error {
	data, ok := p.values[key]
	if !ok {
		return errors.New("no value for key " + key)
	}
	return json.Unmarshal(data, out)
}

func (p *MemPersister) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	p.values[key] = data
	return nil
}

// Seed stores a raw value under a key, bypassing JSON encoding. Lets tests
// plant corrupt payloads.
func (p *MemPersister) Seed(key string, raw []byte) {
	p.values[key] = raw
}
