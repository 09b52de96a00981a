package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry holds one persisted collection as a JSON blob under its storage
// key ("sn_projects", "sn_workers", ...). The whole application state is a
// handful of these rows; each save rewrites the full blob for that key.
type KVEntry struct {
	Key       string         `gorm:"size:100;primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}
