// Package model defines database models for persistence layer.
package model

import "time"

// KeyValueModel represents the kv_entries table. Each row holds one serialized collection.
type KeyValueModel struct {
	Key       string    `gorm:"column:entry_key;type:varchar(128);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the KeyValueModel.
func (KeyValueModel) TableName() string {
	return "kv_entries"
}
