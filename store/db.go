package store

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one durable key-value row holding a serialized collection.
type Slot struct {
	Name      string `gorm:"primaryKey"`
	Payload   string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (Slot) TableName() string { return "collection_slots" }

// DBStore keeps collections in the collection_slots table, one JSON blob per
// slot name.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Load(name string, dest any) error {
	var slot Slot
	if err := s.db.First(&slot, "name = ?", name).Error; err != nil {
		// Absent slot reads as the empty collection
		return nil
	}
	// A payload that no longer decodes is treated the same as absent
	decodeSlot([]byte(slot.Payload), dest)
	return nil
}

func (s *DBStore) Save(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	slot := Slot{Name: name, Payload: string(payload), UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&slot).Error
}
