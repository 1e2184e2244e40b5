package store

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is one persisted key-value pair. The dashboard keeps all local
// state (token, user, completedSections) in this single table; only one
// process is assumed to use the file at a time.
type Entry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

// Store is the persisted local key-value store backing the dashboard
// session. It is read at startup and written on change.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the store file and runs migrations.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// get returns the raw value for key and whether it was present.
func (s *Store) get(key string) (string, bool) {
	var entry Entry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		return "", false
	}
	return entry.Value, true
}

// set writes key to value, inserting or overwriting.
func (s *Store) set(key, value string) error {
	entry := Entry{Key: key, Value: value}
	return s.db.Save(&entry).Error
}

// delete removes key; removing an absent key is not an error.
func (s *Store) delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&Entry{}).Error
}
