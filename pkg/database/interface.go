package database

import "gorm.io/gorm"

// IDatabase gives repositories access to the shared connection without
// binding them to a concrete client. One instance per process, injected into
// every repository.
type IDatabase interface {
	// Database returns the underlying *gorm.DB
	Database() *gorm.DB
}

type databaseAdapter struct {
	db *gorm.DB
}

// NewDatabaseAdapter wraps a *gorm.DB as IDatabase.
func NewDatabaseAdapter(db *gorm.DB) IDatabase {
	return &databaseAdapter{db: db}
}

func (d *databaseAdapter) Database() *gorm.DB {
	return d.db
}
