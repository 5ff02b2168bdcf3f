// Package mock provides test doubles for the integration suite.
package mock

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var shared *Db

// Db wraps a shared in-memory sqlite database migrated with the application
// models. A single connection is enforced so every scenario sees the same store.
type Db struct {
	Conn   *gorm.DB
	models map[string]any
}

// NewDb opens the shared test database on first use and migrates the given
// models. Subsequent calls return the already-open instance.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		shared = open(models)
	})
	return shared
}

func open(models map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := conn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{Conn: conn, models: models}
}

// ClearDB wipes every table between scenarios. The schema stays in place.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		if err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}

		stmt := &gorm.Statement{DB: d.Conn}
		if err := stmt.Parse(model); err != nil {
			return err
		}
		err := d.Conn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", stmt.Schema.Table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
