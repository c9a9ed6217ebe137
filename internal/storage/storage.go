// Package storage persists the tracker's records in a generic key-value
// store backed by SQLite.
//
// The engine owns four independently-keyed records. Each logical operation
// reads, mutates and writes them back inside a single transaction, so two
// operations racing on the same data can not lose updates.
package storage

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys of the four persisted records.
const (
	KeyDayState    = "daybook/v1"
	KeyTaxSettings = "taxSettings/v1"
	KeyVault       = "vault/v1"
	KeyLedger      = "ledger/v1"
)

var ErrUnavailable = errors.New("the database is currently not available")

// Record is one keyed blob in the store.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(Record{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// KV is the view of the store that engine operations work against.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Store hands out transactional views of the key-value records.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return Store{db: db}
}

// Ping verifies that the underlying database connection is alive.
func (s Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Transaction runs fn against a transactional view of the store. If fn
// returns an error, none of its writes are kept.
func (s Store) Transaction(fn func(kv KV) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(kv{tx: tx})
	})
}

type kv struct {
	tx *gorm.DB
}

func (k kv) Get(key string) (string, bool, error) {
	var record Record

	err := k.tx.First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapDBError(err)
	}

	return record.Value, true, nil
}

func (k kv) Set(key, value string) error {
	err := k.tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&Record{Key: key, Value: value}).Error
	return wrapDBError(err)
}

func (k kv) Remove(key string) error {
	err := k.tx.Delete(&Record{}, "key = ?", key).Error
	return wrapDBError(err)
}

// wrapDBError hides driver internals from callers. Driver errors say nothing
// a user could act on, so they are logged and replaced with a stable sentinel.
func wrapDBError(err error) error {
	if err == nil {
		return nil
	}

	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Err(err).Msg("storage")
		return ErrUnavailable
	}

	return err
}
