package store

import (
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQLite opens the embedded store at path (the default deployment).
func OpenSQLite(path string, log *zap.Logger) (Store, error) {
	s, err := open(sqlite.Open(path), log)
	if err != nil {
		return nil, err
	}
	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return s, nil
}

// OpenPostgres opens the store against a Postgres DSN.
func OpenPostgres(dsn string, log *zap.Logger) (Store, error) {
	s, err := open(postgres.Open(dsn), log)
	if err != nil {
		return nil, err
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return s, nil
}

func open(dialector gorm.Dialector, log *zap.Logger) (*gormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&collection{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}

	log.Info("store opened", zap.String("dialect", db.Name()))

	return &gormStore{
		db:    db,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}, nil
}
