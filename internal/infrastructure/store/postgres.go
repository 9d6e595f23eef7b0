package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-clinic-workflow/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// document is one key/JSON-document row. The table is deliberately schemaless:
// the store contract is a flat key space of JSON values, not relations.
type document struct {
	Key string `gorm:"primaryKey;type:text"`
	Doc []byte `gorm:"type:jsonb;not null"`
}

func (document) TableName() string {
	return "documents"
}

// PostgresStore backs the shared record store with a single documents table.
// Get/Put are individual statements without surrounding transactions, matching
// the no-isolation contract of the store.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string, dest any) error {
	var doc document
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("postgres get %s: %w", key, err)
	}
	return json.Unmarshal(doc.Doc, dest)
}

func (s *PostgresStore) Put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"doc"}),
		}).
		Create(&document{Key: key, Doc: data}).Error
	if err != nil {
		return fmt.Errorf("postgres put %s: %w", key, err)
	}
	return nil
}
