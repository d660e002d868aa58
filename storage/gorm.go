package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnkhanh/survey-engine/models"
)

// GormKV lưu blob vào bảng state_blobs (postgres hoặc sqlite).
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (kv *GormKV) Migrate() error {
	return kv.db.AutoMigrate(&models.StateBlob{})
}

func (kv *GormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var b models.StateBlob
	err := kv.db.WithContext(ctx).Where("blob_key = ?", key).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read state blob %q: %w", key, err)
	}
	return []byte(b.Value), nil
}

// Put ghi đè cả blob trong một câu upsert.
func (kv *GormKV) Put(ctx context.Context, key string, value []byte) error {
	b := models.StateBlob{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	err := kv.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blob_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&b).Error
	if err != nil {
		return fmt.Errorf("write state blob %q: %w", key, err)
	}
	return nil
}

func (kv *GormKV) Ping(ctx context.Context) error {
	sqlDB, err := kv.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
