package result

import (
	"context"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	"gorm.io/gorm"
)

// ResultStore persists the whole ordered history. Save always replaces the
// full list; there are no partial updates.
type ResultStore interface {
	Load(ctx context.Context) ([]evaluation.Result, error)
	Save(ctx context.Context, all []evaluation.Result) error
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) ResultStore {
	return &gormStore{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Record{})
}

func (s *gormStore) Load(ctx context.Context) ([]evaluation.Result, error) {
	var records []Record
	if err := s.db.WithContext(ctx).
		Order("position ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	results := make([]evaluation.Result, 0, len(records))
	for _, rec := range records {
		res, err := rec.toResult()
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *gormStore) Save(ctx context.Context, all []evaluation.Result) error {
	records := make([]Record, 0, len(all))
	for i, res := range all {
		rec, err := toRecord(i, res)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Record{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(&records, 100).Error
	})
}
