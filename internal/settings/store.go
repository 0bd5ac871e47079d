package settings

import (
	"context"
	"errors"
	"fmt"

	"algowoo/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OptionStore persists option rows by name.
type OptionStore interface {
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, name string) (string, bool, error)
	Set(ctx context.Context, name, value string) error
	Add(ctx context.Context, name, value string) (bool, error)
	Delete(ctx context.Context, name string) error
}

// Store is the gorm-backed OptionStore.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// All returns every indexer option keyed by full option name.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	var rows []models.Option
	if err := s.db.WithContext(ctx).Where("name LIKE ?", OptionPrefix+"%").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load options: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Value
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, name string) (string, bool, error) {
	var opt models.Option
	err := s.db.WithContext(ctx).First(&opt, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch option %s: %w", name, err)
	}
	return opt.Value, true, nil
}

// Set inserts or overwrites an option.
func (s *Store) Set(ctx context.Context, name, value string) error {
	opt := models.Option{Name: name, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&opt).Error
	if err != nil {
		return fmt.Errorf("failed to update option %s: %w", name, err)
	}
	return nil
}

// Add inserts an option only when it does not exist yet and reports whether
// a row was written.
func (s *Store) Add(ctx context.Context, name, value string) (bool, error) {
	opt := models.Option{Name: name, Value: value}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&opt)
	if res.Error != nil {
		return false, fmt.Errorf("failed to add option %s: %w", name, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.db.WithContext(ctx).Delete(&models.Option{}, "name = ?", name).Error; err != nil {
		return fmt.Errorf("failed to delete option %s: %w", name, err)
	}
	return nil
}
