package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ai-siteplanner-be/internal/constant"
	"ai-siteplanner-be/internal/entity"
	"ai-siteplanner-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanRecord is the single-row table backing the saved plan blob.
type PlanRecord struct {
	Key       string         `gorm:"primaryKey;column:key"`
	Data      datatypes.JSON `gorm:"column:data"`
	UpdatedAt time.Time
}

func (PlanRecord) TableName() string {
	return "site_plans"
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) (contract.IPlanRepository, error) {
	if err := db.AutoMigrate(&PlanRecord{}); err != nil {
		return nil, err
	}
	return &planRepository{db: db}, nil
}

func (r *planRepository) Save(ctx context.Context, plan *entity.SitePlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	record := PlanRecord{
		Key:       constant.PlanStoreKey,
		Data:      datatypes.JSON(data),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&record).Error
}

func (r *planRepository) Load(ctx context.Context) (*entity.SitePlan, error) {
	var record PlanRecord
	err := r.db.WithContext(ctx).First(&record, "key = ?", constant.PlanStoreKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var plan entity.SitePlan
	if err := json.Unmarshal(record.Data, &plan); err != nil {
		// Corrupt blob: drop it and report absent.
		_ = r.Clear(ctx)
		return nil, nil
	}
	return &plan, nil
}

func (r *planRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&PlanRecord{}, "key = ?", constant.PlanStoreKey).Error
}
