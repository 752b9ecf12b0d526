package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/planetarysim/colonysim/internal/domain/colony"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSimulationCacheRepository persists §6.5's simulation cache as a
// checkpoint table for cross-process reuse, layered underneath the
// in-memory cache.SimulationCache. Grounded on the teacher's
// system_graph_repository.go upsert-by-key pattern.
type GormSimulationCacheRepository struct {
	db *gorm.DB
}

// NewGormSimulationCacheRepository builds a GormSimulationCacheRepository.
func NewGormSimulationCacheRepository(db *gorm.DB) *GormSimulationCacheRepository {
	return &GormSimulationCacheRepository{db: db}
}

// Get retrieves a persisted checkpoint, or (nil, false, nil) on a cache
// miss.
func (r *GormSimulationCacheRepository) Get(ctx context.Context, colonyID int64, targetEpochSeconds int64) (*colony.Colony, bool, error) {
	var model SimulationCacheModel
	err := r.db.WithContext(ctx).
		Where("colony_id = ? AND target_epoch = ?", colonyID, targetEpochSeconds).
		First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query simulation_cache: %w", err)
	}

	var result colony.Colony
	if err := json.Unmarshal([]byte(model.ColonyStateJSON), &result); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached colony state: %w", err)
	}
	return &result, true, nil
}

// Put upserts a checkpoint for (colonyID, targetEpochSeconds).
func (r *GormSimulationCacheRepository) Put(ctx context.Context, colonyID int64, targetEpochSeconds int64, result *colony.Colony) error {
	stateJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal colony state: %w", err)
	}

	model := SimulationCacheModel{
		ColonyID:        colonyID,
		TargetEpoch:     targetEpochSeconds,
		ColonyStateJSON: string(stateJSON),
		UpdatedAt:       time.Now().Unix(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "colony_id"}, {Name: "target_epoch"}},
			DoUpdates: clause.AssignmentColumns([]string{"colony_state_json", "updated_at"}),
		}).
		Create(&model).Error
}
