package persistence

import (
	"context"
	"fmt"

	"github.com/planetarysim/colonysim/internal/domain/sitefinder"
	"gorm.io/gorm"
)

// GormSystemCatalog implements sitefinder.SystemCatalog over the `universe`
// table's per-system planet-type count columns (§6.1, §4.14).
type GormSystemCatalog struct {
	db *gorm.DB
}

// NewGormSystemCatalog builds a GormSystemCatalog.
func NewGormSystemCatalog(db *gorm.DB) *GormSystemCatalog {
	return &GormSystemCatalog{db: db}
}

// PlanetCounts returns the per-planet-type counts for one solar system.
func (r *GormSystemCatalog) PlanetCounts(ctx context.Context, systemID int) (sitefinder.SystemPlanetCounts, error) {
	var row UniverseModel
	err := r.db.WithContext(ctx).Where("solarsystem_id = ?", systemID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		// StaticDataMissing (§7): an unknown system has zero planets of
		// every type rather than erroring the whole scoring pass.
		return sitefinder.SystemPlanetCounts{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query universe: %w", err)
	}

	return sitefinder.SystemPlanetCounts{
		sitefinder.PlanetTypeTemperate: row.Temperate,
		sitefinder.PlanetTypeBarren:    row.Barren,
		sitefinder.PlanetTypeOceanic:   row.Oceanic,
		sitefinder.PlanetTypeIce:       row.Ice,
		sitefinder.PlanetTypeGas:       row.Gas,
		sitefinder.PlanetTypeLava:      row.Lava,
		sitefinder.PlanetTypeStorm:     row.Storm,
		sitefinder.PlanetTypePlasma:    row.Plasma,
	}, nil
}

// GormResourcePlanetTypes implements sitefinder.ResourcePlanetTypes by
// joining `planetResourceHarvest` (raw resource -> extractable type) with
// `typeAttributes` attribute 1632 (extractable type -> planet type id),
// exactly as §6.1/§4.14 document.
type GormResourcePlanetTypes struct {
	db *gorm.DB
}

// NewGormResourcePlanetTypes builds a GormResourcePlanetTypes.
func NewGormResourcePlanetTypes(db *gorm.DB) *GormResourcePlanetTypes {
	return &GormResourcePlanetTypes{db: db}
}

// PlanetTypesForResource returns every planet type id capable of producing
// resourceTypeID.
func (r *GormResourcePlanetTypes) PlanetTypesForResource(ctx context.Context, resourceTypeID int) ([]int, error) {
	var harvests []PlanetResourceHarvestModel
	if err := r.db.WithContext(ctx).
		Where("typeid = ?", resourceTypeID).
		Find(&harvests).Error; err != nil {
		return nil, fmt.Errorf("query planetResourceHarvest: %w", err)
	}
	if len(harvests) == 0 {
		return nil, nil
	}

	harvestTypeIDs := make([]int, 0, len(harvests))
	for _, h := range harvests {
		harvestTypeIDs = append(harvestTypeIDs, h.HarvestTypeID)
	}

	var attrs []TypeAttributeModel
	if err := r.db.WithContext(ctx).
		Where("type_id IN ? AND attribute_id = ?", harvestTypeIDs, PlanetTypeAttributeID).
		Find(&attrs).Error; err != nil {
		return nil, fmt.Errorf("query typeAttributes: %w", err)
	}

	seen := make(map[int]bool, len(attrs))
	planetTypes := make([]int, 0, len(attrs))
	for _, a := range attrs {
		planetTypeID := int(a.Value)
		if !seen[planetTypeID] {
			seen[planetTypeID] = true
			planetTypes = append(planetTypes, planetTypeID)
		}
	}
	return planetTypes, nil
}

// GormSystemNameRepository resolves solar system and region display names,
// used by the CLI's human-readable site-finder output.
type GormSystemNameRepository struct {
	db *gorm.DB
}

// NewGormSystemNameRepository builds a GormSystemNameRepository.
func NewGormSystemNameRepository(db *gorm.DB) *GormSystemNameRepository {
	return &GormSystemNameRepository{db: db}
}

// SystemName resolves a solar system id to its display name.
func (r *GormSystemNameRepository) SystemName(ctx context.Context, systemID int) (string, error) {
	var row SolarSystemModel
	err := r.db.WithContext(ctx).Where("\"solarSystemID\" = ?", systemID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query solarsystems: %w", err)
	}
	return row.SolarSystemName, nil
}

// RegionName resolves a region id to its display name.
func (r *GormSystemNameRepository) RegionName(ctx context.Context, regionID int) (string, error) {
	var row RegionModel
	err := r.db.WithContext(ctx).Where("\"regionID\" = ?", regionID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query regions: %w", err)
	}
	return row.RegionName, nil
}

// PlanetName resolves a planet item id to its display name via invNames.
func (r *GormSystemNameRepository) PlanetName(ctx context.Context, planetID int64) (string, error) {
	var row InvNameModel
	err := r.db.WithContext(ctx).Where("\"itemID\" = ?", planetID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query invNames: %w", err)
	}
	return row.ItemName, nil
}
