package helpers

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/planetarysim/colonysim/internal/adapters/persistence"
)

// SharedTestDB is the process-wide test database set by
// InitializeSharedTestDB; it stays nil until that function is called.
var SharedTestDB *gorm.DB

// InitializeSharedTestDB creates and migrates the shared test database.
func InitializeSharedTestDB() error {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open shared test database: %w", err)
	}

	err = db.AutoMigrate(
		&persistence.TypeModel{},
		&persistence.PlanetSchematicModel{},
		&persistence.PlanetResourceHarvestModel{},
		&persistence.TypeAttributeModel{},
		&persistence.UniverseModel{},
		&persistence.SolarSystemModel{},
		&persistence.RegionModel{},
		&persistence.InvNameModel{},
		&persistence.SimulationCacheModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate shared test database: %w", err)
	}

	SharedTestDB = db
	return nil
}

// TruncateAllTables clears all data from all tables of SharedTestDB.
func TruncateAllTables() error {
	if SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}

	tables := []string{
		"simulation_cache",
		"invNames",
		"regions",
		"solarsystems",
		"universe",
		"typeAttributes",
		"planetResourceHarvest",
		"planetSchematics",
		"types",
	}

	for _, table := range tables {
		if err := SharedTestDB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			continue
		}
	}

	return nil
}

// CloseSharedTestDB closes the shared database connection, if one is open.
func CloseSharedTestDB() error {
	if SharedTestDB == nil {
		return nil
	}

	sqlDB, err := SharedTestDB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
