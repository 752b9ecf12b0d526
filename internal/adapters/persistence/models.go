// Package persistence implements the §6.1 read-only static-database ports
// with GORM, the same repository-per-table shape the teacher uses in its
// own persistence adapter (one GORM model struct per table, one repository
// struct per aggregate).
package persistence

// TypeModel mirrors the `types` table: commodity/planet display metadata.
type TypeModel struct {
	TypeID       int    `gorm:"column:type_id;primaryKey"`
	Name         string `gorm:"column:name"`
	IconFilename string `gorm:"column:icon_filename"`
	Volume       float64 `gorm:"column:volume"`
}

func (TypeModel) TableName() string { return "types" }

// PlanetSchematicModel mirrors one row of the `planetSchematics` table. Each
// schematic is stored as CSV columns for its (possibly multiple) inputs,
// matching §6.1's documented column shape.
type PlanetSchematicModel struct {
	OutputTypeID int    `gorm:"column:output_typeid;primaryKey"`
	OutputValue  int    `gorm:"column:output_value"`
	CycleTime    int    `gorm:"column:cycle_time"`
	InputTypeID  string `gorm:"column:input_typeid"` // CSV
	InputValue   string `gorm:"column:input_value"`  // CSV
	Facilitys    string `gorm:"column:facilitys"`     // CSV
}

func (PlanetSchematicModel) TableName() string { return "planetSchematics" }

// PlanetResourceHarvestModel mirrors `planetResourceHarvest`: maps a raw
// resource type id to its extractable harvest type id.
type PlanetResourceHarvestModel struct {
	TypeID       int `gorm:"column:typeid;primaryKey"`
	HarvestTypeID int `gorm:"column:harvest_typeid"`
}

func (PlanetResourceHarvestModel) TableName() string { return "planetResourceHarvest" }

// TypeAttributeModel mirrors `typeAttributes`: attribute 1632 maps an
// extractable type id to the planet type id that can harvest it.
type TypeAttributeModel struct {
	TypeID      int     `gorm:"column:type_id;primaryKey"`
	AttributeID int     `gorm:"column:attribute_id;primaryKey"`
	Value       float64 `gorm:"column:value"`
}

func (TypeAttributeModel) TableName() string { return "typeAttributes" }

// PlanetTypeAttributeID is the attribute id §6.1/§4.14 use to map an
// extractable type to a planet type.
const PlanetTypeAttributeID = 1632

// UniverseModel mirrors `universe`: per-system planet-type counts.
type UniverseModel struct {
	SolarSystemID  int `gorm:"column:solarsystem_id;primaryKey"`
	RegionID       int `gorm:"column:region_id"`
	SystemSecurity float64 `gorm:"column:system_security"`
	Temperate      int `gorm:"column:temperate"`
	Barren         int `gorm:"column:barren"`
	Oceanic        int `gorm:"column:oceanic"`
	Ice            int `gorm:"column:ice"`
	Gas            int `gorm:"column:gas"`
	Lava           int `gorm:"column:lava"`
	Storm          int `gorm:"column:storm"`
	Plasma         int `gorm:"column:plasma"`
}

func (UniverseModel) TableName() string { return "universe" }

// SolarSystemModel mirrors `solarsystems`.
type SolarSystemModel struct {
	SolarSystemID   int    `gorm:"column:solarSystemID;primaryKey"`
	SolarSystemName string `gorm:"column:solarSystemName"`
}

func (SolarSystemModel) TableName() string { return "solarsystems" }

// RegionModel mirrors `regions`.
type RegionModel struct {
	RegionID   int    `gorm:"column:regionID;primaryKey"`
	RegionName string `gorm:"column:regionName"`
}

func (RegionModel) TableName() string { return "regions" }

// InvNameModel mirrors `invNames`: resolves a planet (or any item) id to a
// display name.
type InvNameModel struct {
	ItemID   int64  `gorm:"column:itemID;primaryKey"`
	ItemName string `gorm:"column:itemName"`
}

func (InvNameModel) TableName() string { return "invNames" }

// SimulationCacheModel is the optional persisted checkpoint table backing
// §6.5's simulation cache, grounded on the teacher's
// system_graph_repository.go upsert-by-key pattern.
type SimulationCacheModel struct {
	ColonyID        int64  `gorm:"column:colony_id;primaryKey"`
	TargetEpoch     int64  `gorm:"column:target_epoch;primaryKey"`
	ColonyStateJSON string `gorm:"column:colony_state_json;type:text"`
	UpdatedAt       int64  `gorm:"column:updated_at"`
}

func (SimulationCacheModel) TableName() string { return "simulation_cache" }
