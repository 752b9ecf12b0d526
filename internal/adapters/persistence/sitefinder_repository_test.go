package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/adapters/persistence"
	"github.com/planetarysim/colonysim/internal/domain/sitefinder"
	"github.com/planetarysim/colonysim/test/helpers"
)

func TestGormSystemCatalog_PlanetCounts(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSystemCatalog(db)

	require.NoError(t, db.Create(&persistence.UniverseModel{
		SolarSystemID: 30000142, RegionID: 10000002, SystemSecurity: 0.9,
		Temperate: 4, Barren: 2, Oceanic: 1, Ice: 0, Gas: 1, Lava: 0, Storm: 0, Plasma: 0,
	}).Error)

	counts, err := repo.PlanetCounts(context.Background(), 30000142)
	require.NoError(t, err)
	assert.Equal(t, 4, counts[sitefinder.PlanetTypeTemperate])
	assert.Equal(t, 2, counts[sitefinder.PlanetTypeBarren])

	unknown, err := repo.PlanetCounts(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestGormResourcePlanetTypes_PlanetTypesForResource(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormResourcePlanetTypes(db)

	require.NoError(t, db.Create(&persistence.PlanetResourceHarvestModel{
		TypeID: 2268, HarvestTypeID: 3645,
	}).Error)
	require.NoError(t, db.Create(&persistence.TypeAttributeModel{
		TypeID: 3645, AttributeID: persistence.PlanetTypeAttributeID, Value: float64(sitefinder.PlanetTypeGas),
	}).Error)

	types, err := repo.PlanetTypesForResource(context.Background(), 2268)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, sitefinder.PlanetTypeGas, types[0])

	none, err := repo.PlanetTypesForResource(context.Background(), 12345)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGormSystemNameRepository(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSystemNameRepository(db)

	require.NoError(t, db.Create(&persistence.SolarSystemModel{SolarSystemID: 30000142, SolarSystemName: "Jita"}).Error)
	require.NoError(t, db.Create(&persistence.RegionModel{RegionID: 10000002, RegionName: "The Forge"}).Error)
	require.NoError(t, db.Create(&persistence.InvNameModel{ItemID: 40000001, ItemName: "Jita IV"}).Error)

	name, err := repo.SystemName(context.Background(), 30000142)
	require.NoError(t, err)
	assert.Equal(t, "Jita", name)

	region, err := repo.RegionName(context.Background(), 10000002)
	require.NoError(t, err)
	assert.Equal(t, "The Forge", region)

	planet, err := repo.PlanetName(context.Background(), 40000001)
	require.NoError(t, err)
	assert.Equal(t, "Jita IV", planet)

	missing, err := repo.SystemName(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, missing)
}
