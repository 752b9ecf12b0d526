package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetarysim/colonysim/internal/adapters/persistence"
	"github.com/planetarysim/colonysim/test/helpers"
)

func TestGormSchematicRepository_InputsForOutputs(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSchematicRepository(db)

	require.NoError(t, db.Create(&persistence.PlanetSchematicModel{
		OutputTypeID: 2312,
		OutputValue:  100,
		CycleTime:    3600,
		InputTypeID:  "2268,3645",
		InputValue:   "40,20",
		Facilitys:    "2544",
	}).Error)
	require.NoError(t, db.Create(&persistence.PlanetSchematicModel{
		OutputTypeID: 9999,
		OutputValue:  50,
		CycleTime:    1800,
		InputTypeID:  "1,2,3",
		InputValue:   "1,2", // arity mismatch, malformed
		Facilitys:    "2544",
	}).Error)

	rows, err := repo.InputsForOutputs(context.Background(), []int{2312, 9999})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, 2312, r.OutputTypeID)
	}
}

func TestGormSchematicRepository_InputsForOutputs_Empty(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSchematicRepository(db)

	rows, err := repo.InputsForOutputs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGormTypeRepository_NamesForTypesAndVolume(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTypeRepository(db)

	require.NoError(t, db.Create(&persistence.TypeModel{
		TypeID: 2268, Name: "Fullerenes", IconFilename: "icon.png", Volume: 3.0,
	}).Error)

	names, err := repo.NamesForTypes(context.Background(), []int{2268})
	require.NoError(t, err)
	assert.Equal(t, "Fullerenes", names[2268])

	volume, ok, err := repo.Volume(context.Background(), 2268)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, volume)

	_, ok, err = repo.Volume(context.Background(), 999999)
	require.NoError(t, err)
	assert.False(t, ok)
}
