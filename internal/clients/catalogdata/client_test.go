package catalogdata_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/KirkDiggler/creature-battle/internal/clients/catalogdata"
	apperrors "github.com/KirkDiggler/creature-battle/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	speciesJSON = `[
		{"id":"charizard","name":"Charizard","types":["Fire","Flying"],"base":[78,84,78,109,85,100],"sprite":"charizard"},
		{"id":"blastoise","name":"Blastoise","types":["Water"],"base":[79,83,100,85,105,78]}
	]`
	movesJSON = `[
		{"id":"flamethrower","name":"Flamethrower","type":"Fire","cat":"Special","power":90,"acc":100,"pp":15,"sec":{"burn":10}},
		{"id":"growl","name":"Growl","type":"Normal","cat":"Status","power":0,"acc":100,"pp":40,"stage":{"target":"atk","delta":-1}},
		{"id":"will-o-wisp","name":"Will-O-Wisp","type":"Fire","cat":"Status","power":0,"acc":85,"pp":15,"status":{"burn":true}}
	]`
	chartJSON = `{"types":["Normal","Fire","Water","Flying"],"chart":{"Fire:Water":0.5,"Water:Fire":2}}`
)

func load(t *testing.T, files fstest.MapFS) error {
	t.Helper()
	client, err := catalogdata.New(&catalogdata.Config{FS: files})
	require.NoError(t, err)
	_, err = client.Load(context.Background())
	return err
}

func TestClient_Load(t *testing.T) {
	client, err := catalogdata.New(&catalogdata.Config{FS: fstest.MapFS{
		catalogdata.SpeciesFile:   {Data: []byte(speciesJSON)},
		catalogdata.MovesFile:     {Data: []byte(movesJSON)},
		catalogdata.TypeChartFile: {Data: []byte(chartJSON)},
	}})
	require.NoError(t, err)

	cat, err := client.Load(context.Background())
	require.NoError(t, err)

	s, err := cat.Species("CHARIZARD")
	require.NoError(t, err)
	assert.Equal(t, 109, s.BaseStats().SpecialAttack)

	m, err := cat.Move("growl")
	require.NoError(t, err)
	require.NotNil(t, m.Stage)
	assert.Equal(t, -1, m.Stage.Delta)

	wisp, err := cat.Move("will-o-wisp")
	require.NoError(t, err)
	assert.True(t, wisp.Status.Burn)

	assert.Equal(t, 2.0, cat.Chart().Multiplier("Water", "Fire"))
	assert.Equal(t, []string{"flamethrower", "growl", "will-o-wisp"}, cat.DefaultMoveIDs(4))
}

func TestClient_LoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := load(t, fstest.MapFS{
			catalogdata.SpeciesFile: {Data: []byte(speciesJSON)},
			catalogdata.MovesFile:   {Data: []byte(movesJSON)},
		})
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		err := load(t, fstest.MapFS{
			catalogdata.SpeciesFile:   {Data: []byte(`<html>`)},
			catalogdata.MovesFile:     {Data: []byte(movesJSON)},
			catalogdata.TypeChartFile: {Data: []byte(chartJSON)},
		})
		assert.True(t, apperrors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "species.json")
	})

	t.Run("species with a type the chart does not declare", func(t *testing.T) {
		err := load(t, fstest.MapFS{
			catalogdata.SpeciesFile:   {Data: []byte(`[{"id":"x","name":"X","types":["Dragon"],"base":[1,1,1,1,1,1]}]`)},
			catalogdata.MovesFile:     {Data: []byte(`[]`)},
			catalogdata.TypeChartFile: {Data: []byte(chartJSON)},
		})
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("species with seven base stats", func(t *testing.T) {
		err := load(t, fstest.MapFS{
			catalogdata.SpeciesFile:   {Data: []byte(`[{"id":"x","name":"X","types":["Fire"],"base":[1,1,1,1,1,1,1]}]`)},
			catalogdata.MovesFile:     {Data: []byte(`[]`)},
			catalogdata.TypeChartFile: {Data: []byte(chartJSON)},
		})
		assert.True(t, apperrors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "base stats")
	})

	t.Run("canceled context", func(t *testing.T) {
		client, err := catalogdata.New(&catalogdata.Config{FS: fstest.MapFS{}})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = client.Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNew_Validation(t *testing.T) {
	_, err := catalogdata.New(nil)
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = catalogdata.New(&catalogdata.Config{})
	assert.True(t, apperrors.IsInvalidArgument(err))

	_, err = catalogdata.New(&catalogdata.Config{Dir: t.TempDir() + "/missing"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestNew_ReadsDirectory(t *testing.T) {
	client, err := catalogdata.New(&catalogdata.Config{Dir: "../../../data"})
	require.NoError(t, err)

	cat, err := client.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ListSpecies())
	assert.GreaterOrEqual(t, len(cat.ListMoves()), 4)
}
