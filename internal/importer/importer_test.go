package importer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauv0809/rally-metrics/internal/database"
	"github.com/mauv0809/rally-metrics/internal/metrics"
	"github.com/mauv0809/rally-metrics/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Name,Rank,Team,Games Won,Games Lost,Games Won Percent,Pts Won,Pts Lost,Pts Won Percent\n"

func setupPipeline(t *testing.T) (*Pipeline, player.PlayerStore, *metrics.Mock) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	store := player.New(db)
	m := metrics.NewMock()
	return New(store, m), store, m
}

func TestImport_CollectsRowFailures(t *testing.T) {
	pipeline, store, m := setupPipeline(t)

	source := header +
		"Ben Johns,1,Texas Ranchers,30,10,0.75,400,300,0.571\n" +
		"Collin Johns,2,Texas Ranchers,lots,11,0.7,380,310,0.55\n" +
		"Anna Bright,3,Dallas Flash,25,12,0.68,350,300,0.54\n"

	report, err := pipeline.Import(strings.NewReader(source))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 2, report.Failures[0].Row)
	assert.Equal(t, ColGamesWon, report.Failures[0].Field)
	assert.NotEmpty(t, report.RunID)

	all, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ben Johns", all[0].Name)
	assert.Equal(t, "Anna Bright", all[1].Name)

	assert.Equal(t, 1, m.ImportRuns())
	assert.Equal(t, 2, m.PlayersImported())
	assert.Equal(t, 1, m.RowFailures())
	assert.Len(t, m.ImportDurations(), 1)
}

func TestImport_ReimportIsIdempotent(t *testing.T) {
	pipeline, store, _ := setupPipeline(t)

	first := header +
		"Ben Johns,1,Texas Ranchers,30,10,0.75,400,300,0.571\n" +
		"Anna Bright,3,Dallas Flash,25,12,0.68,350,300,0.54\n"
	second := header +
		"Ben Johns,2,Texas Ranchers,31,12,0.72,420,330,0.56\n" +
		"Anna Bright,1,Dallas Flash,28,12,0.7,380,310,0.55\n"

	_, err := pipeline.Import(strings.NewReader(first))
	require.NoError(t, err)
	countAfterFirst, err := store.Count()
	require.NoError(t, err)

	report, err := pipeline.Import(strings.NewReader(second))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	countAfterSecond, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, countAfterFirst, countAfterSecond)

	ben, err := store.FindByName("Ben Johns")
	require.NoError(t, err)
	assert.Equal(t, 2, ben.Rank, "values from the second import win")
	assert.Equal(t, 31, ben.GamesWon)
}

func TestImport_MalformedAndQuotedRows(t *testing.T) {
	pipeline, _, _ := setupPipeline(t)

	source := header +
		"Short,1,Team\n" +
		"\"Bad \"quote\",1,T,1,1,0.5,1,1,0.5\n" +
		"\"Smith, Jay\",4,\"Carolina Hogs\",10,10,0.5,100,100,0.5\n"

	report, err := pipeline.Import(strings.NewReader(source))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, 1, report.Failures[0].Row)
	assert.Empty(t, report.Failures[0].Field)
	assert.Contains(t, report.Failures[0].Reason, "expected at least 9 fields")
	assert.Equal(t, 2, report.Failures[1].Row)
}

func TestImport_StoreErrorsAreRowScoped(t *testing.T) {
	store := player.NewMock()
	store.UpsertFunc = func(p player.Player) error {
		if p.Name == "Broken" {
			return errors.New("disk full")
		}
		return nil
	}
	pipeline := New(store, metrics.NewMock())

	source := header +
		"Broken,1,A,1,1,0.5,1,1,0.5\n" +
		"Fine,2,B,1,1,0.5,1,1,0.5\n"

	report, err := pipeline.Import(strings.NewReader(source))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Reason, "disk full")
	assert.Equal(t, 1, report.Total)
	assert.Len(t, store.UpsertCalls, 2)
}

func TestImport_PositionalFallback(t *testing.T) {
	pipeline, store, _ := setupPipeline(t)

	source := "player,rk,club,w,l,w%,pw,pl,pw%\n" +
		"Ben Johns,1,Texas Ranchers,30,10,0.75,400,300,0.571\n"

	report, err := pipeline.Import(strings.NewReader(source))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	ben, err := store.FindByName("Ben Johns")
	require.NoError(t, err)
	assert.Equal(t, "Texas Ranchers", ben.Team)
}

func TestImport_SourceUnavailable(t *testing.T) {
	pipeline, _, _ := setupPipeline(t)

	t.Run("nil reader", func(t *testing.T) {
		_, err := pipeline.Import(nil)
		var unavailable *SourceUnavailableError
		require.ErrorAs(t, err, &unavailable)
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := pipeline.Import(strings.NewReader(""))
		var unavailable *SourceUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.ErrorIs(t, err, ErrEmptySource)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := pipeline.ImportFile(filepath.Join(t.TempDir(), "missing.csv"))
		var unavailable *SourceUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestImportFile(t *testing.T) {
	pipeline, store, _ := setupPipeline(t)

	path := filepath.Join(t.TempDir(), "mlp_stats.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"Ben Johns,1,Texas Ranchers,30,10,0.75,400,300,0.571\n"), 0o644))

	report, err := pipeline.ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, report.Source)
	assert.Equal(t, 1, report.Imported)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
