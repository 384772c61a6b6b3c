package query

import (
	"errors"
	"testing"

	"github.com/mauv0809/rally-metrics/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *player.MockStore {
	return player.NewMock(
		player.Player{Name: "Ace Smith", Team: "Thunder"},
		player.Player{Name: "Bob", Team: "AceHawks"},
		player.Player{Name: "Carol Free"},
		player.Player{Name: "Dana Ace", Team: "thunder"},
	)
}

func names(players []player.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func TestByNameOrTeam(t *testing.T) {
	engine := New(seeded())

	got, err := engine.ByNameOrTeam("ace")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ace Smith", "Bob", "Dana Ace"}, names(got))
}

func TestByNameOrTeam_NormalizesText(t *testing.T) {
	engine := New(seeded())

	got, err := engine.ByNameOrTeam("  HAWKS ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, names(got))
}

func TestByNameOrTeam_PlayerWithoutTeamStillMatchesOnName(t *testing.T) {
	engine := New(seeded())

	got, err := engine.ByNameOrTeam("free")
	require.NoError(t, err)
	assert.Equal(t, []string{"Carol Free"}, names(got))
}

func TestByTeam(t *testing.T) {
	engine := New(seeded())

	got, err := engine.ByTeam("THUNDER")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ace Smith", "Dana Ace"}, names(got))

	got, err = engine.ByTeam("Thun")
	require.NoError(t, err)
	assert.Empty(t, got, "team match is exact")

	got, err = engine.ByTeam("")
	require.NoError(t, err)
	assert.Empty(t, got, "players without a team never match")
}

func TestByName(t *testing.T) {
	engine := New(seeded())

	got, err := engine.ByName("AcE")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ace Smith", "Dana Ace"}, names(got))
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   []string
	}{
		{"no filters", Params{}, []string{"Ace Smith", "Bob", "Carol Free", "Dana Ace"}},
		{"team only", Params{Team: "acehawks"}, []string{"Bob"}},
		{"name only", Params{Name: "smith"}, []string{"Ace Smith"}},
		{"team and name use search text", Params{Team: "x", Name: "y", SearchText: "hawks"}, []string{"Bob"}},
		{"team and name without search text", Params{Team: "x", Name: "ace"}, []string{"Ace Smith", "Bob", "Dana Ace"}},
		{"search text only", Params{SearchText: "carol"}, []string{"Carol Free"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(seeded())
			got, err := engine.Dispatch(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestQuery_StoreError(t *testing.T) {
	store := player.NewMock()
	store.FindAllFunc = func() ([]player.Player, error) {
		return nil, errors.New("database is locked")
	}
	engine := New(store)

	_, err := engine.ByTeam("Thunder")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}
