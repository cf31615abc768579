package normalize_test

import (
	"fmt"
	"testing"

	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const golfer123 = `{"golfers":[
  {"ghin":"123","first_name":"Jane","last_name":"Doe","handicap_index":"8.4","gender":"F","rev_date":"2024-05-01",
   "club_id":11,"club_name":"Pine Valley","club_affiliation_id":1,"state":"NJ","country":"USA"},
  {"ghin":"123","first_name":"Jane","last_name":"Doe","handicap_index":"8.4",
   "club_id":22,"club_name":"Oakmont","club_affiliation_id":2,"state":"PA","country":"USA"},
  {"ghin":"123","first_name":"Jane","last_name":"Doe","handicap_index":"8.4",
   "club_id":33,"club_name":"Merion","club_affiliation_id":3,"state":"PA","country":"USA"}
]}`

const smithSearch = `{"golfers":[
  {"ghin":"1","first_name":"Al","last_name":"Smith","club_id":5,"club_name":"A","state":"TX"},
  {"ghin":"2","first_name":"Bo","last_name":"Smith","club_id":6,"club_name":"B","state":"OK"}
]}`

func TestDecodePlayers_RollupCollapsesClubs(t *testing.T) {
	players, err := normalize.DecodePlayers("ghin", []byte(golfer123), true)
	require.NoError(t, err)
	require.Len(t, players, 1)

	p := players[0]
	assert.Equal(t, "123", p.ID)
	assert.Equal(t, "ghin", p.Source)
	assert.Equal(t, "Jane Doe", p.PlayerName)
	assert.Equal(t, "8.4", p.Index)
	assert.True(t, p.Active)
	require.Len(t, p.Clubs, 3)
	assert.Equal(t, "11", p.Clubs[0].ID)
	assert.Equal(t, "Oakmont", p.Clubs[1].Name)
	assert.Equal(t, "3", p.Clubs[2].Assn)
}

func TestDecodePlayers_FanOut(t *testing.T) {
	players, err := normalize.DecodePlayers("ghin", []byte(smithSearch), false)
	require.NoError(t, err)
	require.Len(t, players, 2)

	for _, p := range players {
		assert.Len(t, p.Clubs, 1)
		assert.Equal(t, "Smith", p.LastName)
	}
	assert.Equal(t, "TX", players[0].Clubs[0].State)
	assert.Equal(t, "OK", players[1].Clubs[0].State)
}

func TestPlayers_RollupEmpty(t *testing.T) {
	_, err := normalize.Players("ghin", nil, true)
	assert.ErrorIs(t, err, app_errors.ErrEmptyResult)
}

func TestPlayers_FanOutEmpty(t *testing.T) {
	players, err := normalize.Players("ghin", nil, false)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestPlayers_CardinalityProperties(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("rows=%d", n), func(t *testing.T) {
			rows := make([]normalize.GolferRecord, n)
			id := "77"
			for i := range rows {
				club := int32(i + 1)
				rows[i] = normalize.GolferRecord{GHIN: &id, ClubID: &club}
			}

			rolled, err := normalize.Players("ghin", rows, true)
			require.NoError(t, err)
			require.Len(t, rolled, 1)
			assert.Len(t, rolled[0].Clubs, n)

			fanned, err := normalize.Players("ghin", rows, false)
			require.NoError(t, err)
			require.Len(t, fanned, n)
			for _, p := range fanned {
				assert.Len(t, p.Clubs, 1)
			}
		})
	}
}

func TestDecodePlayers_MissingFieldsDefault(t *testing.T) {
	players, err := normalize.DecodePlayers("ghin", []byte(`{"golfers":[{"ghin":"9"}]}`), false)
	require.NoError(t, err)
	require.Len(t, players, 1)

	p := players[0]
	assert.Equal(t, "", p.FirstName)
	assert.Equal(t, "", p.Index)
	assert.Equal(t, " ", p.PlayerName)
	assert.Equal(t, "", p.Clubs[0].State)
	assert.Equal(t, "0", p.Clubs[0].ID)
	assert.Equal(t, "0", p.Clubs[0].Assn)
}

func TestDecodePlayers_MalformedBody(t *testing.T) {
	_, err := normalize.DecodePlayers("ghin", []byte(`{"golfers":`), false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, app_errors.ErrEmptyResult)
}
