package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/spounge-ai/handicap/internal/domain"
	app_errors "github.com/spounge-ai/handicap/internal/errors"
)

// GolferRecord is one upstream row: one golfer at one club.
type GolferRecord struct {
	GHIN              *string `json:"ghin"`
	Prefix            *string `json:"prefix"`
	FirstName         *string `json:"first_name"`
	MiddleName        *string `json:"middle_name"`
	LastName          *string `json:"last_name"`
	Suffix            *string `json:"suffix"`
	HandicapIndex     *string `json:"handicap_index"`
	Gender            *string `json:"gender"`
	RevDate           *string `json:"rev_date"`
	ClubID            *int32  `json:"club_id"`
	ClubName          *string `json:"club_name"`
	ClubAffiliationID *int32  `json:"club_affiliation_id"`
	State             *string `json:"state"`
	Country           *string `json:"country"`
}

type golfersResponse struct {
	Golfers []GolferRecord `json:"golfers"`
}

// DecodePlayers decodes a golfer search body and normalizes it with Players.
func DecodePlayers(source string, body []byte, rollup bool) ([]domain.Player, error) {
	var resp golfersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding golfers: %w", err)
	}
	return Players(source, resp.Golfers, rollup)
}

// Players maps golfer rows to players. In rollup mode every row describes the
// same person: the first row supplies the personal fields and each row adds a
// club. Otherwise each row becomes its own player with a single club.
func Players(source string, rows []GolferRecord, rollup bool) ([]domain.Player, error) {
	if rollup {
		if len(rows) == 0 {
			return nil, app_errors.ErrEmptyResult
		}
		clubs := make([]domain.Club, 0, len(rows))
		for i := range rows {
			clubs = append(clubs, club(&rows[i]))
		}
		return []domain.Player{player(source, &rows[0], clubs)}, nil
	}

	players := make([]domain.Player, 0, len(rows))
	for i := range rows {
		players = append(players, player(source, &rows[i], []domain.Club{club(&rows[i])}))
	}
	return players, nil
}

func player(source string, g *GolferRecord, clubs []domain.Club) domain.Player {
	first := str(g.FirstName)
	last := str(g.LastName)
	return domain.Player{
		ID:         str(g.GHIN),
		Source:     source,
		Prefix:     str(g.Prefix),
		FirstName:  first,
		MiddleName: str(g.MiddleName),
		LastName:   last,
		Suffix:     str(g.Suffix),
		PlayerName: first + " " + last,
		Gender:     str(g.Gender),
		Active:     true,
		Index:      str(g.HandicapIndex),
		RevDate:    str(g.RevDate),
		Clubs:      clubs,
	}
}

func club(g *GolferRecord) domain.Club {
	return domain.Club{
		ID:      i32String(g.ClubID),
		Name:    str(g.ClubName),
		Assn:    i32String(g.ClubAffiliationID),
		State:   str(g.State),
		Country: str(g.Country),
	}
}
