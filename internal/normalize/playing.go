package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/spounge-ai/handicap/internal/domain"
)

type playingHandicapsResponse struct {
	Percents []struct {
		Percent *int32 `json:"percent"`
		Golfers []struct {
			GolferID        *looseString `json:"golfer_id"`
			TeeSetID        *looseString `json:"tee_set_id"`
			CourseHandicap  *looseString `json:"course_handicap"`
			PlayingHandicap *looseString `json:"playing_handicap"`
		} `json:"golfers"`
	} `json:"percents"`
}

// DecodePlayingHandicaps maps the playing handicap table, one group per
// requested allowance, in upstream order.
func DecodePlayingHandicaps(body []byte) ([]domain.PlayingHandicapGroup, error) {
	var resp playingHandicapsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding playing handicaps: %w", err)
	}

	groups := make([]domain.PlayingHandicapGroup, 0, len(resp.Percents))
	for _, p := range resp.Percents {
		group := domain.PlayingHandicapGroup{
			Percent: i32(p.Percent),
			Golfers: make([]domain.PlayingHandicap, 0, len(p.Golfers)),
		}
		for _, g := range p.Golfers {
			group.Golfers = append(group.Golfers, domain.PlayingHandicap{
				GolferID:        loose(g.GolferID),
				TeeSetID:        loose(g.TeeSetID),
				CourseHandicap:  loose(g.CourseHandicap),
				PlayingHandicap: loose(g.PlayingHandicap),
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}
