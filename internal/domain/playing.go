package domain

// PlayingHandicapGolfer is one golfer entered into a playing handicap
// calculation. TeeSetSide is "All18", "F9" or "B9".
type PlayingHandicapGolfer struct {
	GolferID      string `json:"golfer_id"`
	HandicapIndex string `json:"handicap_index"`
	TeeSetID      string `json:"tee_set_id"`
	TeeSetSide    string `json:"tee_set_side"`
}

type PlayingHandicapQuery struct {
	Source   string
	Golfers  []PlayingHandicapGolfer
	Percents []int32
}

// PlayingHandicap is the allowance the provider computed for one golfer.
type PlayingHandicap struct {
	GolferID        string `json:"golfer_id"`
	TeeSetID        string `json:"tee_set_id"`
	CourseHandicap  string `json:"course_handicap"`
	PlayingHandicap string `json:"playing_handicap"`
}

// PlayingHandicapGroup holds every golfer's result at one handicap allowance.
type PlayingHandicapGroup struct {
	Percent int32             `json:"percent"`
	Golfers []PlayingHandicap `json:"golfers"`
}
