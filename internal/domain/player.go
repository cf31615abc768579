package domain

// Club is one club membership of a player. Upstream integer ids are carried as
// decimal strings, "0" when the upstream omitted them.
type Club struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Assn    string `json:"assn"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Player is one person with zero or more club memberships.
type Player struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Prefix     string `json:"prefix"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Suffix     string `json:"suffix"`
	PlayerName string `json:"player_name"`
	Gender     string `json:"gender"`
	Active     bool   `json:"active"`
	Index      string `json:"index"`
	RevDate    string `json:"rev_date"`
	Clubs      []Club `json:"clubs"`
}

// PlayerQuery scopes a golfer search. A non-empty GolferID makes the search a
// rollup: all returned rows describe one person.
type PlayerQuery struct {
	Source    string `json:"source"`
	GolferID  string `json:"golfer_id"`
	Country   string `json:"country"`
	State     string `json:"state"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

// Rollup reports whether the query targets a single known golfer.
func (q PlayerQuery) Rollup() bool {
	return q.GolferID != ""
}

type Pagination struct {
	Page    int32 `json:"page"`
	PerPage int32 `json:"per_page"`
}

// ProductAccess is the upstream acknowledgement of a product access request.
type ProductAccess struct {
	Success string `json:"success"`
}
