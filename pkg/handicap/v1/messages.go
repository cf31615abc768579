// Package handicapv1 defines the wire messages, service descriptor and client
// of the handicap.v1.Handicap gRPC service. Messages are plain structs carried
// by the JSON codec registered in this package.
package handicapv1

type Club struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Assn    string `json:"assn"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type PlayerResult struct {
	ID         string  `json:"id"`
	Source     string  `json:"source"`
	Prefix     string  `json:"prefix"`
	FirstName  string  `json:"first_name"`
	MiddleName string  `json:"middle_name"`
	LastName   string  `json:"last_name"`
	Suffix     string  `json:"suffix"`
	PlayerName string  `json:"player_name"`
	Gender     string  `json:"gender"`
	Active     bool    `json:"active"`
	Index      string  `json:"index"`
	RevDate    string  `json:"rev_date"`
	Clubs      []*Club `json:"clubs"`
}

type TeeSummary struct {
	TeeID   int32  `json:"tee_id"`
	TeeName string `json:"tee_name"`
	Status  string `json:"status"`
}

type Rating struct {
	RatingType   string  `json:"rating_type"`
	CourseRating float64 `json:"course_rating"`
	SlopeRating  float64 `json:"slope_rating"`
	BogeyRating  float64 `json:"bogey_rating"`
}

type Hole struct {
	Number     int32  `json:"number"`
	HoleID     string `json:"hole_id"`
	Length     int32  `json:"length"`
	Par        int32  `json:"par"`
	Allocation int32  `json:"allocation"`
}

type TeeCourse struct {
	CourseID     int32  `json:"course_id"`
	CourseStatus string `json:"course_status"`
	CourseName   string `json:"course_name"`
	CourseNumber int32  `json:"course_number"`
	CourseCity   string `json:"course_city"`
	CourseState  string `json:"course_state"`
}

type Tee struct {
	TeeID        int32      `json:"tee_id"`
	TeeName      string     `json:"tee_name"`
	Gender       string     `json:"gender"`
	HolesNumber  int32      `json:"holes_number"`
	TotalYardage int32      `json:"total_yardage"`
	TotalMeters  int32      `json:"total_meters"`
	TotalPar     int32      `json:"total_par"`
	Ratings      []*Rating  `json:"ratings"`
	Holes        []*Hole    `json:"holes"`
	Course       *TeeCourse `json:"course,omitempty"`
}

type Course struct {
	CourseID                    int32         `json:"course_id"`
	CourseStatus                string        `json:"course_status"`
	CourseName                  string        `json:"course_name"`
	CourseNumber                int32         `json:"course_number"`
	FacilityID                  int32         `json:"facility_id"`
	FacilityStatus              string        `json:"facility_status"`
	FacilityName                string        `json:"facility_name"`
	FacilityNumber              string        `json:"facility_number"`
	FullName                    string        `json:"full_name"`
	Address1                    string        `json:"address1"`
	Address2                    string        `json:"address2"`
	City                        string        `json:"city"`
	State                       string        `json:"state"`
	Zip                         string        `json:"zip"`
	Country                     string        `json:"country"`
	GeoLocationFormattedAddress string        `json:"geo_location_formatted_address"`
	GeoLocationLatitude         float64       `json:"geo_location_latitude"`
	GeoLocationLongitude        float64       `json:"geo_location_longitude"`
	SeasonName                  string        `json:"season_name"`
	SeasonStartDate             string        `json:"season_start_date"`
	SeasonEndDate               string        `json:"season_end_date"`
	IsAllYear                   bool          `json:"is_all_year"`
	UpdatedOn                   string        `json:"updated_on"`
	Tees                        []*Tee        `json:"tees"`
	TeeSummaries                []*TeeSummary `json:"tee_summaries"`
}

type GetHandicapRequest struct {
	Source string `json:"source" validate:"required,source_name"`
	ID     string `json:"id"     validate:"required,numeric"`
}

type PlayerQuery struct {
	Source    string `json:"source"     validate:"required,source_name"`
	GolferID  string `json:"golfer_id"  validate:"omitempty,numeric"`
	Country   string `json:"country"    validate:"omitempty,max=3"`
	State     string `json:"state"      validate:"omitempty,max=8"`
	LastName  string `json:"last_name"  validate:"omitempty,max=64"`
	FirstName string `json:"first_name" validate:"omitempty,max=64"`
	Email     string `json:"email"      validate:"omitempty,email"`
}

type Pagination struct {
	Page    int32 `json:"page"     validate:"gte=1"`
	PerPage int32 `json:"per_page" validate:"gte=1,lte=100"`
}

type SearchPlayerRequest struct {
	Q *PlayerQuery `json:"q" validate:"required"`
	P *Pagination  `json:"p"`
}

type SearchPlayerResponse struct {
	Players []*PlayerResult `json:"players"`
}

type GetCourseRequest struct {
	Source             string `json:"source"               validate:"required,source_name"`
	CourseID           string `json:"course_id"            validate:"required,numeric"`
	IncludeAlteredTees bool   `json:"include_altered_tees"`
}

type SearchCourseRequest struct {
	Source         string `json:"source"          validate:"required,source_name"`
	Name           string `json:"name"            validate:"omitempty,max=128"`
	FacilityID     string `json:"facility_id"     validate:"omitempty,numeric"`
	Country        string `json:"country"         validate:"omitempty,max=3"`
	State          string `json:"state"           validate:"omitempty,max=8"`
	CourseStatus   string `json:"course_status"   validate:"omitempty,alpha"`
	FacilityStatus string `json:"facility_status" validate:"omitempty,alpha"`
	Offset         int32  `json:"offset"          validate:"gte=0"`
	Limit          int32  `json:"limit"           validate:"gte=0,lte=100"`
	IncludeTeeSets bool   `json:"include_tee_sets"`
}

type SearchCourseResponse struct {
	Courses []*Course `json:"courses"`
}

type GetTeesRequest struct {
	Source   string `json:"source"    validate:"required,source_name"`
	CourseID string `json:"course_id" validate:"required,numeric"`
	TeeID    string `json:"tee_id"    validate:"omitempty,number"`
}

type GetTeesResponse struct {
	Tees []*Tee `json:"tees"`
}

type GpaRequest struct {
	Source   string `json:"source"    validate:"required,source_name"`
	GolferID string `json:"golfer_id" validate:"required,numeric"`
	Email    string `json:"email"     validate:"required,email"`
}

type GpaResponse struct {
	Success string `json:"success"`
}

type PlayingHandicapGolfer struct {
	GolferID      string `json:"golfer_id"      validate:"required,numeric"`
	HandicapIndex string `json:"handicap_index" validate:"omitempty,max=8"`
	TeeSetID      string `json:"tee_set_id"     validate:"required,numeric"`
	TeeSetSide    string `json:"tee_set_side"   validate:"required,oneof=All18 F9 B9"`
}

type GetPlayingHandicapsRequest struct {
	Source   string                   `json:"source"   validate:"required,source_name"`
	Golfers  []*PlayingHandicapGolfer `json:"golfers"  validate:"required,min=1,max=50,dive,required"`
	Percents []int32                  `json:"percents" validate:"required,min=1,max=10,dive,gte=1,lte=100"`
}

type PlayingHandicap struct {
	GolferID        string `json:"golfer_id"`
	TeeSetID        string `json:"tee_set_id"`
	CourseHandicap  string `json:"course_handicap"`
	PlayingHandicap string `json:"playing_handicap"`
}

type PlayingHandicapPercent struct {
	Percent int32              `json:"percent"`
	Golfers []*PlayingHandicap `json:"golfers"`
}

type GetPlayingHandicapsResponse struct {
	Percents []*PlayingHandicapPercent `json:"percents"`
}
