package domain

// Course is the uniform course record produced by both the single-course
// lookup and the course search.
type Course struct {
	CourseID                    int32        `json:"course_id"`
	CourseStatus                string       `json:"course_status"`
	CourseName                  string       `json:"course_name"`
	CourseNumber                int32        `json:"course_number"`
	FacilityID                  int32        `json:"facility_id"`
	FacilityStatus              string       `json:"facility_status"`
	FacilityName                string       `json:"facility_name"`
	FacilityNumber              string       `json:"facility_number"`
	FullName                    string       `json:"full_name"`
	Address1                    string       `json:"address1"`
	Address2                    string       `json:"address2"`
	City                        string       `json:"city"`
	State                       string       `json:"state"`
	Zip                         string       `json:"zip"`
	Country                     string       `json:"country"`
	GeoLocationFormattedAddress string       `json:"geo_location_formatted_address"`
	GeoLocationLatitude         float64      `json:"geo_location_latitude"`
	GeoLocationLongitude        float64      `json:"geo_location_longitude"`
	SeasonName                  string       `json:"season_name"`
	SeasonStartDate             string       `json:"season_start_date"`
	SeasonEndDate               string       `json:"season_end_date"`
	IsAllYear                   bool         `json:"is_all_year"`
	UpdatedOn                   string       `json:"updated_on"`
	Tees                        []Tee        `json:"tees"`
	TeeSummaries                []TeeSummary `json:"tee_summaries"`
}

// TeeSummary is the abbreviated tee listing returned by course search.
type TeeSummary struct {
	TeeID   int32  `json:"tee_id"`
	TeeName string `json:"tee_name"`
	Status  string `json:"status"`
}

type Tee struct {
	TeeID        int32      `json:"tee_id"`
	TeeName      string     `json:"tee_name"`
	Gender       string     `json:"gender"`
	HolesNumber  int32      `json:"holes_number"`
	TotalYardage int32      `json:"total_yardage"`
	TotalMeters  int32      `json:"total_meters"`
	TotalPar     int32      `json:"total_par"`
	Ratings      []Rating   `json:"ratings"`
	Holes        []Hole     `json:"holes"`
	Course       *TeeCourse `json:"course,omitempty"`
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

// TeeCourse identifies the course a tee set belongs to.
type TeeCourse struct {
	CourseID     int32  `json:"course_id"`
	CourseStatus string `json:"course_status"`
	CourseName   string `json:"course_name"`
	CourseNumber int32  `json:"course_number"`
	CourseCity   string `json:"course_city"`
	CourseState  string `json:"course_state"`
}

type CourseQuery struct {
	Source             string `json:"source"`
	CourseID           string `json:"course_id"`
	IncludeAlteredTees bool   `json:"include_altered_tees"`
}

type CourseSearchQuery struct {
	Source         string `json:"source"`
	Name           string `json:"name"`
	FacilityID     string `json:"facility_id"`
	Country        string `json:"country"`
	State          string `json:"state"`
	CourseStatus   string `json:"course_status"`
	FacilityStatus string `json:"facility_status"`
	Offset         int32  `json:"offset"`
	Limit          int32  `json:"limit"`
	IncludeTeeSets bool   `json:"include_tee_sets"`
}

// TeeQuery selects the tee sets of a course. An empty TeeID selects all of them.
type TeeQuery struct {
	Source   string `json:"source"`
	CourseID string `json:"course_id"`
	TeeID    string `json:"tee_id"`
}
