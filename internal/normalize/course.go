package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/spounge-ai/handicap/internal/domain"
)

// The single-course endpoint and the search endpoint disagree on field names
// (CourseId vs CourseID, FacilityId vs FacilityID) and on structure, so each
// has its own record type and mapping below. Keep them separate.

// CourseRecord is the body of /courses/{id}.json.
type CourseRecord struct {
	CourseId     *int32          `json:"CourseId"`
	CourseName   *string         `json:"CourseName"`
	CourseStatus *string         `json:"CourseStatus"`
	CourseNumber *int32          `json:"CourseNumber"`
	CourseCity   *string         `json:"CourseCity"`
	CourseState  *string         `json:"CourseState"`
	Facility     *FacilityRecord `json:"Facility"`
	Season       *SeasonRecord   `json:"Season"`
	TeeSets      []TeeRecord     `json:"TeeSets"`
}

type FacilityRecord struct {
	FacilityId                  *int32       `json:"FacilityId"`
	FacilityName                *string      `json:"FacilityName"`
	FacilityStatus              *string      `json:"FacilityStatus"`
	FacilityNumber              *looseString `json:"FacilityNumber"`
	GeoLocationFormattedAddress *string      `json:"GeoLocationFormattedAddress"`
	GeoLocationLatitude         *float64     `json:"GeoLocationLatitude"`
	GeoLocationLongitude        *float64     `json:"GeoLocationLongitude"`
}

type SeasonRecord struct {
	SeasonName      *string `json:"SeasonName"`
	SeasonStartDate *string `json:"SeasonStartDate"`
	SeasonEndDate   *string `json:"SeasonEndDate"`
	IsAllYear       *bool   `json:"IsAllYear"`
}

// SearchCourseRecord is one entry of /courses/search.json.
type SearchCourseRecord struct {
	CourseID             *int32              `json:"CourseID"`
	CourseStatus         *string             `json:"CourseStatus"`
	CourseName           *string             `json:"CourseName"`
	GeoLocationLatitude  *float64            `json:"GeoLocationLatitude"`
	GeoLocationLongitude *float64            `json:"GeoLocationLongitude"`
	FacilityID           *int32              `json:"FacilityID"`
	FacilityStatus       *string             `json:"FacilityStatus"`
	FacilityName         *string             `json:"FacilityName"`
	FullName             *string             `json:"FullName"`
	Address1             *string             `json:"Address1"`
	Address2             *string             `json:"Address2"`
	City                 *string             `json:"City"`
	State                *string             `json:"State"`
	Zip                  *looseString        `json:"Zip"`
	Country              *string             `json:"Country"`
	UpdatedOn            *string             `json:"UpdatedOn"`
	Ratings              []TeeSetRatingEntry `json:"Ratings"`
}

type TeeSetRatingEntry struct {
	TeeSetRatingId   *int32  `json:"TeeSetRatingId"`
	TeeSetRatingName *string `json:"TeeSetRatingName"`
	TeeSetStatus     *string `json:"TeeSetStatus"`
}

type searchCoursesResponse struct {
	Courses []SearchCourseRecord `json:"courses"`
}

// DecodeCourse decodes and maps a single-course body.
func DecodeCourse(body []byte) (*domain.Course, error) {
	var rec CourseRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decoding course: %w", err)
	}
	c := Course(rec)
	return &c, nil
}

// DecodeCourseSearch decodes and maps a course search body.
func DecodeCourseSearch(body []byte) ([]domain.Course, error) {
	var resp searchCoursesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding course search: %w", err)
	}
	return CourseSummaries(resp.Courses), nil
}

// Course maps the single-course record.
func Course(c CourseRecord) domain.Course {
	f := c.Facility
	if f == nil {
		f = &FacilityRecord{}
	}
	s := c.Season
	if s == nil {
		s = &SeasonRecord{}
	}

	return domain.Course{
		CourseID:                    i32(c.CourseId),
		CourseStatus:                str(c.CourseStatus),
		CourseName:                  str(c.CourseName),
		CourseNumber:                i32(c.CourseNumber),
		FacilityID:                  i32(f.FacilityId),
		FacilityStatus:              str(f.FacilityStatus),
		FacilityName:                str(f.FacilityName),
		FacilityNumber:              loose(f.FacilityNumber),
		City:                        str(c.CourseCity),
		State:                       str(c.CourseState),
		GeoLocationFormattedAddress: str(f.GeoLocationFormattedAddress),
		GeoLocationLatitude:         f64(f.GeoLocationLatitude),
		GeoLocationLongitude:        f64(f.GeoLocationLongitude),
		SeasonName:                  str(s.SeasonName),
		SeasonStartDate:             str(s.SeasonStartDate),
		SeasonEndDate:               str(s.SeasonEndDate),
		IsAllYear:                   boolean(s.IsAllYear),
		Tees:                        Tees(c.TeeSets),
		TeeSummaries:                []domain.TeeSummary{},
	}
}

// CourseSummaries maps course search entries.
func CourseSummaries(records []SearchCourseRecord) []domain.Course {
	courses := make([]domain.Course, 0, len(records))
	for _, r := range records {
		summaries := make([]domain.TeeSummary, 0, len(r.Ratings))
		for _, t := range r.Ratings {
			summaries = append(summaries, domain.TeeSummary{
				TeeID:   i32(t.TeeSetRatingId),
				TeeName: str(t.TeeSetRatingName),
				Status:  str(t.TeeSetStatus),
			})
		}

		courses = append(courses, domain.Course{
			CourseID:             i32(r.CourseID),
			CourseStatus:         str(r.CourseStatus),
			CourseName:           str(r.CourseName),
			FacilityID:           i32(r.FacilityID),
			FacilityStatus:       str(r.FacilityStatus),
			FacilityName:         str(r.FacilityName),
			FullName:             str(r.FullName),
			Address1:             str(r.Address1),
			Address2:             str(r.Address2),
			City:                 str(r.City),
			State:                str(r.State),
			Zip:                  loose(r.Zip),
			Country:              str(r.Country),
			GeoLocationLatitude:  f64(r.GeoLocationLatitude),
			GeoLocationLongitude: f64(r.GeoLocationLongitude),
			UpdatedOn:            str(r.UpdatedOn),
			Tees:                 []domain.Tee{},
			TeeSummaries:         summaries,
		})
	}
	return courses
}
