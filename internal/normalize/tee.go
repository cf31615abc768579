package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spounge-ai/handicap/internal/domain"
)

type TeeRecord struct {
	TeeSetRatingId   *int32           `json:"TeeSetRatingId"`
	TeeSetRatingName *string          `json:"TeeSetRatingName"`
	Gender           *string          `json:"Gender"`
	HolesNumber      *int32           `json:"HolesNumber"`
	TotalYardage     *int32           `json:"TotalYardage"`
	TotalMeters      *int32           `json:"TotalMeters"`
	TotalPar         *int32           `json:"TotalPar"`
	Ratings          []RatingRecord   `json:"Ratings"`
	Holes            []HoleRecord     `json:"Holes"`
	Course           *TeeCourseRecord `json:"Course"`
}

type RatingRecord struct {
	RatingType   *string  `json:"RatingType"`
	CourseRating *float64 `json:"CourseRating"`
	SlopeRating  *float64 `json:"SlopeRating"`
	BogeyRating  *float64 `json:"BogeyRating"`
}

type HoleRecord struct {
	Number     *int32       `json:"Number"`
	HoleId     *looseString `json:"HoleId"`
	Length     *int32       `json:"Length"`
	Par        *int32       `json:"Par"`
	Allocation *int32       `json:"Allocation"`
}

type TeeCourseRecord struct {
	CourseId     *int32  `json:"CourseId"`
	CourseStatus *string `json:"CourseStatus"`
	CourseName   *string `json:"CourseName"`
	CourseNumber *int32  `json:"CourseNumber"`
	CourseCity   *string `json:"CourseCity"`
	CourseState  *string `json:"CourseState"`
}

// DecodeTees decodes a tee set body, either a bare array or an object with a
// TeeSets array.
func DecodeTees(body []byte) ([]domain.Tee, error) {
	var records []TeeRecord
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decoding tee sets: %w", err)
		}
	} else {
		var wrapped struct {
			TeeSets []TeeRecord `json:"TeeSets"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decoding tee sets: %w", err)
		}
		records = wrapped.TeeSets
	}
	return Tees(records), nil
}

// Tees maps tee set records with their nested ratings and holes.
func Tees(records []TeeRecord) []domain.Tee {
	tees := make([]domain.Tee, 0, len(records))
	for _, t := range records {
		ratings := make([]domain.Rating, 0, len(t.Ratings))
		for _, r := range t.Ratings {
			ratings = append(ratings, domain.Rating{
				RatingType:   str(r.RatingType),
				CourseRating: f64(r.CourseRating),
				SlopeRating:  f64(r.SlopeRating),
				BogeyRating:  f64(r.BogeyRating),
			})
		}

		holes := make([]domain.Hole, 0, len(t.Holes))
		for _, h := range t.Holes {
			holes = append(holes, domain.Hole{
				Number:     i32(h.Number),
				HoleID:     loose(h.HoleId),
				Length:     i32(h.Length),
				Par:        i32(h.Par),
				Allocation: i32(h.Allocation),
			})
		}

		var course *domain.TeeCourse
		if t.Course != nil {
			course = &domain.TeeCourse{
				CourseID:     i32(t.Course.CourseId),
				CourseStatus: str(t.Course.CourseStatus),
				CourseName:   str(t.Course.CourseName),
				CourseNumber: i32(t.Course.CourseNumber),
				CourseCity:   str(t.Course.CourseCity),
				CourseState:  str(t.Course.CourseState),
			}
		}

		tees = append(tees, domain.Tee{
			TeeID:        i32(t.TeeSetRatingId),
			TeeName:      str(t.TeeSetRatingName),
			Gender:       Gender(str(t.Gender)),
			HolesNumber:  i32(t.HolesNumber),
			TotalYardage: i32(t.TotalYardage),
			TotalMeters:  i32(t.TotalMeters),
			TotalPar:     i32(t.TotalPar),
			Ratings:      ratings,
			Holes:        holes,
			Course:       course,
		})
	}
	return tees
}
