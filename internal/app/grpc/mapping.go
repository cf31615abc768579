package grpc

import (
	"github.com/spounge-ai/handicap/internal/domain"
	handicapv1 "github.com/spounge-ai/handicap/pkg/handicap/v1"
)

func fromSearchPlayerRequest(req *handicapv1.SearchPlayerRequest) (domain.PlayerQuery, domain.Pagination) {
	var q domain.PlayerQuery
	if req.Q != nil {
		q = domain.PlayerQuery{
			Source:    req.Q.Source,
			GolferID:  req.Q.GolferID,
			Country:   req.Q.Country,
			State:     req.Q.State,
			LastName:  req.Q.LastName,
			FirstName: req.Q.FirstName,
			Email:     req.Q.Email,
		}
	}
	var p domain.Pagination
	if req.P != nil {
		p = domain.Pagination{Page: req.P.Page, PerPage: req.P.PerPage}
	}
	return q, p
}

func toPlayerResult(p domain.Player) *handicapv1.PlayerResult {
	out := &handicapv1.PlayerResult{
		ID:         p.ID,
		Source:     p.Source,
		Prefix:     p.Prefix,
		FirstName:  p.FirstName,
		MiddleName: p.MiddleName,
		LastName:   p.LastName,
		Suffix:     p.Suffix,
		PlayerName: p.PlayerName,
		Gender:     p.Gender,
		Active:     p.Active,
		Index:      p.Index,
		RevDate:    p.RevDate,
		Clubs:      make([]*handicapv1.Club, 0, len(p.Clubs)),
	}
	for _, c := range p.Clubs {
		out.Clubs = append(out.Clubs, &handicapv1.Club{
			ID:      c.ID,
			Name:    c.Name,
			Assn:    c.Assn,
			State:   c.State,
			Country: c.Country,
		})
	}
	return out
}

func toCourse(c domain.Course) *handicapv1.Course {
	out := &handicapv1.Course{
		CourseID:                    c.CourseID,
		CourseStatus:                c.CourseStatus,
		CourseName:                  c.CourseName,
		CourseNumber:                c.CourseNumber,
		FacilityID:                  c.FacilityID,
		FacilityStatus:              c.FacilityStatus,
		FacilityName:                c.FacilityName,
		FacilityNumber:              c.FacilityNumber,
		FullName:                    c.FullName,
		Address1:                    c.Address1,
		Address2:                    c.Address2,
		City:                        c.City,
		State:                       c.State,
		Zip:                         c.Zip,
		Country:                     c.Country,
		GeoLocationFormattedAddress: c.GeoLocationFormattedAddress,
		GeoLocationLatitude:         c.GeoLocationLatitude,
		GeoLocationLongitude:        c.GeoLocationLongitude,
		SeasonName:                  c.SeasonName,
		SeasonStartDate:             c.SeasonStartDate,
		SeasonEndDate:               c.SeasonEndDate,
		IsAllYear:                   c.IsAllYear,
		UpdatedOn:                   c.UpdatedOn,
		Tees:                        toTees(c.Tees),
		TeeSummaries:                make([]*handicapv1.TeeSummary, 0, len(c.TeeSummaries)),
	}
	for _, ts := range c.TeeSummaries {
		out.TeeSummaries = append(out.TeeSummaries, &handicapv1.TeeSummary{
			TeeID:   ts.TeeID,
			TeeName: ts.TeeName,
			Status:  ts.Status,
		})
	}
	return out
}

func toTees(tees []domain.Tee) []*handicapv1.Tee {
	out := make([]*handicapv1.Tee, 0, len(tees))
	for _, t := range tees {
		tee := &handicapv1.Tee{
			TeeID:        t.TeeID,
			TeeName:      t.TeeName,
			Gender:       t.Gender,
			HolesNumber:  t.HolesNumber,
			TotalYardage: t.TotalYardage,
			TotalMeters:  t.TotalMeters,
			TotalPar:     t.TotalPar,
			Ratings:      make([]*handicapv1.Rating, 0, len(t.Ratings)),
			Holes:        make([]*handicapv1.Hole, 0, len(t.Holes)),
		}
		for _, r := range t.Ratings {
			tee.Ratings = append(tee.Ratings, &handicapv1.Rating{
				RatingType:   r.RatingType,
				CourseRating: r.CourseRating,
				SlopeRating:  r.SlopeRating,
				BogeyRating:  r.BogeyRating,
			})
		}
		for _, h := range t.Holes {
			tee.Holes = append(tee.Holes, &handicapv1.Hole{
				Number:     h.Number,
				HoleID:     h.HoleID,
				Length:     h.Length,
				Par:        h.Par,
				Allocation: h.Allocation,
			})
		}
		if t.Course != nil {
			tee.Course = &handicapv1.TeeCourse{
				CourseID:     t.Course.CourseID,
				CourseStatus: t.Course.CourseStatus,
				CourseName:   t.Course.CourseName,
				CourseNumber: t.Course.CourseNumber,
				CourseCity:   t.Course.CourseCity,
				CourseState:  t.Course.CourseState,
			}
		}
		out = append(out, tee)
	}
	return out
}

func fromPlayingHandicapsRequest(req *handicapv1.GetPlayingHandicapsRequest) domain.PlayingHandicapQuery {
	q := domain.PlayingHandicapQuery{
		Source:   req.Source,
		Golfers:  make([]domain.PlayingHandicapGolfer, 0, len(req.Golfers)),
		Percents: req.Percents,
	}
	for _, g := range req.Golfers {
		if g == nil {
			continue
		}
		q.Golfers = append(q.Golfers, domain.PlayingHandicapGolfer{
			GolferID:      g.GolferID,
			HandicapIndex: g.HandicapIndex,
			TeeSetID:      g.TeeSetID,
			TeeSetSide:    g.TeeSetSide,
		})
	}
	return q
}

func toPlayingHandicapsResponse(groups []domain.PlayingHandicapGroup) *handicapv1.GetPlayingHandicapsResponse {
	resp := &handicapv1.GetPlayingHandicapsResponse{Percents: make([]*handicapv1.PlayingHandicapPercent, 0, len(groups))}
	for _, g := range groups {
		percent := &handicapv1.PlayingHandicapPercent{
			Percent: g.Percent,
			Golfers: make([]*handicapv1.PlayingHandicap, 0, len(g.Golfers)),
		}
		for _, h := range g.Golfers {
			percent.Golfers = append(percent.Golfers, &handicapv1.PlayingHandicap{
				GolferID:        h.GolferID,
				TeeSetID:        h.TeeSetID,
				CourseHandicap:  h.CourseHandicap,
				PlayingHandicap: h.PlayingHandicap,
			})
		}
		resp.Percents = append(resp.Percents, percent)
	}
	return resp
}
