package ghin_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/spounge-ai/handicap/internal/domain"
	app_errors "github.com/spounge-ai/handicap/internal/errors"
	"github.com/spounge-ai/handicap/internal/infra/config"
	"github.com/spounge-ai/handicap/internal/provider/ghin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGHIN is an upstream that issues tokens on login and accepts only the
// most recent one. rejectAll makes every authenticated call return 401.
type fakeGHIN struct {
	mu        sync.Mutex
	current   string
	logins    atomic.Int32
	calls     atomic.Int32
	rejectAll bool
	routes    map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeGHIN() *fakeGHIN {
	return &fakeGHIN{routes: map[string]func(http.ResponseWriter, *http.Request){}}
}

func (f *fakeGHIN) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/users/login.json" {
		var body struct {
			User struct {
				Email      string `json:"email"`
				Password   string `json:"password"`
				RememberMe bool   `json:"remember_me"`
			} `json:"user"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.User.Password != "secret" || !body.User.RememberMe {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		n := f.logins.Add(1)
		f.mu.Lock()
		f.current = fmt.Sprintf("tok-%d", n)
		tok := f.current
		f.mu.Unlock()
		_, _ = fmt.Fprintf(w, `{"token":%q}`, tok)
		return
	}

	f.calls.Add(1)
	f.mu.Lock()
	valid := f.current != "" && r.Header.Get("Authorization") == "Bearer "+f.current
	f.mu.Unlock()
	if f.rejectAll || !valid {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	route, ok := f.routes[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	route(w, r)
}

func newProvider(t *testing.T, fake http.Handler) *ghin.Provider {
	t.Helper()

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	p, err := ghin.New("ghin", config.ProviderConfig{
		BaseURL:  server.URL,
		Username: "user@example.com",
		Password: "secret",
		Login:    config.LoginPassword,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return p
}

const threeClubs = `{"golfers":[
 {"ghin":"123","first_name":"Jane","last_name":"Doe","club_id":1,"club_name":"A"},
 {"ghin":"123","first_name":"Jane","last_name":"Doe","club_id":2,"club_name":"B"},
 {"ghin":"123","first_name":"Jane","last_name":"Doe","club_id":3,"club_name":"C"}]}`

func TestSearchPlayers_LogsInLazilyAndRollsUp(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/golfers/search.json"] = func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "123", q.Get("golfer_id"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "25", q.Get("per_page"))
		assert.Equal(t, "Active", q.Get("status"))
		assert.Equal(t, "full_name", q.Get("sorting_criteria"))
		assert.Equal(t, "asc", q.Get("order"))
		_, _ = io.WriteString(w, threeClubs)
	}
	p := newProvider(t, fake)

	players, err := p.SearchPlayers(context.Background(),
		domain.PlayerQuery{Source: "ghin", GolferID: "123"},
		domain.Pagination{Page: 1, PerPage: 25})

	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Len(t, players[0].Clubs, 3)
	assert.Equal(t, int32(1), fake.logins.Load(), "first call starts with an empty credential")
	assert.Equal(t, int32(2), fake.calls.Load())
	assert.Equal(t, uint64(1), p.TokenGeneration())
}

func TestSearchPlayers_FanOutReusesCredential(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/golfers/search.json"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Smith", r.URL.Query().Get("last_name"))
		_, _ = io.WriteString(w, `{"golfers":[{"ghin":"1","last_name":"Smith"},{"ghin":"2","last_name":"Smith"}]}`)
	}
	p := newProvider(t, fake)
	q := domain.PlayerQuery{Source: "ghin", LastName: "Smith"}

	for i := 0; i < 3; i++ {
		players, err := p.SearchPlayers(context.Background(), q, domain.Pagination{Page: 1, PerPage: 25})
		require.NoError(t, err)
		require.Len(t, players, 2)
		for _, pl := range players {
			assert.Len(t, pl.Clubs, 1)
		}
	}
	assert.Equal(t, int32(1), fake.logins.Load())
}

func TestSearchPlayers_RetryExhausted(t *testing.T) {
	fake := newFakeGHIN()
	fake.rejectAll = true
	p := newProvider(t, fake)

	_, err := p.SearchPlayers(context.Background(), domain.PlayerQuery{Source: "ghin", GolferID: "1"}, domain.Pagination{Page: 1, PerPage: 25})

	require.ErrorIs(t, err, app_errors.ErrRetryExhausted)
	assert.Equal(t, int32(2), fake.logins.Load())
	assert.Equal(t, int32(2), fake.calls.Load())
}

func TestSearchPlayers_EmptyRollup(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/golfers/search.json"] = func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"golfers":[]}`)
	}
	p := newProvider(t, fake)

	_, err := p.SearchPlayers(context.Background(), domain.PlayerQuery{Source: "ghin", GolferID: "404"}, domain.Pagination{Page: 1, PerPage: 25})

	require.ErrorIs(t, err, app_errors.ErrEmptyResult)
}

func TestGetCourse(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/courses/4511.json"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_altered_tees"))
		_, _ = io.WriteString(w, `{"CourseId":4511,"CourseName":"No. 2","Facility":{"FacilityId":9}}`)
	}
	p := newProvider(t, fake)

	c, err := p.GetCourse(context.Background(), domain.CourseQuery{Source: "ghin", CourseID: "4511", IncludeAlteredTees: true})

	require.NoError(t, err)
	assert.Equal(t, int32(4511), c.CourseID)
	assert.Equal(t, int32(9), c.FacilityID)
}

func TestSearchCourses_OnlySendsSetParameters(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/courses/search.json"] = func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Pinehurst", q.Get("name"))
		assert.Equal(t, "US-NC", q.Get("state"))
		assert.False(t, q.Has("country"))
		assert.False(t, q.Has("offset"))
		_, _ = io.WriteString(w, `{"courses":[{"CourseID":1},{"CourseID":2}]}`)
	}
	p := newProvider(t, fake)

	courses, err := p.SearchCourses(context.Background(), domain.CourseSearchQuery{Source: "ghin", Name: "Pinehurst", State: "US-NC"})

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, int32(2), courses[1].CourseID)
}

func TestGetTees_FiltersByTeeID(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/courses/7/tee_set_ratings.json"] = func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"TeeSetRatingId":1,"TeeSetRatingName":"Blue"},{"TeeSetRatingId":2,"TeeSetRatingName":"White"}]`)
	}
	p := newProvider(t, fake)

	all, err := p.GetTees(context.Background(), domain.TeeQuery{Source: "ghin", CourseID: "7"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := p.GetTees(context.Background(), domain.TeeQuery{Source: "ghin", CourseID: "7", TeeID: "2"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "White", one[0].TeeName)
}

func TestGetTees_TeeIDComparedAsInteger(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/courses/7/tee_set_ratings.json"] = func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"TeeSetRatingId":7,"TeeSetRatingName":"Gold"},{"TeeSetRatingId":70,"TeeSetRatingName":"Red"}]`)
	}
	p := newProvider(t, fake)

	padded, err := p.GetTees(context.Background(), domain.TeeQuery{Source: "ghin", CourseID: "7", TeeID: "07"})
	require.NoError(t, err)
	require.Len(t, padded, 1)
	assert.Equal(t, "Gold", padded[0].TeeName)

	calls := fake.calls.Load()
	_, err = p.GetTees(context.Background(), domain.TeeQuery{Source: "ghin", CourseID: "7", TeeID: "7.0"})
	require.ErrorIs(t, err, app_errors.ErrInvalidInput)
	assert.Equal(t, calls, fake.calls.Load(), "a malformed tee id never reaches upstream")
}

func TestRequestProductAccess(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/users/golfers/123/request_golfer_product_access.json"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])
		_, _ = io.WriteString(w, `{"success":"Request sent"}`)
	}
	p := newProvider(t, fake)

	resp, err := p.RequestProductAccess(context.Background(), "123", "jane@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Request sent", resp.Success)
}

func TestGetPlayingHandicaps_PostsGolfersAndPercents(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/playing_handicaps.json"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Golfers []struct {
				GolferID      string `json:"golfer_id"`
				HandicapIndex string `json:"handicap_index"`
				TeeSetID      string `json:"tee_set_id"`
				TeeSetSide    string `json:"tee_set_side"`
			} `json:"golfers"`
			Percents []int32 `json:"percents"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, []int32{95, 100}, body.Percents)
		if assert.Len(t, body.Golfers, 1) {
			assert.Equal(t, "123", body.Golfers[0].GolferID)
			assert.Equal(t, "All18", body.Golfers[0].TeeSetSide)
		}
		_, _ = io.WriteString(w, `{"percents":[
		 {"percent":95,"golfers":[{"golfer_id":123,"tee_set_id":55,"course_handicap":12,"playing_handicap":11}]},
		 {"percent":100,"golfers":[{"golfer_id":123,"tee_set_id":55,"course_handicap":12,"playing_handicap":12}]}]}`)
	}
	p := newProvider(t, fake)

	groups, err := p.GetPlayingHandicaps(context.Background(), domain.PlayingHandicapQuery{
		Source: "ghin",
		Golfers: []domain.PlayingHandicapGolfer{
			{GolferID: "123", HandicapIndex: "12.4", TeeSetID: "55", TeeSetSide: "All18"},
		},
		Percents: []int32{95, 100},
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, int32(95), groups[0].Percent)
	assert.Equal(t, "11", groups[0].Golfers[0].PlayingHandicap)
	assert.Equal(t, "12", groups[1].Golfers[0].PlayingHandicap)
	assert.Equal(t, int32(1), fake.logins.Load())
}

func TestGetPlayingHandicaps_RetryExhausted(t *testing.T) {
	fake := newFakeGHIN()
	fake.rejectAll = true
	p := newProvider(t, fake)

	_, err := p.GetPlayingHandicaps(context.Background(), domain.PlayingHandicapQuery{
		Source:   "ghin",
		Golfers:  []domain.PlayingHandicapGolfer{{GolferID: "1", TeeSetID: "2", TeeSetSide: "F9"}},
		Percents: []int32{100},
	})
	require.ErrorIs(t, err, app_errors.ErrRetryExhausted)
	assert.Equal(t, int32(2), fake.calls.Load())
}

func TestBadRequestCarriesBody(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/courses/1.json"] = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"errors":{"course_id":["is invalid"]}}`)
	}
	p := newProvider(t, fake)

	_, err := p.GetCourse(context.Background(), domain.CourseQuery{Source: "ghin", CourseID: "1"})

	require.ErrorIs(t, err, app_errors.ErrBadRequest)
	assert.Contains(t, err.Error(), "is invalid")
	assert.Equal(t, int32(1), fake.logins.Load())
}

func TestLoginFailureIsFatal(t *testing.T) {
	fake := newFakeGHIN()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	p, err := ghin.New("ghin", config.ProviderConfig{
		BaseURL:  server.URL,
		Username: "user@example.com",
		Password: "wrong",
		Login:    config.LoginPassword,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = p.GetCourse(context.Background(), domain.CourseQuery{Source: "ghin", CourseID: "1"})

	require.ErrorIs(t, err, app_errors.ErrLogin)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestConcurrentCallsShareCredential(t *testing.T) {
	fake := newFakeGHIN()
	fake.routes["/golfers/search.json"] = func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"golfers":[{"ghin":"1"}]}`)
	}
	p := newProvider(t, fake)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.SearchPlayers(context.Background(), domain.PlayerQuery{Source: "ghin", LastName: "x"}, domain.Pagination{Page: 1, PerPage: 5})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		// A call can lose both attempts to logins from other goroutines.
		if err != nil {
			assert.ErrorIs(t, err, app_errors.ErrRetryExhausted)
		}
	}
	assert.GreaterOrEqual(t, fake.logins.Load(), int32(1))
}

func TestNew_RejectsUnknownLoginMode(t *testing.T) {
	_, err := ghin.New("ghin", config.ProviderConfig{BaseURL: "http://localhost", Login: "oauth"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "oauth"))
}
