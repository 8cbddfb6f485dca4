package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/exercises"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}

type historyItem struct {
	ID     int      `json:"id"`
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	Reps   int      `json:"reps"`
	Weight *float64 `json:"weight"`
}

func (s *IntegrationTestSuite) TestExercises_HistoryAndRecords() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.registerUser(ctx, "lifter", "lifterpass")
	token := doLogin(ctx, t, s.httpClient, "lifter", "lifterpass")

	base := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	sets := []exercises.AddSetRequest{
		{Name: "Bench Press", Kind: "weighted", Reps: 5, Weight: floatPtr(80), CreatedAt: timePtr(base)},
		{Name: "Bench Press", Kind: "weighted", Reps: 5, Weight: floatPtr(80), CreatedAt: timePtr(base.Add(time.Minute))},
		{Name: "Bench Press", Kind: "weighted", Reps: 3, Weight: floatPtr(80), CreatedAt: timePtr(base.Add(2 * time.Minute))},
		{Name: "Bench Press", Kind: "weighted", Reps: 1, Weight: floatPtr(85), CreatedAt: timePtr(base.Add(24 * time.Hour))},
		{Name: "Bench Press", Kind: "weighted", Reps: 10, Weight: floatPtr(60), CreatedAt: timePtr(base.Add(25 * time.Hour))},
		{Name: "Pull-up", Kind: "bodyweight", Reps: 12, CreatedAt: timePtr(base.Add(3 * time.Minute))},
		{Name: "Pull-up", Kind: "bodyweight", Reps: 15, CreatedAt: timePtr(base.Add(4 * time.Minute))},
		{Name: "Pull-up", Kind: "bodyweight", Reps: 10, CreatedAt: timePtr(base.Add(5 * time.Minute))},
		{Name: "Pull-up", Kind: "bodyweight", Reps: 12, CreatedAt: timePtr(base.Add(6 * time.Minute))},
	}
	for _, set := range sets {
		resp, respBytes := doRequest(ctx, t, s.httpClient, "POST", "/api/exercise/set", token, set)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBytes))
	}

	var count int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM exercise_set es JOIN users u ON u.id = es.user_id WHERE u.username = $1`,
		"lifter",
	).Scan(&count))
	assert.Equal(t, len(sets), count)

	// history, newest first
	resp, respBytes := doRequest(ctx, t, s.httpClient, "GET", "/api/exercise/set?limit=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []historyItem
	require.NoError(t, json.Unmarshal(respBytes, &history))
	require.Len(t, history, 2)
	assert.Equal(t, 10, history[0].Reps)
	assert.Equal(t, "weighted", history[0].Kind)
	assert.Equal(t, 1, history[1].Reps)

	resp, respBytes = doRequest(ctx, t, s.httpClient, "GET", "/api/exercise/set", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(respBytes, &history))
	assert.Len(t, history, len(sets))

	resp, _ = doRequest(ctx, t, s.httpClient, "GET", "/api/exercise/set?limit=-1", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// personal records
	resp, respBytes = doRequest(ctx, t, s.httpClient, "GET", "/api/exercise/pr", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prs exercises.PersonalRecords
	require.NoError(t, json.Unmarshal(respBytes, &prs))
	assert.Equal(t, []exercises.WeightedPR{
		{
			Name: "Bench Press",
			Records: []exercises.WeightedRecord{
				{Weight: 85, Reps: 1},
				{Weight: 80, Reps: 5},
				{Weight: 80, Reps: 3},
			},
		},
	}, prs.Weighted)
	assert.Equal(t, []exercises.BodyweightPR{
		{Name: "Pull-up", Reps: []int{15, 12, 10}},
	}, prs.Bodyweight)

	// graph
	resp, respBytes = doRequest(ctx, t, s.httpClient, "GET", "/api/exercise/graph", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var graph []exercises.ExerciseGraph
	require.NoError(t, json.Unmarshal(respBytes, &graph))
	require.Len(t, graph, 1)
	assert.Equal(t, "Bench Press", graph[0].Name)
	require.Len(t, graph[0].Days, 2)
	assert.Equal(t, "2024-05-01", graph[0].Days[0].Date)
	assert.Len(t, graph[0].Days[0].Sets, 3)
	assert.Equal(t, "2024-05-02", graph[0].Days[1].Date)
}

func (s *IntegrationTestSuite) TestExercises_ValidationAndDelete() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.registerUser(ctx, "deleter", "deleterpass")
	token := doLogin(ctx, t, s.httpClient, "deleter", "deleterpass")
	otherToken := doLogin(ctx, t, s.httpClient, testUsername, testPassword)

	resp, _ := doRequest(ctx, t, s.httpClient, "POST", "/api/exercise/set", token, exercises.AddSetRequest{
		Name: "Squat", Kind: "weighted", Reps: 0, Weight: floatPtr(100),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(ctx, t, s.httpClient, "POST", "/api/exercise/set", token, exercises.AddSetRequest{
		Name: "Dips", Kind: "bodyweight", Reps: 10, Weight: floatPtr(10),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, respBytes := doRequest(ctx, t, s.httpClient, "POST", "/api/exercise/set", token, exercises.AddSetRequest{
		Name: "Squat", Kind: "weighted", Reps: 5, Weight: floatPtr(100),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBytes))
	var added historyItem
	require.NoError(t, json.Unmarshal(respBytes, &added))

	// a name keeps its kind
	resp, _ = doRequest(ctx, t, s.httpClient, "POST", "/api/exercise/set", token, exercises.AddSetRequest{
		Name: "Squat", Kind: "bodyweight", Reps: 5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// only the owner can delete
	resp, _ = doRequest(ctx, t, s.httpClient, "DELETE", fmt.Sprintf("/api/exercise/set/%d", added.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, respBytes = doRequest(ctx, t, s.httpClient, "DELETE", fmt.Sprintf("/api/exercise/set/%d", added.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, fmt.Sprintf(`{"deletedId":%d}`, added.ID), string(respBytes))

	var count int
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercise_set WHERE id = $1`, added.ID).Scan(&count))
	assert.Zero(t, count)
}
