package test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/gymtracker/internal/bodystats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestBodyStats() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.registerUser(ctx, "measured", "measuredpass")
	token := doLogin(ctx, t, s.httpClient, "measured", "measuredpass")

	first := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	second := first.Add(7 * 24 * time.Hour)

	resp, respBytes := doRequest(ctx, t, s.httpClient, "POST", "/api/user/info-ts", token, bodystats.AddRequest{
		Measurement: bodystats.Measurement{Height: floatPtr(180), Weight: floatPtr(84)},
		CreatedAt:   &first,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBytes))

	resp, respBytes = doRequest(ctx, t, s.httpClient, "POST", "/api/user/info-ts", token, bodystats.AddRequest{
		Measurement: bodystats.Measurement{Weight: floatPtr(82.5), BodyFat: floatPtr(15)},
		CreatedAt:   &second,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(respBytes))

	resp, _ = doRequest(ctx, t, s.httpClient, "POST", "/api/user/info-ts", token, bodystats.AddRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, respBytes = doRequest(ctx, t, s.httpClient, "GET", "/api/user/info-ts/latest", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var latest bodystats.Latest
	require.NoError(t, json.Unmarshal(respBytes, &latest))

	require.NotNil(t, latest.Height)
	assert.Equal(t, 180.0, latest.Height.Value)
	assert.True(t, first.Equal(latest.Height.RecordedAt))
	require.NotNil(t, latest.Weight)
	assert.Equal(t, 82.5, latest.Weight.Value)
	assert.True(t, second.Equal(latest.Weight.RecordedAt))
	require.NotNil(t, latest.BodyFat)
	assert.Equal(t, 15.0, latest.BodyFat.Value)
	assert.Nil(t, latest.MuscleMass)

	resp, respBytes = doRequest(ctx, t, s.httpClient, "GET", "/api/user/info-ts?limit=1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []bodystats.Entry
	require.NoError(t, json.Unmarshal(respBytes, &entries))
	require.Len(t, entries, 1)
	assert.True(t, second.Equal(entries[0].CreatedAt))
}
