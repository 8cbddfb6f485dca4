package test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/2beens/gymtracker/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := map[string]struct {
		loginReq           users.LoginRequest
		expectedStatusCode int
		assertFunc         func(respBytes []byte)
	}{
		"good creds": {
			loginReq: users.LoginRequest{
				Username: testUsername,
				Password: testPassword,
			},
			expectedStatusCode: http.StatusOK,
			assertFunc: func(respBytes []byte) {
				var loginResp users.LoginResult
				require.NoError(t, json.Unmarshal(respBytes, &loginResp))
				assert.NotEmpty(t, loginResp.Token)
				assert.Equal(t, "Display "+testUsername, loginResp.DisplayName)
				assert.False(t, loginResp.IsSuperuser)
			},
		},
		"admin creds": {
			loginReq: users.LoginRequest{
				Username: testAdminUsername,
				Password: testAdminPassword,
			},
			expectedStatusCode: http.StatusOK,
			assertFunc: func(respBytes []byte) {
				var loginResp users.LoginResult
				require.NoError(t, json.Unmarshal(respBytes, &loginResp))
				assert.True(t, loginResp.IsSuperuser)
			},
		},
		"bad password": {
			loginReq: users.LoginRequest{
				Username: testUsername,
				Password: "bad-password",
			},
			expectedStatusCode: http.StatusUnauthorized,
			assertFunc: func(respBytes []byte) {
				assert.Equal(t, "error, wrong credentials", strings.TrimSpace(string(respBytes)))
			},
		},
		"unknown user looks the same as bad password": {
			loginReq: users.LoginRequest{
				Username: "nobody",
				Password: "whatever",
			},
			expectedStatusCode: http.StatusUnauthorized,
			assertFunc: func(respBytes []byte) {
				assert.Equal(t, "error, wrong credentials", strings.TrimSpace(string(respBytes)))
			},
		},
		"missing password": {
			loginReq: users.LoginRequest{
				Username: testUsername,
			},
			expectedStatusCode: http.StatusBadRequest,
			assertFunc: func(respBytes []byte) {
				assert.Equal(t, "error, password empty", strings.TrimSpace(string(respBytes)))
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			resp, respBytes := doRequest(ctx, t, s.httpClient, "POST", "/api/user/login", "", tc.loginReq)
			require.Equal(t, tc.expectedStatusCode, resp.StatusCode)
			tc.assertFunc(respBytes)
		})
	}
}

func (s *IntegrationTestSuite) TestLogoutInvalidatesToken() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := doLogin(ctx, t, s.httpClient, testUsername, testPassword)

	resp, _ := doRequest(ctx, t, s.httpClient, "GET", "/api/auth/check", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(ctx, t, s.httpClient, "GET", "/api/user/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(ctx, t, s.httpClient, "GET", "/api/auth/check", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(ctx, t, s.httpClient, "GET", "/api/auth/check", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestRegisterDuplicate() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp, _ := doRequest(ctx, t, s.httpClient, "POST", "/api/user/register", "", users.RegisterRequest{
		Username:    testUsername,
		Email:       "other@gymtracker.test",
		Password:    "pass",
		DisplayName: "Other",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doRequest(ctx, t, s.httpClient, "POST", "/api/user/register", "", users.RegisterRequest{
		Username:    "bad-email-user",
		Email:       "not-an-email",
		Password:    "pass",
		DisplayName: "Bad",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestUserInfo() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := doLogin(ctx, t, s.httpClient, testUsername, testPassword)

	resp, respBytes := doRequest(ctx, t, s.httpClient, "PUT", "/api/user/info", token, users.UpdateInfoRequest{
		DisplayName: "Renamed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(respBytes))

	resp, respBytes = doRequest(ctx, t, s.httpClient, "GET", "/api/user/info", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info users.Info
	require.NoError(t, json.Unmarshal(respBytes, &info))
	assert.Equal(t, testUsername, info.Username)
	assert.Equal(t, "Renamed", info.DisplayName)

	var displayName string
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT ui.display_name FROM user_info ui JOIN users u ON u.id = ui.user_id WHERE u.username = $1`,
		testUsername,
	).Scan(&displayName))
	assert.Equal(t, "Renamed", displayName)

	// put it back for the other tests
	resp, _ = doRequest(ctx, t, s.httpClient, "PUT", "/api/user/info", token, users.UpdateInfoRequest{
		DisplayName: "Display " + testUsername,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
