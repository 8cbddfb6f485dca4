package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/users"

	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) registerUser(ctx context.Context, username, password string) {
	reqJson, err := json.Marshal(users.RegisterRequest{
		Username:    username,
		Email:       username + "@gymtracker.test",
		Password:    password,
		DisplayName: "Display " + username,
	})
	if err != nil {
		log.Fatalf("marshal register request: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/api/user/register", serverEndpoint), bytes.NewBuffer(reqJson))
	if err != nil {
		log.Fatalf("new register request: %s", err)
	}
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Fatalf("register %s: %s", username, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("register %s: unexpected status %d", username, resp.StatusCode)
	}
}

func doLogin(ctx context.Context, t *testing.T, client *http.Client, username, password string) string {
	loginReqJson, err := json.Marshal(users.LoginRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/api/user/login", serverEndpoint), bytes.NewBuffer(loginReqJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, respBytes)

	var loginResp users.LoginResult
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token
}

// doRequest sends body (if not nil) as JSON with the given session token.
func doRequest(ctx context.Context, t *testing.T, client *http.Client, method, path, token string, body any) (*http.Response, []byte) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, respBytes
}
