package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pedigree/api/models"
	authz "pedigree/api/models/authorization"
	authzc "pedigree/api/models/constants/authorization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicyServer(t *testing.T, status int, response string) *AuthzService {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/policy/evaluate", r.URL.Path)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"everything": true}, body["requested_resource"])
		assert.Equal(t, []interface{}{"analyze:data"}, body["required_permissions"])

		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	cfg := &models.Config{}
	cfg.AuthX.IsAuthorizationEnabled = true
	cfg.AuthX.AuthorizationUrl = srv.URL + "/"
	return NewAuthzService(cfg)
}

var analyzeEverything = []authz.Permission{{Verb: authzc.ANALYZE, Noun: authzc.DATA}}

func TestEnsureAccessPermittedForUser(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		wantErr  string
	}{
		{"granted", http.StatusOK, `{"result": true}`, ""},
		{"denied", http.StatusOK, `{"result": false}`, "access denied"},
		{"forbidden status", http.StatusForbidden, `{}`, "access denied"},
		{"missing result", http.StatusOK, `{}`, publicAuthzErrorMessage},
		{"malformed response", http.StatusOK, `nope`, publicAuthzErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			az := newPolicyServer(t, tt.status, tt.response)

			err := az.EnsureAccessPermittedForUser("abc", authz.ResourceEverything{Everything: true}, analyzeEverything)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestFetchAuthorizationHeader(t *testing.T) {
	az := NewAuthzService(&models.Config{})
	assert.False(t, az.IsEnabled())

	_, err := az.FetchAuthorizationHeader(http.Header{})
	assert.Error(t, err)

	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	token, err := az.FetchAuthorizationHeader(h)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	h.Set("Authorization", "abc")
	token, err = az.FetchAuthorizationHeader(h)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}
