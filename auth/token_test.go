// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/drschille/MessageSearchBE/core"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() TokenOptions {
	return TokenOptions{
		Issuer:   "app",
		Audience: "app-clients",
		Subject:  "user-123",
		Roles:    []string{"editor"},
		Secret:   "dev-secret",
		TTL:      time.Hour,
	}
}

func TestIssue_TokenShape(t *testing.T) {
	token, err := Issue(testOptions(), time.Now())
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3, "JWT has header, payload and signature segments")
	for _, segment := range segments {
		assert.NotEmpty(t, segment)
		assert.NotContains(t, segment, "=", "base64url segments carry no padding")
	}
}

func TestIssue_ClaimsRoundTrip(t *testing.T) {
	issuedAt := time.Unix(1756200000, 0)
	opts := testOptions()

	token, err := Issue(opts, issuedAt)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		require.Equal(t, jwt.SigningMethodHS256, tok.Method)
		return []byte(opts.Secret), nil
	}, jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "app", claims["iss"])
	assert.Equal(t, "app-clients", claims["aud"])
	assert.Equal(t, "user-123", claims["sub"])
	assert.Equal(t, []any{"editor"}, claims["roles"])
	assert.Equal(t, float64(issuedAt.Unix()), claims["iat"])
	assert.Equal(t, float64(issuedAt.Add(time.Hour).Unix()), claims["exp"],
		"exp is iat plus the configured TTL")
}

func TestIssue_RejectsWrongSecret(t *testing.T) {
	token, err := Issue(testOptions(), time.Now())
	require.NoError(t, err)

	_, err = jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestIssue_RequiresRoles(t *testing.T) {
	opts := testOptions()
	opts.Roles = nil

	_, err := Issue(opts, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestParseRoles(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single role", "editor", []string{"editor"}},
		{"multiple roles", "editor,admin", []string{"editor", "admin"}},
		{"whitespace trimmed", " editor , admin ", []string{"editor", "admin"}},
		{"empty entries dropped", "editor,,admin,", []string{"editor", "admin"}},
		{"empty input", "", nil},
		{"only separators", ", ,", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseRoles(tc.input))
		})
	}
}
