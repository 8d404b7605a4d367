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


// Package auth issues the HS256 bearer tokens the import pipeline
// presents to the MessageSearch service. HS256 is the only signing
// algorithm the service accepts.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/drschille/MessageSearchBE/core"
	"github.com/golang-jwt/jwt/v5"
)

// TokenOptions are the claims and signing inputs for one token.
type TokenOptions struct {
	Issuer   string
	Audience string
	Subject  string
	Roles    []string
	Secret   string
	TTL      time.Duration
}

// Issue signs an HS256 JWT with the claims iss, aud, sub, roles, iat
// and exp (= iat + TTL), issued at the given instant. At least one
// role is required.
func Issue(opts TokenOptions, issuedAt time.Time) (string, error) {
	if len(opts.Roles) == 0 {
		return "", fmt.Errorf("%w: roles must include at least one role", core.ErrConfiguration)
	}

	claims := jwt.MapClaims{
		"iss":   opts.Issuer,
		"aud":   opts.Audience,
		"sub":   opts.Subject,
		"roles": opts.Roles,
		"iat":   issuedAt.Unix(),
		"exp":   issuedAt.Add(opts.TTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(opts.Secret))
	if err != nil {
		return "", fmt.Errorf("cannot sign token: %w", err)
	}
	return token, nil
}

// ParseRoles splits a comma-separated role list, trimming whitespace
// and dropping empty entries.
func ParseRoles(value string) []string {
	var roles []string
	for _, role := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(role); trimmed != "" {
			roles = append(roles, trimmed)
		}
	}
	return roles
}
