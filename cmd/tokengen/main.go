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


package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/drschille/MessageSearchBE/auth"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "tokengen",
		Usage:  "Issue a local HS256 JWT for MessageSearchBE",
		Action: issueAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "issuer",
				Usage:   "Token issuer claim",
				EnvVars: []string{"JWT_ISSUER"},
				Value:   "app",
			},
			&cli.StringFlag{
				Name:    "audience",
				Usage:   "Token audience claim",
				EnvVars: []string{"JWT_AUDIENCE"},
				Value:   "app-clients",
			},
			&cli.StringFlag{
				Name:    "secret",
				Usage:   "Shared HMAC signing secret",
				EnvVars: []string{"JWT_SECRET"},
				Value:   "dev-secret",
			},
			&cli.StringFlag{
				Name:    "sub",
				Usage:   "Subject claim (random UUID if omitted)",
				EnvVars: []string{"JWT_SUB"},
			},
			&cli.StringFlag{
				Name:    "roles",
				Usage:   "Comma-separated role list",
				EnvVars: []string{"JWT_ROLES"},
				Value:   "editor",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "Token lifetime",
				Value: time.Hour,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func issueAction(c *cli.Context) error {
	subject := c.String("sub")
	if subject == "" {
		subject = uuid.NewString()
	}

	token, err := auth.Issue(auth.TokenOptions{
		Issuer:   c.String("issuer"),
		Audience: c.String("audience"),
		Subject:  subject,
		Roles:    auth.ParseRoles(c.String("roles")),
		Secret:   c.String("secret"),
		TTL:      c.Duration("ttl"),
	}, time.Now())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	fmt.Println(token)
	return nil
}
