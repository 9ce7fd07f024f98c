// Command devtoken prints a bearer token for local testing, signed with the
// configured AUTH_JWT_SECRET.
//
// Flags:
//
//	--user  user UUID to put in the subject (default: random)
//	--ttl   token lifetime (default: 24h)
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hifz-planner/internal/auth"
	"github.com/heartmarshall/hifz-planner/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "user UUID (default: random)")
	ttlFlag := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *userFlag != "" {
		if userID, err = uuid.Parse(*userFlag); err != nil {
			log.Fatalf("invalid --user: %v", err)
		}
	}

	token, err := auth.NewVerifier(cfg.Auth).IssueToken(userID, *ttlFlag)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Printf("user:  %s\ntoken: %s\n", userID, token)
}
