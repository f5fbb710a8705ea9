// Command token issues a service token for an integration client.
//
//	token -client crm-sync -workspace ws_123 -role integration
//
// It reads the same JWT_* environment as the API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"voiceagent-bridge/internal/auth"
	"voiceagent-bridge/internal/config"
	"voiceagent-bridge/internal/rbac"
)

func main() {
	clientID := flag.String("client", "", "integration client id")
	workspaceID := flag.String("workspace", "", "workspace id")
	role := flag.String("role", rbac.RoleIntegration, "role: "+strings.Join(rbac.Roles(), ", "))
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_ACCESS_TTL)")
	flag.Parse()

	if !rbac.IsKnownRole(*role) {
		slog.Error("unsupported role", "role", *role)
		os.Exit(2)
	}

	cfg := config.AuthConfig{
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      strings.TrimSpace(os.Getenv("JWT_ISSUER")),
		JWTAudience:    strings.TrimSpace(os.Getenv("JWT_AUDIENCE")),
		AccessTokenTTL: *ttl,
	}
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = 15 * time.Minute
		if v, err := time.ParseDuration(strings.TrimSpace(os.Getenv("JWT_ACCESS_TTL"))); err == nil && v > 0 {
			cfg.AccessTokenTTL = v
		}
	}

	m, err := auth.NewManager(cfg)
	if err != nil {
		slog.Error("auth init failed", "err", err)
		os.Exit(1)
	}
	tok, err := m.Issue(time.Now(), *clientID, *workspaceID, *role)
	if err != nil {
		slog.Error("issue failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
