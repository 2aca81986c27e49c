// Command token-generator mints a signed bearer token for local development,
// e.g. to call GET /admin/todo:
//
//	token=$(go run ./cmd/token-generator -username root -id 1 -role admin)
//	curl -H "Authorization: Bearer $token" localhost:8080/admin/todo
//
// The signing secret comes from the server configuration (auth.jwt_secret /
// BOOKSHELF_AUTH_JWT_SECRET) unless -secret is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/bookshelf-api/internal/config"
	"github.com/phrazzld/bookshelf-api/internal/service/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "token-generator: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token-generator", flag.ContinueOnError)
	username := fs.String("username", "", "user name placed in the sub claim")
	userID := fs.Int64("id", 0, "numeric user id placed in the id claim")
	role := fs.String("role", "user", "role placed in the role claim (admin grants /admin routes)")
	secret := fs.String("secret", "", "signing secret; defaults to the configured auth.jwt_secret")
	lifetime := fs.Int("lifetime", 0, "token lifetime in minutes; defaults to auth.token_lifetime_minutes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" || *userID <= 0 {
		return fmt.Errorf("-username and a positive -id are required")
	}

	authCfg, err := resolveAuthConfig(*secret, *lifetime)
	if err != nil {
		return err
	}

	jwtService, err := auth.NewJWTService(authCfg)
	if err != nil {
		return err
	}

	token, err := jwtService.GenerateToken(context.Background(), *username, *userID, *role)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}

// resolveAuthConfig merges flag overrides over the loaded configuration. The
// full configuration is only loaded when a flag leaves a value unset.
func resolveAuthConfig(secret string, lifetime int) (config.AuthConfig, error) {
	authCfg := config.AuthConfig{JWTSecret: secret, TokenLifetimeMinutes: lifetime}
	if secret != "" && lifetime > 0 {
		return authCfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return config.AuthConfig{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	if authCfg.JWTSecret == "" {
		authCfg.JWTSecret = cfg.Auth.JWTSecret
	}
	if authCfg.TokenLifetimeMinutes <= 0 {
		authCfg.TokenLifetimeMinutes = cfg.Auth.TokenLifetimeMinutes
	}
	return authCfg, nil
}
