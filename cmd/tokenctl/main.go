// Command tokenctl mints bearer tokens for an identity using the server's
// JWT settings (JWT_SIGNING_KEY, JWT_ISSUER, JWT_AUDIENCE).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	jwttoken "flightsurety/internal/jwt_token"
	"flightsurety/internal/platform/config"
	"flightsurety/pkg/domain"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "tokenctl:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tokenctl", flag.ContinueOnError)
	address := fs.String("address", "", "0x-prefixed identity the token authenticates as")
	ttl := fs.Duration("ttl", 0, "token lifetime (defaults to JWT_TOKEN_TTL)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	caller, err := domain.ParseAddress(*address)
	if err != nil {
		return fmt.Errorf("-address: %w", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	svc := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	token, err := svc.GenerateAccessToken(caller, lifetime)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
