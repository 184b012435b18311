// Command token mints a bearer token for the pull endpoints of a server
// started with APP_TOKEN_SIGN_KEY.
//
//	APP_TOKEN_SIGN_KEY=secret token -user alice
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/service"
	"github.com/caarlos0/env/v11"
)

func main() {
	log := logger.NewLogger("replisync-token")

	var appCfg config.App
	if err := env.ParseWithOptions(&appCfg, env.Options{Prefix: "APP_"}); err != nil {
		log.Fatal().Err(err).Msg("error parsing environment")
	}

	fs := flag.NewFlagSet("token", flag.ExitOnError)
	userID := fs.String("user", "", "User id the token is issued for")
	fs.StringVar(&appCfg.TokenSignKey, "token-sign-key", appCfg.TokenSignKey, "Token signing key")
	fs.StringVar(&appCfg.TokenIssuer, "token-issuer", appCfg.TokenIssuer, "Token issuer")
	_ = fs.Parse(os.Args[1:])

	auth := service.NewAuthService(appCfg, log)
	if auth == nil {
		log.Fatal().Msg("token sign key is not configured")
	}

	token, err := auth.CreateToken(context.Background(), *userID)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Println(token.SignedString)
}
