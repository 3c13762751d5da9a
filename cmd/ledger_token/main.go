// Command ledger_token mints a signed bearer token for local use against the ledger API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/utils"
	"github.com/SscSPs/wallet_ledger_app/pkg/config"
)

func main() {
	callerID := flag.String("sub", "user_1", "caller id placed in the token subject")
	role := flag.String("role", "customer", "caller role (admin, viewer, merchant or customer)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateLedgerJWT(*callerID, *role, cfg.JWTSecret, *ttl, "ledger-dev")
	if err != nil {
		slog.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
