// Command migrate applies the embedded schema migrations.
//
//	migrate [up|down|status|reset|version]
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rosterboard/roster-api/migrations"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		sugar.Fatal("POSTGRES_URL is required")
	}

	db, err := migrations.Open(dsn)
	if err != nil {
		sugar.Fatalw("Failed to open database", "error", err)
	}
	defer db.Close()

	if err := migrations.Run(db, command); err != nil {
		sugar.Fatalw("Migration failed", "command", command, "error", err)
	}
	fmt.Printf("migrate %s: ok\n", command)
}
