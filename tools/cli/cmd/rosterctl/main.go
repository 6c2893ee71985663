package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rosterboard/roster-api/internal/client"
)

var (
	host     string
	token    string
	email    string
	password string
)

var rootCmd = &cobra.Command{
	Use:   "rosterctl",
	Short: "A CLI for the roster leaderboard API",
	Long: `A command-line interface for the roster leaderboard API.

Authenticated commands use --token, or exchange --email and --password
for a token on first use.`,
	SilenceUsage: true,
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&host, "host", envOr("ROSTER_API_URL", "http://localhost:8080"), "The API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("ROSTER_API_TOKEN"), "Bearer token")
	rootCmd.PersistentFlags().StringVar(&email, "email", os.Getenv("ROSTER_API_EMAIL"), "Login email when no token is given")
	rootCmd.PersistentFlags().StringVar(&password, "password", os.Getenv("ROSTER_API_PASSWORD"), "Login password when no token is given")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// apiClient builds a client from the global flags.
func apiClient() *client.Client {
	var creds client.CredentialProvider
	switch {
	case token != "":
		creds = client.StaticToken(token)
	case email != "":
		creds = &client.PasswordCredentials{BaseURL: host, Email: email, Password: password, DeviceName: "rosterctl"}
	}
	return client.New(host, creds)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rosterctl: %s\n", err)
		os.Exit(1)
	}
}
