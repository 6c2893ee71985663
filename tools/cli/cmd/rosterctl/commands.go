package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rosterboard/roster-api/internal/client"
	"github.com/rosterboard/roster-api/internal/models"
)

func init() {
	rootCmd.AddCommand(healthCmd, tokenCmd, leaderboardCmd, exportCmd, gamesCmd, playersCmd)
	playersCmd.AddCommand(playersListCmd, playersGetCmd, playersCreateCmd, playersUpdateCmd, playersDeleteCmd)

	for _, cmd := range []*cobra.Command{leaderboardCmd, exportCmd} {
		addRosterFlags(cmd)
		cmd.Flags().Int("season", 0, "Season year (default current)")
	}
	leaderboardCmd.Flags().Int("page", 0, "Page number")
	leaderboardCmd.Flags().Int("limit", 0, "Rows per page")
	exportCmd.Flags().StringP("output", "o", "", "Output file (default the server's filename)")

	addRosterFlags(playersListCmd)
	playersListCmd.Flags().Int("page", 0, "Page number")
	playersListCmd.Flags().Int("limit", 0, "Rows per page")

	gamesCmd.Flags().Int("season", 0, "Season year")
	gamesCmd.Flags().Int("limit", 0, "Number of games")

	tokenCmd.Flags().String("device", "rosterctl", "Device name stored with the token")
}

func addRosterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Match first name, last name or jersey number")
	cmd.Flags().String("position", "", "Position filter")
	cmd.Flags().String("status", "", "active or inactive")
	cmd.Flags().String("sort", "", "Sort key")
	cmd.Flags().String("order", "", "asc or desc")
}

// optionalInt returns nil for a flag left at zero.
func optionalInt(cmd *cobra.Command, name string) *int {
	v, _ := cmd.Flags().GetInt(name)
	if v == 0 {
		return nil
	}
	return &v
}

func str(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func leaderboardParams(cmd *cobra.Command) models.LeaderboardParams {
	return models.LeaderboardParams{
		Season:   optionalInt(cmd, "season"),
		Search:   str(cmd, "search"),
		Position: str(cmd, "position"),
		Status:   str(cmd, "status"),
		Sort:     str(cmd, "sort"),
		Order:    str(cmd, "order"),
		Page:     optionalInt(cmd, "page"),
		Limit:    optionalInt(cmd, "limit"),
	}
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := apiClient().Health(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", h.Status, h.Timestamp.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Exchange --email and --password for an API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		tok, err := client.RequestToken(cmd.Context(), nil, host, models.TokenRequest{
			Email:      email,
			Password:   password,
			DeviceName: str(cmd, "device"),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show a page of the season leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient().Leaderboard(cmd.Context(), leaderboardParams(cmd))
		if err != nil {
			return err
		}
		if err := writeLeaderboard(cmd.OutOrStdout(), page.Data); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page.Meta))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the leaderboard as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := str(cmd, "output")
		tmp, err := os.CreateTemp(".", ".rosterctl-export-*.csv")
		if err != nil {
			return err
		}
		defer os.Remove(tmp.Name())

		res, err := apiClient().Export(cmd.Context(), leaderboardParams(cmd), tmp)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}

		if out == "" {
			out = res.Filename
		}
		if out == "" {
			out = "leaderboard.csv"
		}
		if err := os.Rename(tmp.Name(), out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, res.Bytes)
		return nil
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List recent games",
	RunE: func(cmd *cobra.Command, args []string) error {
		games, err := apiClient().Games(cmd.Context(), models.GameListParams{
			Season: optionalInt(cmd, "season"),
			Limit:  optionalInt(cmd, "limit"),
		})
		if err != nil {
			return err
		}
		return writeGames(cmd.OutOrStdout(), games)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Manage the roster",
}

var playersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List players",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient().Players(cmd.Context(), models.PlayerListParams{
			Search:   str(cmd, "search"),
			Position: str(cmd, "position"),
			Status:   str(cmd, "status"),
			Sort:     str(cmd, "sort"),
			Order:    str(cmd, "order"),
			Page:     optionalInt(cmd, "page"),
			Limit:    optionalInt(cmd, "limit"),
		})
		if err != nil {
			return err
		}
		if err := writePlayers(cmd.OutOrStdout(), page.Data); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pageFooter(page.Meta))
		return nil
	},
}

var playersGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := apiClient().Player(cmd.Context(), id)
		if err != nil {
			return err
		}
		return writePlayers(cmd.OutOrStdout(), []models.Player{*p})
	},
}

var playersCreateCmd = &cobra.Command{
	Use:   "create JSON",
	Short: `Create a player from a JSON object, e.g. '{"first_name":"Fred",...}'`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseFields(args[0])
		if err != nil {
			return err
		}
		p, err := apiClient().CreatePlayer(cmd.Context(), fields)
		if err != nil {
			return err
		}
		return writePlayers(cmd.OutOrStdout(), []models.Player{*p})
	},
}

var playersUpdateCmd = &cobra.Command{
	Use:   "update ID JSON",
	Short: "Partially update a player; null clears an optional field",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		fields, err := parseFields(args[1])
		if err != nil {
			return err
		}
		p, err := apiClient().UpdatePlayer(cmd.Context(), id, fields)
		if err != nil {
			return err
		}
		return writePlayers(cmd.OutOrStdout(), []models.Player{*p})
	},
}

var playersDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a player and their stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := apiClient().DeletePlayer(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted player %d\n", id)
		return nil
	},
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid player id %q", raw)
	}
	return id, nil
}

func parseFields(raw string) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("player fields must be a JSON object: %w", err)
	}
	return fields, nil
}
