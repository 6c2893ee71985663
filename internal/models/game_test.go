package models

import (
	"testing"
	"time"
)

func TestGameSummary(t *testing.T) {
	date := time.Date(2023, time.September, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		game       Game
		wantCity   string
		wantName   string
		wantVenue  string
		wantResult string
		wantScore  string
	}{
		{
			name: "split fields win over legacy",
			game: Game{
				GameDate: date, Opponent: "Old Name", OpponentCity: strPtr("Seattle"), OpponentName: strPtr("Seahawks"),
				Stadium: strPtr("Lumen Field"), Venue: strPtr("Legacy Venue"), ScoreFor: 30, ScoreAgainst: 23, Result: strPtr("W"),
			},
			wantCity: "Seattle", wantName: "Seahawks", wantVenue: "Lumen Field", wantResult: "W", wantScore: "30-23",
		},
		{
			name: "legacy opponent split at last space",
			game: Game{
				GameDate: date, Opponent: "Kansas City Chiefs", Venue: strPtr("Arrowhead"), ScoreFor: 17, ScoreAgainst: 20,
			},
			wantCity: "Kansas City", wantName: "Chiefs", wantVenue: "Arrowhead", wantResult: "L", wantScore: "17-20",
		},
		{
			name: "single word legacy opponent",
			game: Game{
				GameDate: date, Opponent: "Cardinals", Stadium: strPtr("  "), Venue: nil, ScoreFor: 14, ScoreAgainst: 14,
			},
			wantCity: "", wantName: "Cardinals", wantVenue: "", wantResult: "W", wantScore: "14-14",
		},
		{
			name: "invalid stored result is recomputed",
			game: Game{
				GameDate: date, OpponentName: strPtr("Rams"), Result: strPtr("x"), ScoreFor: 3, ScoreAgainst: 10,
			},
			wantCity: "", wantName: "Rams", wantVenue: "", wantResult: "L", wantScore: "3-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.game.Summary()

			if got.OpponentCity != tt.wantCity || got.OpponentName != tt.wantName {
				t.Errorf("opponent = %q/%q, want %q/%q", got.OpponentCity, got.OpponentName, tt.wantCity, tt.wantName)
			}
			if got.Stadium != tt.wantVenue {
				t.Errorf("Stadium = %q, want %q", got.Stadium, tt.wantVenue)
			}
			if got.Result != tt.wantResult {
				t.Errorf("Result = %q, want %q", got.Result, tt.wantResult)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %q, want %q", got.Score, tt.wantScore)
			}
			if got.Date != "September 10, 2023" {
				t.Errorf("Date = %q, want September 10, 2023", got.Date)
			}
			if got.GameDate != "2023-09-10" {
				t.Errorf("GameDate = %q, want 2023-09-10", got.GameDate)
			}
		})
	}
}

func TestResultFor(t *testing.T) {
	if ResultFor(21, 20) != "W" || ResultFor(20, 20) != "W" || ResultFor(19, 20) != "L" {
		t.Error("ResultFor should treat scoreFor >= scoreAgainst as a win")
	}
}
