package models

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	DeviceName string `json:"device_name" validate:"max=100"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// LeaderboardParams are the query parameters of the leaderboard and its export.
type LeaderboardParams struct {
	Season   *int   `query:"season" json:"season" validate:"omitnil,season"`
	Search   string `query:"search" json:"search" validate:"max=100"`
	Position string `query:"position" json:"position" validate:"max=10"`
	Status   string `query:"status" json:"status" validate:"omitempty,oneof=active inactive"`
	Sort     string `query:"sort" json:"sort"`
	Order    string `query:"order" json:"order" validate:"omitempty,oneof=asc desc"`
	Page     *int   `query:"page" json:"page" validate:"omitnil,min=1"`
	Limit    *int   `query:"limit" json:"limit" validate:"omitnil,min=1,max=100"`
}

// PlayerListParams are the query parameters of GET /players.
type PlayerListParams struct {
	Search   string `query:"search" json:"search" validate:"max=100"`
	Position string `query:"position" json:"position" validate:"max=10"`
	Status   string `query:"status" json:"status" validate:"omitempty,oneof=active inactive"`
	Sort     string `query:"sort" json:"sort"`
	Order    string `query:"order" json:"order" validate:"omitempty,oneof=asc desc"`
	Page     *int   `query:"page" json:"page" validate:"omitnil,min=1"`
	Limit    *int   `query:"limit" json:"limit" validate:"omitnil,min=1,max=100"`
}

// GameListParams are the query parameters of GET /games.
type GameListParams struct {
	Season *int `query:"season" json:"season" validate:"omitnil,min=1900,max=2100"`
	Limit  *int `query:"limit" json:"limit" validate:"omitnil,min=1,max=50"`
}
