package models

// Principal is the authenticated caller behind a bearer token.
type Principal struct {
	UserID  int64
	TokenID int64
	Name    string
	Email   string
}
