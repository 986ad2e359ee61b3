package ports

// TokenIssuer creates signed identity tokens for authenticated users.
type TokenIssuer interface {
	Issue(subject string, userID int64) (string, error)
}
