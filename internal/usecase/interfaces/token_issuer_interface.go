package interfaces

import "time"

// ITokenIssuer signs session tokens for authenticated users.
type ITokenIssuer interface {
	GenerateToken(userID, username, role string) (token string, expiresAt time.Time, err error)
}
