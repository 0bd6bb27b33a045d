package i

import "time"

// Tokenizer issues and checks the bearer tokens handed to players.
// Tokens carry at least the "userID" claim read by the authorization middleware.
type Tokenizer interface {
	// Generate signs claims into a token valid for ttl.
	Generate(claims map[string]interface{}, ttl time.Duration) (string, error)

	// Decode verifies a token and returns its claims. Expired or foreign tokens fail.
	Decode(token string) (map[string]interface{}, error)
}
