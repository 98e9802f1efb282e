// Package requestid generates and names the request ID shared by the
// HTTP server and the serverless function.
package requestid

import "github.com/google/uuid"

// Header is the HTTP header carrying the request ID.
const Header = "X-Request-ID"

// New generates a request ID.
func New() string {
	return uuid.NewString()
}
