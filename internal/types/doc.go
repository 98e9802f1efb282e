// Package types defines the chat payload forwarded upstream and the error
// envelope returned to callers.
package types
