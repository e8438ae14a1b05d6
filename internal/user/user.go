// Package user resolves the person running flowforge
package user

import (
	"os"
	"os/user"
	"strings"
)

// Me is the placeholder that stands for the current user in member fields
const Me = "@me"

// CurrentUsername returns the current system username. It falls back to $USER
// and then to "unknown" so the result is never empty.
func CurrentUsername() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}

// ResolveMember returns name with the Me placeholder replaced by the current
// username. Anything else is returned trimmed and unchanged.
func ResolveMember(name string) string {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, Me) {
		return CurrentUsername()
	}
	return name
}
