// Package user identifies the operator running a session.
package user

import (
	"os"
	"os/user"
)

// Operator returns the name of the person at the keyboard, recorded with
// each journaled session. It tries the OS account first, then the usual
// login environment variables, and falls back to "unknown".
func Operator() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	for _, name := range []string{"USER", "LOGNAME", "USERNAME"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "unknown"
}
