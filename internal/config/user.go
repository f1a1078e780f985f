package config

import (
	"fmt"
	"os/user"
	"strings"

	"github.com/conn-castle/valet-php/internal/messages"
)

var currentUserFunc = user.Current

// CurrentUser returns the operating user: SUDO_USER when running under sudo,
// otherwise USER, otherwise the account of the process.
func CurrentUser() (string, error) {
	for _, key := range []string{"SUDO_USER", "USER"} {
		if name := strings.TrimSpace(getenvFunc(key)); name != "" {
			return name, nil
		}
	}
	u, err := currentUserFunc()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigCurrentUserFmt, err)
	}
	return u.Username, nil
}
