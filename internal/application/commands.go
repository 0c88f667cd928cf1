package application

import (
	"fmt"
	"strings"

	"github.com/bnema/avd-sessions-cli/internal/domain"
)

// DisconnectUserCommand asks for every session owned by the principal
// in the given pool to be force-disconnected.
type DisconnectUserCommand struct {
	UserPrincipalName string
	Pool              domain.Pool
}

func (c DisconnectUserCommand) Validate() error {
	if strings.TrimSpace(c.UserPrincipalName) == "" {
		return fmt.Errorf("user principal name is required")
	}

	return c.Pool.Validate()
}
