package escalation

import "errors"

var ErrEscalationNotFound = errors.New("escalation not found")
