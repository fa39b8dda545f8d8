package opportunity

import "errors"

var (
	ErrOpportunityNotFound    = errors.New("opportunity not found")
	ErrInvalidStatus          = errors.New("invalid opportunity status")
	ErrCandidateLinkNotFound  = errors.New("candidate link not found")
	ErrCandidateAlreadyLinked = errors.New("candidate already linked to opportunity")
)
