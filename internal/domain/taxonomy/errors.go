package taxonomy

import "errors"

var (
	ErrTechnologyNotFound = errors.New("technology not found")
	ErrDomainNotFound     = errors.New("domain not found")
	ErrSkillNotFound      = errors.New("skill not found")
)
