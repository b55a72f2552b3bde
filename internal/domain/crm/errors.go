package crm

import "errors"

var (
	ErrContactNotFound     = errors.New("contact not found")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrInvalidStage        = errors.New("invalid pipeline stage")
	ErrInvalidProbability  = errors.New("probability must be between 0 and 100")
)
