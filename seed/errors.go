package seed

import "errors"

var (
	// ErrGenerationExhausted means unique identity synthesis failed
	// within the bounded retry count. Fatal to the run.
	ErrGenerationExhausted = errors.New("unique identity generation exhausted")

	// ErrPrerequisiteMissing means a required role catalog entry is
	// absent. Member creation cannot proceed without it.
	ErrPrerequisiteMissing = errors.New("required role missing, run role bootstrap first")
)
