package models

import "errors"

// User-input errors. Operations report them and carry on with the rest of the run.
var (
	ErrInvalidNumber    = errors.New("invalid TODO number")
	ErrAlreadyDeleted   = errors.New("TODO already deleted in this run")
	ErrNoMatch          = errors.New("no files found matching substring")
	ErrInvalidSelection = errors.New("invalid choice")
	ErrMalformedToggle  = errors.New("malformed toggle list")
	ErrMalformedAdd     = errors.New("malformed add argument")
)
