package batch

import (
	"errors"

	"github.com/tragoedia0722/batchrename/pkg/match"
)

var (
	// ErrEmptyPattern is returned by Validate when no pattern was given
	ErrEmptyPattern = match.ErrEmptyPattern

	// ErrRootNotFound is returned by Validate when the root does not exist
	ErrRootNotFound = errors.New("root directory not found")

	// ErrRootNotDirectory is returned by Validate when the root is a file
	ErrRootNotDirectory = errors.New("root is not a directory")
)
