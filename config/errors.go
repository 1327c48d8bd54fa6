package config

import "errors"

// ErrInvalid is returned (wrapped with the offending field) by Validate and Load.
var ErrInvalid = errors.New("config: invalid settings")
