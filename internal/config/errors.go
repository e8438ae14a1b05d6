package config

import "errors"

// ErrInvalidConfig is returned when a loaded config has unusable values
var ErrInvalidConfig = errors.New("invalid config")
