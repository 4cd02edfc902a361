package config

import "errors"

var (
	// ErrInvalidConfig indicates a loaded value failed validation
	ErrInvalidConfig = errors.New("invalid config")

	// ErrLoadConfig indicates the config file or environment could not be read
	ErrLoadConfig = errors.New("load config failed")
)
