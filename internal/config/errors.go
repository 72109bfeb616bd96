package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when no token signing secret was supplied
	// by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned when no database DSN was supplied by any
	// configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
