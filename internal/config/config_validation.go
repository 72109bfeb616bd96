// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Defaults applied to fields left unset by every configuration source.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultTokenIssuer    = "thingful-server"
	DefaultTokenDuration  = 3 * time.Hour
	DefaultBcryptCost     = 12
	DefaultRequestTimeout = 30 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling in defaults
// for optional fields first.
//
// The token sign key and the database DSN have no safe defaults and must be
// supplied explicitly.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}

	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}
