package store

import "github.com/thingfulapp/thingful-server/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository  UserRepository
	ThingRepository ThingRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		ThingRepository: NewThingRepository(db, logger),
	}
}
