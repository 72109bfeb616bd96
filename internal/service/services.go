package service

import (
	"github.com/thingfulapp/thingful-server/internal/config"
	"github.com/thingfulapp/thingful-server/internal/logger"
	"github.com/thingfulapp/thingful-server/internal/store"
)

type Services struct {
	AuthService  AuthService
	UserService  UserService
	ThingService ThingService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		UserService:  NewUserService(storages.UserRepository, cfg, logger),
		ThingService: NewThingService(storages.ThingRepository, logger),
	}
}
