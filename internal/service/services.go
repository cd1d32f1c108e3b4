package service

import (
	"github.com/Jahanvi-07/authify/internal/config"
	"github.com/Jahanvi-07/authify/internal/repository"
)

type Services struct {
	Auth *AuthService
	Item *ItemService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.User, cfg),
		Item: NewItemService(repos.Item),
	}
}
