package services

import (
	portsrepo "github.com/SscSPs/user_auth_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_auth_app/internal/core/ports/services"
	"github.com/SscSPs/user_auth_app/internal/platform/config"
)

// NewServiceContainer wires the concrete service implementations together.
func NewServiceContainer(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg)
	return &portssvc.ServiceContainer{
		Token:   tokenSvc,
		Auth:    NewAuthService(cfg, userRepo, tokenSvc),
		Profile: NewProfileService(userRepo, tokenSvc),
	}
}
