package service

import (
	"context"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/repository/memory"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory   unitofwork.RepositoryFactory
	profileCache *memory.ProfileCache
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, profileCache *memory.ProfileCache) IUserService {
	return &userService{
		uowFactory:   uowFactory,
		profileCache: profileCache,
	}
}

// GetProfile re-resolves the account behind a verified token. A token can
// outlive its account, so a missing row maps to 401 rather than 404.
func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	if cached, found := s.profileCache.Get(userId); found {
		return sanitizeUser(cached), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.Unauthorized("Unauthorized")
	}

	s.profileCache.Save(user)
	return sanitizeUser(user), nil
}
