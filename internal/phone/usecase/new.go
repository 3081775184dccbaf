package usecase

import (
	"phone-assistant/internal/phone"
	"phone-assistant/internal/phone/repository"
	"phone-assistant/pkg/log"
)

const (
	defaultRecommendationLimit = 5
	maxRecommendationLimit     = 20
)

// implUseCase is the private implementation of phone.UseCase.
type implUseCase struct {
	repo         repository.Repository
	l            log.Logger
	defaultLimit int
}

// New creates a new phone UseCase. defaultLimit <= 0 falls back to 5.
func New(repo repository.Repository, l log.Logger, defaultLimit int) phone.UseCase {
	if defaultLimit <= 0 {
		defaultLimit = defaultRecommendationLimit
	}
	return &implUseCase{
		repo:         repo,
		l:            l,
		defaultLimit: defaultLimit,
	}
}
