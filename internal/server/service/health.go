package service

import "context"

// HealthService проверяет, что хранилище отвечает.
type HealthService struct {
	repo HealthRepo
}

func NewHealthService(repo HealthRepo) *HealthService {
	return &HealthService{repo: repo}
}

func (s *HealthService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
