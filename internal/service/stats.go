package service

import (
	"context"
	"fmt"

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/domain"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/repo"
	"go.uber.org/zap"
)

// StatsService computes read-only aggregates for the dashboards. All of
// the heavy lifting happens server-side in the store's aggregation
// pipelines; nothing here pages collections into memory.
type StatsService struct {
	userRepo    repo.UserRepository
	menuRepo    repo.MenuRepository
	paymentRepo repo.PaymentRepository
	logger      *zap.SugaredLogger
}

func NewStatsService(
	userRepo repo.UserRepository,
	menuRepo repo.MenuRepository,
	paymentRepo repo.PaymentRepository,
	logger *zap.SugaredLogger,
) *StatsService {
	return &StatsService{
		userRepo:    userRepo,
		menuRepo:    menuRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// AdminStats uses estimated counts; exactness is not guaranteed.
func (s *StatsService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	users, err := s.userRepo.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	menuItems, err := s.menuRepo.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count menu items: %w", err)
	}

	payments, err := s.paymentRepo.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	revenue, err := s.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return &domain.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Payments:  payments,
		Revenue:   revenue,
	}, nil
}

func (s *StatsService) OrderStats(ctx context.Context) ([]domain.CategoryOrderStats, error) {
	stats, err := s.paymentRepo.OrderStatsByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}

	return stats, nil
}

func (s *StatsService) UserStats(ctx context.Context, email string) (*domain.UserStats, error) {
	stats, err := s.paymentRepo.UserStats(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	return stats, nil
}
