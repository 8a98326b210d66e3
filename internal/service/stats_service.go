package service

import (
	"tlapaleria/internal/repository"
)

type StatsService interface {
	Summary() (*repository.SummaryStats, error)
}

type statsService struct {
	saleRepo repository.SaleRepository
}

func NewStatsService(sRepo repository.SaleRepository) StatsService {
	return &statsService{saleRepo: sRepo}
}

func (s *statsService) Summary() (*repository.SummaryStats, error) {
	stats, err := s.saleRepo.GetSummaryStats()
	if err != nil {
		return nil, storageErr("summary stats", err)
	}
	return stats, nil
}
