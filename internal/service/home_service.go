package service

import (
	"context"

	"restaurant-inventory/internal/model"
)

type statsSource interface {
	Stats(ctx context.Context) (model.HomeStats, error)
}

type HomeService struct {
	source statsSource
}

func NewHomeService(source statsSource) *HomeService {
	return &HomeService{source: source}
}

func (s *HomeService) Summary(ctx context.Context) (model.HomeStats, error) {
	return s.source.Stats(ctx)
}
