package services

import (
	"context"
	"strings"
	"time"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/pkg/logger"
)

type newsClient interface {
	Configured() bool
	MarketNews(ctx context.Context, category string) ([]dto.Article, error)
	CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]dto.Article, error)
}

type companyNewsFallback interface {
	Configured() bool
	News(ctx context.Context, symbol string, start, end time.Time) ([]dto.Article, error)
}

type newsService struct {
	client         newsClient
	fallback       companyNewsFallback
	sim            *simulator
	forceSimulated bool
	clockNow       func() time.Time
}

func NewNewsService(client newsClient, fallback companyNewsFallback, forceSimulated bool) *newsService {
	return &newsService{
		client:         client,
		fallback:       fallback,
		sim:            newSimulator(),
		forceSimulated: forceSimulated,
		clockNow:       time.Now,
	}
}

func (s *newsService) GetMarketNews(ctx context.Context, category string) (dto.NewsResult, error) {
	if category == "" {
		category = dto.NewsCategoryGeneral
	}
	log := logger.FromContext(ctx)

	if !s.forceSimulated && s.client.Configured() {
		articles, err := s.client.MarketNews(ctx, category)
		if err == nil {
			return dto.NewsResult{Category: category, Articles: articles, Origin: dto.OriginLive}, nil
		}
		log.Warn("market news provider failed", "category", category, "error", err)
	}

	return dto.NewsResult{
		Category: category,
		Articles: s.sim.News(category),
		Origin:   dto.OriginSimulated,
	}, nil
}

func (s *newsService) GetCompanyNews(ctx context.Context, symbol string) (dto.NewsResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	log := logger.FromContext(ctx)
	to := s.clockNow()
	from := to.AddDate(0, 0, -7)

	if !s.forceSimulated {
		if s.client.Configured() {
			articles, err := s.client.CompanyNews(ctx, symbol, from, to)
			if err == nil && len(articles) > 0 {
				return dto.NewsResult{Symbol: symbol, Articles: articles, Origin: dto.OriginLive}, nil
			}
			if err != nil {
				log.Warn("company news provider failed", "symbol", symbol, "error", err)
			}
		}
		if s.fallback.Configured() {
			articles, err := s.fallback.News(ctx, symbol, from, to)
			if err == nil && len(articles) > 0 {
				return dto.NewsResult{Symbol: symbol, Articles: articles, Origin: dto.OriginLive}, nil
			}
			if err != nil {
				log.Warn("fallback news provider failed", "symbol", symbol, "error", err)
			}
		}
	}

	return dto.NewsResult{
		Symbol:   symbol,
		Articles: s.sim.News(symbol),
		Origin:   dto.OriginSimulated,
	}, nil
}
