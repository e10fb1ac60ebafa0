package services

import (
	"context"
	"strings"
	"time"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/pkg/logger"
)

// primaryMarketClient is the Finnhub REST client surface.
type primaryMarketClient interface {
	Configured() bool
	Quote(ctx context.Context, symbol string) (dto.Quote, error)
	CompanyProfile(ctx context.Context, symbol string) (dto.CompanyProfile, error)
	Candles(ctx context.Context, symbol, resolution string, from, to time.Time) (dto.CandleSeries, error)
	Search(ctx context.Context, query string) ([]dto.SymbolMatch, error)
}

// secondaryMarketClient is the Alpaca market-data surface used as fallback.
type secondaryMarketClient interface {
	Configured() bool
	Quote(ctx context.Context, symbol string) (dto.Quote, error)
	Candles(ctx context.Context, symbol, resolution string, from, to time.Time) (dto.CandleSeries, error)
}

// marketService answers quote/candle/profile/search requests by walking the
// provider chain: Finnhub, then Alpaca, then the simulator. A provider error
// never surfaces to the caller; the response degrades to simulated data and
// says so through the Origin field.
type marketService struct {
	primary        primaryMarketClient
	secondary      secondaryMarketClient
	sim            *simulator
	forceSimulated bool
}

// NewMarketService builds the provider chain. With forceSimulated (dev mode)
// every response comes from the simulator regardless of configured keys.
func NewMarketService(primary primaryMarketClient, secondary secondaryMarketClient, forceSimulated bool) *marketService {
	return &marketService{
		primary:        primary,
		secondary:      secondary,
		sim:            newSimulator(),
		forceSimulated: forceSimulated,
	}
}

func (s *marketService) GetQuote(ctx context.Context, symbol string) (dto.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	log := logger.FromContext(ctx)

	if !s.forceSimulated {
		if s.primary.Configured() {
			q, err := s.primary.Quote(ctx, symbol)
			if err == nil {
				q.Origin = dto.OriginLive
				return q, nil
			}
			log.Warn("primary quote provider failed", "symbol", symbol, "error", err)
		}
		if s.secondary.Configured() {
			q, err := s.secondary.Quote(ctx, symbol)
			if err == nil {
				q.Origin = dto.OriginLive
				return q, nil
			}
			log.Warn("secondary quote provider failed", "symbol", symbol, "error", err)
		}
	}

	return s.sim.Quote(symbol), nil
}

func (s *marketService) GetCandles(ctx context.Context, symbol, resolution string, from, to time.Time) (dto.CandleSeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	log := logger.FromContext(ctx)

	if !s.forceSimulated {
		if s.primary.Configured() {
			cs, err := s.primary.Candles(ctx, symbol, resolution, from, to)
			if err == nil {
				cs.Origin = dto.OriginLive
				return cs, nil
			}
			log.Warn("primary candle provider failed", "symbol", symbol, "error", err)
		}
		if s.secondary.Configured() {
			cs, err := s.secondary.Candles(ctx, symbol, resolution, from, to)
			if err == nil {
				cs.Origin = dto.OriginLive
				return cs, nil
			}
			log.Warn("secondary candle provider failed", "symbol", symbol, "error", err)
		}
	}

	return s.sim.Candles(symbol, resolution, from, to), nil
}

func (s *marketService) GetCompanyProfile(ctx context.Context, symbol string) (dto.CompanyProfile, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	log := logger.FromContext(ctx)

	if !s.forceSimulated && s.primary.Configured() {
		p, err := s.primary.CompanyProfile(ctx, symbol)
		if err == nil {
			p.Origin = dto.OriginLive
			return p, nil
		}
		log.Warn("profile provider failed", "symbol", symbol, "error", err)
	}

	return s.sim.CompanyProfile(symbol), nil
}

func (s *marketService) Search(ctx context.Context, query string) (dto.SearchResult, error) {
	query = strings.TrimSpace(query)
	log := logger.FromContext(ctx)

	if !s.forceSimulated && s.primary.Configured() {
		matches, err := s.primary.Search(ctx, query)
		if err == nil {
			return dto.SearchResult{Query: query, Matches: matches, Origin: dto.OriginLive}, nil
		}
		log.Warn("symbol search failed", "query", query, "error", err)
	}

	return dto.SearchResult{Query: query, Matches: s.sim.Search(query), Origin: dto.OriginSimulated}, nil
}
