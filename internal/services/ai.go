package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stockpredictor/backend/internal/dto"
	"github.com/stockpredictor/backend/internal/models"
	"github.com/stockpredictor/backend/pkg/helpers"
	"github.com/stockpredictor/backend/pkg/logger"
)

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type quoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (dto.Quote, error)
	GetCompanyProfile(ctx context.Context, symbol string) (dto.CompanyProfile, error)
}

type analysisStore interface {
	Get(ctx context.Context, uid, symbol string) (*models.Analysis, error)
	Put(ctx context.Context, uid string, a *models.Analysis) error
}

// aiService produces short AI commentary for a symbol. When no Vertex client
// is configured (vertex == nil) or generation fails, it falls back to a
// templated simulated commentary derived from the quote, clearly marked via
// Origin. Results are cached per user and symbol for ttl.
type aiService struct {
	vertex   vertexClient
	market   quoteProvider
	store    analysisStore
	ttl      time.Duration
	clockNow func() time.Time
}

func NewAIService(vertex vertexClient, market quoteProvider, store analysisStore, ttl time.Duration) *aiService {
	return &aiService{
		vertex:   vertex,
		market:   market,
		store:    store,
		ttl:      ttl,
		clockNow: time.Now,
	}
}

func (s *aiService) GetAnalysis(ctx context.Context, uid, symbol string) (dto.AnalysisResponse, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	log := logger.FromContext(ctx)
	now := s.clockNow()

	if cached, err := s.store.Get(ctx, uid, symbol); err == nil && cached != nil {
		if now.Sub(cached.GeneratedAt) < s.ttl {
			return toAnalysisResponse(cached, true), nil
		}
	}

	quote, err := s.market.GetQuote(ctx, symbol)
	if err != nil {
		return dto.AnalysisResponse{}, err
	}
	profile, err := s.market.GetCompanyProfile(ctx, symbol)
	if err != nil {
		return dto.AnalysisResponse{}, err
	}

	analysis := s.generate(ctx, symbol, quote, profile, now)

	if err := s.store.Put(ctx, uid, analysis); err != nil {
		// Caching is best effort; the caller still gets the analysis.
		log.Warn("failed to cache analysis", "symbol", symbol, "error", err)
	}

	return toAnalysisResponse(analysis, false), nil
}

func (s *aiService) generate(ctx context.Context, symbol string, quote dto.Quote, profile dto.CompanyProfile, now time.Time) *models.Analysis {
	log := logger.FromContext(ctx)

	if s.vertex != nil {
		resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
			System:          analysisSystemPrompt,
			UserMessage:     analysisPrompt(symbol, quote, profile),
			Temperature:     helpers.Ptr(float32(0.4)),
			MaxOutputTokens: helpers.Ptr(int32(256)),
		})
		if err == nil && resp.Text != "" {
			a := &models.Analysis{
				Symbol:      symbol,
				Commentary:  strings.TrimSpace(resp.Text),
				Origin:      dto.OriginLive,
				GeneratedAt: now,
			}
			a.Sentiment, a.Recommendation = labelsFromChange(quote.PercentChange)
			return a
		}
		log.Warn("vertex generation failed, using simulated commentary", "symbol", symbol, "error", err)
	}

	return simulatedAnalysis(symbol, quote, now)
}

const analysisSystemPrompt = "You are a cautious equity analyst. Write three short sentences of commentary " +
	"on the stock described by the user. Mention momentum and one risk. Do not give financial advice."

func analysisPrompt(symbol string, q dto.Quote, p dto.CompanyProfile) string {
	return fmt.Sprintf(
		"Symbol: %s (%s, %s)\nPrice: %.2f\nDay change: %.2f (%.2f%%)\nDay range: %.2f-%.2f\nPrevious close: %.2f",
		symbol, p.Name, p.Industry,
		q.CurrentPrice, q.Change, q.PercentChange, q.Low, q.High, q.PreviousClose,
	)
}

// simulatedAnalysis mirrors the placeholder commentary the original app
// shipped when no AI key was configured.
func simulatedAnalysis(symbol string, q dto.Quote, now time.Time) *models.Analysis {
	sentiment, recommendation := labelsFromChange(q.PercentChange)

	direction := "held steady"
	if q.PercentChange > 0.5 {
		direction = "gained ground"
	} else if q.PercentChange < -0.5 {
		direction = "lost ground"
	}

	commentary := fmt.Sprintf(
		"%s %s in the latest session, moving %.2f%% to %.2f against a previous close of %.2f. "+
			"The day's range of %.2f-%.2f suggests %s trading interest. "+
			"This is simulated commentary generated without a live AI provider.",
		symbol, direction, q.PercentChange, q.CurrentPrice, q.PreviousClose,
		q.Low, q.High, sentiment,
	)

	return &models.Analysis{
		Symbol:         symbol,
		Commentary:     commentary,
		Sentiment:      sentiment,
		Recommendation: recommendation,
		Origin:         dto.OriginSimulated,
		GeneratedAt:    now,
	}
}

func labelsFromChange(percentChange float64) (sentiment, recommendation string) {
	switch {
	case percentChange > 1.5:
		return dto.SentimentBullish, dto.RecommendationBuy
	case percentChange < -1.5:
		return dto.SentimentBearish, dto.RecommendationSell
	default:
		return dto.SentimentNeutral, dto.RecommendationHold
	}
}

func toAnalysisResponse(a *models.Analysis, cached bool) dto.AnalysisResponse {
	return dto.AnalysisResponse{
		Symbol:         a.Symbol,
		Commentary:     a.Commentary,
		Sentiment:      a.Sentiment,
		Recommendation: a.Recommendation,
		Origin:         a.Origin,
		GeneratedAt:    a.GeneratedAt,
		Cached:         cached,
	}
}
