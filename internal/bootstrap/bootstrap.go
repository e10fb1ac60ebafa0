package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"

	vertexclient "github.com/stockpredictor/backend/internal/client/vertex"
	"github.com/stockpredictor/backend/internal/config"
	"github.com/stockpredictor/backend/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Firebase  *auth.Client
	// VertexAdapter is nil when no project is configured or in dev mode;
	// the AI service then serves simulated commentary.
	VertexAdapter *vertexclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	handler := logger.NewCloudRunHandler
	if cfg.DevMode {
		handler = logger.NewFileHandler
	}
	bs.Log = logger.New(cfg.LogLevel, handler)

	// In dev mode Firestore talks to the emulator via FIRESTORE_EMULATOR_HOST.
	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}

	if !cfg.DevMode {
		bs.Firebase, err = InitFirebase(applicationCtx)
		if err != nil {
			return bs, err
		}
	}

	if !cfg.DevMode && cfg.ProjectID != "" {
		bs.VertexAdapter, err = vertexclient.NewAdapter(applicationCtx, bs.Log, cfg.ProjectID, cfg.Region, cfg.VertexModel)
		if err != nil {
			// Commentary degrades to simulated output; not fatal.
			bs.Log.Warn("vertex init failed, AI commentary will be simulated", "error", err)
			bs.VertexAdapter = nil
		}
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.VertexAdapter != nil {
		_ = bs.VertexAdapter.Close()
	}
	if bs.Firestore != nil {
		_ = bs.Firestore.Close()
	}
}
