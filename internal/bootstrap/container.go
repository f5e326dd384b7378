package bootstrap

import (
	"context"
	"fmt"

	"mind-nest-be/internal/config"
	"mind-nest-be/internal/controller"
	"mind-nest-be/internal/pkg/logger"
	"mind-nest-be/internal/repository/implementation"
	"mind-nest-be/internal/repository/memory"
	"mind-nest-be/internal/repository/unitofwork"
	"mind-nest-be/internal/service"
	"mind-nest-be/pkg/embedding"
	"mind-nest-be/pkg/llm/factory"
	"mind-nest-be/pkg/rag/executor"
	"mind-nest-be/pkg/rag/fallback"
	"mind-nest-be/pkg/rag/response"
	"mind-nest-be/pkg/rag/search"
	"mind-nest-be/pkg/rag/severity"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	ResourceController controller.IResourceController

	Logger logger.ILogger
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Model providers
	chatLLM, err := factory.NewLLMProvider(ctx, cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL, cfg.Keys.GoogleGemini)
	if err != nil {
		return nil, fmt.Errorf("init chat llm: %w", err)
	}
	classifierLLM, err := factory.NewLLMProvider(ctx, cfg.Ai.LLMProvider, cfg.Ai.ClassifierModel, cfg.Ai.OllamaBaseURL, cfg.Keys.GoogleGemini)
	if err != nil {
		return nil, fmt.Errorf("init classifier llm: %w", err)
	}
	embeddingProvider, err := embedding.NewEmbeddingProvider(ctx,
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
		cfg.Ai.EmbeddingDimensions,
	)
	if err != nil {
		return nil, fmt.Errorf("init embedding provider: %w", err)
	}

	selector, err := fallback.New()
	if err != nil {
		return nil, fmt.Errorf("load fallback responses: %w", err)
	}

	// 3. Pipeline
	crisisLookup := search.NewCrisisLookup(
		implementation.NewCrisisResourceRepository(db),
		sysLogger,
		search.WithCache(memory.NewCrisisResourceCache(cfg.Pipeline.CrisisCacheTTL)),
	)
	pipeline := executor.NewPipeline(executor.Dependencies{
		Classifier: severity.NewClassifier(classifierLLM, sysLogger),
		Embedder:   search.NewQueryEmbedder(embeddingProvider, cfg.Ai.EmbeddingDimensions, sysLogger),
		Retriever:  search.NewTechniqueRetriever(implementation.NewTechniqueRepository(db), cfg.Ai.EmbeddingDimensions, sysLogger),
		Crisis:     crisisLookup,
		Generator:  response.NewGenerator(chatLLM, selector, sysLogger),
		Recorder:   service.NewTurnRecorder(uowFactory),
	}, cfg.Pipeline, sysLogger)

	// 4. Services
	chatService := service.NewChatService(uowFactory, pipeline, sysLogger)
	resourceService := service.NewResourceService(uowFactory)

	// 5. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService, cfg.Keys.JWTSecret),
		ResourceController: controller.NewResourceController(resourceService),
		Logger:             sysLogger,
	}, nil
}
