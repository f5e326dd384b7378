package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mind-nest-be/internal/config"
	"mind-nest-be/internal/entity"
	"mind-nest-be/internal/pkg/logger"
	"mind-nest-be/pkg/rag/language"
	"mind-nest-be/pkg/rag/response"
	"mind-nest-be/pkg/rag/severity"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const logModule = "PIPELINE"

// ErrEmbeddingUnavailable aborts a turn: nothing can be retrieved without a query vector.
var ErrEmbeddingUnavailable = errors.New("embedding unavailable")

type SeverityClassifier interface {
	Classify(ctx context.Context, message string) severity.Level
}

type Embedder interface {
	Embed(ctx context.Context, text string) []float32
}

type TechniqueRetriever interface {
	Retrieve(ctx context.Context, vector []float32, lang language.Code, threshold float64, count int) []*entity.ScoredTechnique
}

type CrisisLookup interface {
	Lookup(ctx context.Context, lang language.Code) []*entity.CrisisResource
}

type ResponseGenerator interface {
	Generate(ctx context.Context, in response.Input) response.Result
}

// TurnRecord is the pair of chat turns written for an identified user.
type TurnRecord struct {
	OwnerID          uuid.UUID
	UserMessage      string
	UserAt           time.Time
	AssistantMessage string
	AssistantAt      time.Time
	Techniques       []*entity.ScoredTechnique
	CrisisResources  []*entity.CrisisResource
}

// TurnRecorder writes both turns atomically.
type TurnRecorder interface {
	RecordTurn(ctx context.Context, record *TurnRecord) error
}

type TurnRequest struct {
	Message string
	// OwnerID is nil for anonymous callers; their turns are not persisted.
	OwnerID *uuid.UUID
}

type TurnResult struct {
	Response        string
	Severity        severity.Level
	Language        language.Code
	Techniques      []*entity.ScoredTechnique
	CrisisResources []*entity.CrisisResource
	Quotes          []string
	Source          response.Source
	Persisted       bool
}

type Dependencies struct {
	Classifier SeverityClassifier
	Embedder   Embedder
	Retriever  TechniqueRetriever
	Crisis     CrisisLookup
	Generator  ResponseGenerator
	Recorder   TurnRecorder
}

type Pipeline struct {
	deps   Dependencies
	cfg    config.PipelineConfig
	logger logger.ILogger
	tracer trace.Tracer
	now    func() time.Time
}

func NewPipeline(deps Dependencies, cfg config.PipelineConfig, log logger.ILogger) *Pipeline {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Pipeline{
		deps:   deps,
		cfg:    cfg,
		logger: log,
		tracer: otel.Tracer("mind-nest/pipeline"),
		now:    time.Now,
	}
}

// ProcessTurn runs one chat turn. Only ErrEmbeddingUnavailable and context errors
// are returned; every other stage degrades in place.
func (p *Pipeline) ProcessTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.turn")
	defer span.End()

	receivedAt := p.now()
	p.transition(span, StateStart, map[string]interface{}{"anonymous": req.OwnerID == nil})
	lang := language.Detect(req.Message)
	p.transition(span, StateLanguageDetected, map[string]interface{}{"language": lang.String()})

	// Each goroutine owns its own variables; Wait publishes them.
	var (
		level      severity.Level
		techniques []*entity.ScoredTechnique
		resources  = []*entity.CrisisResource{}
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		level = p.classify(gctx, req.Message)
		p.transition(span, StateSeverityClassified, map[string]interface{}{"severity": level.String()})

		if !level.IsElevated() || gctx.Err() != nil {
			return nil
		}
		resources = p.lookupCrisis(gctx, lang)
		p.transition(span, StateCrisisResourcesRetrieved, map[string]interface{}{"count": len(resources)})
		return nil
	})

	g.Go(func() error {
		vector := p.embed(gctx, req.Message)
		if len(vector) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			return ErrEmbeddingUnavailable
		}
		p.transition(span, StateEmbedded, map[string]interface{}{"dimensions": len(vector)})

		techniques = p.retrieve(gctx, vector, lang)
		p.transition(span, StateTechniquesRetrieved, map[string]interface{}{"count": len(techniques)})
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, p.fail(span, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, p.fail(span, err)
	}

	result := p.generate(ctx, response.Input{
		Message:         req.Message,
		Severity:        level,
		Language:        lang,
		Techniques:      techniques,
		CrisisResources: resources,
	})
	p.transition(span, StateResponseGenerated, map[string]interface{}{"source": string(result.Source)})

	out := &TurnResult{
		Response:        result.Text,
		Severity:        level,
		Language:        lang,
		Techniques:      techniques,
		CrisisResources: resources,
		Quotes:          result.Quotes,
		Source:          result.Source,
	}

	// No write may start once the caller has gone away.
	if err := ctx.Err(); err != nil {
		return nil, p.fail(span, err)
	}

	if req.OwnerID != nil && p.deps.Recorder != nil {
		out.Persisted = p.persist(ctx, &TurnRecord{
			OwnerID:          *req.OwnerID,
			UserMessage:      req.Message,
			UserAt:           receivedAt,
			AssistantMessage: result.Text,
			AssistantAt:      p.assistantTime(receivedAt),
			Techniques:       techniques,
			CrisisResources:  resources,
		})
		if out.Persisted {
			p.transition(span, StatePersisted, nil)
		}
	}

	p.transition(span, StateDone, nil)
	span.SetAttributes(
		attribute.String("turn.severity", level.String()),
		attribute.String("turn.language", lang.String()),
	)
	return out, nil
}

func (p *Pipeline) classify(ctx context.Context, message string) severity.Level {
	ctx, span := p.tracer.Start(ctx, "pipeline.classify")
	defer span.End()
	ctx, cancel := withTimeout(ctx, p.cfg.ClassifyTimeout)
	defer cancel()

	level := p.deps.Classifier.Classify(ctx, message)
	span.SetAttributes(attribute.String("severity", level.String()))
	return level
}

func (p *Pipeline) embed(ctx context.Context, message string) []float32 {
	ctx, span := p.tracer.Start(ctx, "pipeline.embed")
	defer span.End()
	ctx, cancel := withTimeout(ctx, p.cfg.EmbedTimeout)
	defer cancel()

	vector := p.deps.Embedder.Embed(ctx, message)
	if len(vector) == 0 {
		span.SetStatus(codes.Error, ErrEmbeddingUnavailable.Error())
	}
	return vector
}

func (p *Pipeline) retrieve(ctx context.Context, vector []float32, lang language.Code) []*entity.ScoredTechnique {
	ctx, span := p.tracer.Start(ctx, "pipeline.retrieve")
	defer span.End()
	ctx, cancel := withTimeout(ctx, p.cfg.RetrieveTimeout)
	defer cancel()

	found := p.deps.Retriever.Retrieve(ctx, vector, lang, p.cfg.TechniqueThreshold, p.cfg.TechniqueCount)
	if found == nil {
		found = []*entity.ScoredTechnique{}
	}
	span.SetAttributes(attribute.Int("techniques", len(found)))
	return found
}

func (p *Pipeline) lookupCrisis(ctx context.Context, lang language.Code) []*entity.CrisisResource {
	ctx, span := p.tracer.Start(ctx, "pipeline.crisis_lookup")
	defer span.End()
	ctx, cancel := withTimeout(ctx, p.cfg.CrisisTimeout)
	defer cancel()

	found := p.deps.Crisis.Lookup(ctx, lang)
	if found == nil {
		found = []*entity.CrisisResource{}
	}
	span.SetAttributes(attribute.Int("crisis_resources", len(found)))
	return found
}

func (p *Pipeline) generate(ctx context.Context, in response.Input) response.Result {
	ctx, span := p.tracer.Start(ctx, "pipeline.generate")
	defer span.End()
	ctx, cancel := withTimeout(ctx, p.cfg.GenerateTimeout)
	defer cancel()

	result := p.deps.Generator.Generate(ctx, in)
	if result.Quotes == nil {
		result.Quotes = []string{}
	}
	span.SetAttributes(attribute.String("source", string(result.Source)))
	return result
}

func (p *Pipeline) persist(ctx context.Context, record *TurnRecord) bool {
	ctx, span := p.tracer.Start(ctx, "pipeline.persist")
	defer span.End()
	ctx, cancel := withTimeout(ctx, p.cfg.PersistTimeout)
	defer cancel()

	if err := p.deps.Recorder.RecordTurn(ctx, record); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		p.logger.Error(logModule, "Failed to persist chat turn", map[string]interface{}{
			"error":   err.Error(),
			"user_id": record.OwnerID.String(),
		})
		return false
	}
	return true
}

// assistantTime keeps the assistant turn strictly after the user turn so
// history ordering by timestamp is unambiguous.
func (p *Pipeline) assistantTime(userAt time.Time) time.Time {
	at := p.now()
	if !at.After(userAt) {
		at = userAt.Add(time.Millisecond)
	}
	return at
}

func (p *Pipeline) transition(span trace.Span, state State, details map[string]interface{}) {
	span.AddEvent(string(state))
	p.logger.Debug(logModule, string(state), details)
}

func (p *Pipeline) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	p.transition(span, StateFailed, map[string]interface{}{"error": err.Error()})
	if errors.Is(err, ErrEmbeddingUnavailable) {
		return fmt.Errorf("process turn: %w", err)
	}
	return err
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
