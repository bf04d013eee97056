// Package evaluator scores an objective against the SMART rubric.
package evaluator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smart-checker/api/internal/llm"
	"smart-checker/api/internal/smart"
	"smart-checker/api/internal/util"
)

type Options struct {
	// Mock returns smart.MockResult for every valid objective without calling the engine.
	Mock bool
	// Timeout bounds the engine call; 0 leaves it to the caller's context.
	Timeout time.Duration
}

type Evaluator struct {
	engine llm.Engine
	opts   Options
	log    *zap.Logger
}

// New builds an evaluator. engine may be nil in mock mode.
func New(engine llm.Engine, opts Options, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{engine: engine, opts: opts, log: log}
}

func (e *Evaluator) Mock() bool { return e.opts.Mock }

// Evaluate validates the objective and returns its rubric. Errors wrap smart.ErrValidation
// or smart.ErrEvaluation; no partial result is ever returned.
func (e *Evaluator) Evaluate(ctx context.Context, objective string) (smart.Result, error) {
	id, _ := IDFromContext(ctx)
	log := e.log.With(zap.String("evaluation_id", id))

	if err := smart.ValidateObjective(objective); err != nil {
		log.Debug("objective rejected", zap.Int("len", len(objective)))
		return smart.Result{}, err
	}
	if e.opts.Mock {
		log.Info("mock evaluation")
		return smart.MockResult(), nil
	}
	if e.engine == nil {
		return smart.Result{}, fmt.Errorf("%w: no engine configured", smart.ErrEvaluation)
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := e.engine.Complete(ctx, llm.Request{
		System:      smart.SystemPrompt,
		User:        objective,
		Temperature: 0,
		SchemaName:  smart.ResultSchemaName,
		Schema:      smart.ResultSchema,
	})
	if err != nil {
		log.Error("model call failed",
			zap.String("engine", e.engine.Name()),
			zap.Duration("took", time.Since(start)),
			zap.Error(err))
		return smart.Result{}, fmt.Errorf("%w: %w", smart.ErrEvaluation, err)
	}

	res, err := smart.DecodeResult([]byte(util.StripCodeFences(text)))
	if err != nil {
		log.Error("model output rejected",
			zap.String("engine", e.engine.Name()),
			zap.Int("output_len", len(text)),
			zap.Error(err))
		return smart.Result{}, fmt.Errorf("%w: %w", smart.ErrEvaluation, err)
	}
	if keys := res.UnquotedEvidence(objective); len(keys) > 0 {
		log.Warn("evidence not quoted from objective", zap.Any("criteria", keys))
	}

	log.Info("evaluation done",
		zap.String("engine", e.engine.Name()),
		zap.String("model", e.engine.GetModel()),
		zap.Duration("took", time.Since(start)))
	return res, nil
}

type ctxKey struct{}

// WithID tags ctx with an evaluation id, generating one when id is empty.
func WithID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, ctxKey{}, id), id
}

func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}
