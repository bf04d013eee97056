// Package app wires configuration into the engines and the evaluator shared by the binaries.
package app

import (
	"go.uber.org/zap"

	"smart-checker/api/internal/config"
	"smart-checker/api/internal/evaluator"
	"smart-checker/api/internal/llm"
	"smart-checker/api/internal/llm/gemini"
	"smart-checker/api/internal/llm/openai"
)

// Engines builds every provider adapter from cfg. Adapters without a key are still built;
// they fail per call.
func Engines(cfg *config.Config) *llm.Engines {
	return &llm.Engines{
		OpenAI: openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model).WithBaseURL(cfg.OpenAI.BaseURL),
		Gemini: gemini.New(cfg.Gemini.APIKey, cfg.Gemini.Model),
	}
}

// NewEvaluator returns the evaluator for cfg and the engine it calls, which is nil in mock mode.
func NewEvaluator(cfg *config.Config, log *zap.Logger) (*evaluator.Evaluator, llm.Engine, error) {
	opts := evaluator.Options{Mock: cfg.MockMode, Timeout: cfg.LLMTimeout}
	if cfg.MockMode {
		log.Info("mock mode: returning the fixed sample evaluation")
		return evaluator.New(nil, opts, log), nil, nil
	}

	eng, err := Engines(cfg).GetEngine(cfg.Provider)
	if err != nil {
		return nil, nil, err
	}
	if missing := cfg.MissingCredential(); missing != "" {
		log.Warn("provider key not set; evaluations will fail", zap.String("env", missing))
	}
	log.Info("llm engine selected", zap.String("engine", eng.Name()), zap.String("model", eng.GetModel()))
	return evaluator.New(eng, opts, log), eng, nil
}
