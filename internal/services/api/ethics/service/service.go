// Package service contains bias screening workflows
package service

import (
	"context"
	"time"

	"genailab/internal/core/bias"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/metrics"
	"genailab/internal/platform/safe"
	"genailab/internal/services/api/ethics/domain"
)

// Detector scans text for biased language
type Detector interface {
	Detect(text string) bias.Result
	SuggestMitigation(r bias.Result) []string
}

// Service defines the ethics service contract
type Service interface {
	domain.ServicePort
}

// now is a seam for tests
var now = func() time.Time { return time.Now().UTC() }

// Svc implements the ethics service
type Svc struct {
	det     Detector
	metrics *metrics.Metrics
}

// New constructs an ethics service. m may be nil
func New(det Detector, m *metrics.Metrics) *Svc {
	if det == nil {
		panic("ethics.Service requires a non nil Detector")
	}
	return &Svc{det: det, metrics: m}
}

// Bias scans text and counts the risk level. A failed scan reports low risk with the error set
func (s *Svc) Bias(ctx context.Context, text string) (domain.BiasResult, error) {
	res, err := safe.Value("bias", func() bias.Result { return s.det.Detect(text) })
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("bias scan failed")
		return domain.BiasResult{
			Text: text,
			Result: bias.Result{
				BiasAnalysis: map[string]bias.CategoryResult{},
				RiskLevel:    bias.RiskLow,
				Timestamp:    now(),
			},
			Error: safe.Message(err),
		}, nil
	}
	s.metrics.ObserveBiasRisk(string(res.RiskLevel))
	if res.RiskLevel == bias.RiskHigh || res.RiskLevel == bias.RiskCritical {
		logger.C(ctx).Info().Int("score", res.OverallBiasScore).Str("risk", string(res.RiskLevel)).Msg("biased text flagged")
	}
	return domain.BiasResult{Text: text, Result: res}, nil
}

// Mitigation turns a scan into suggestions
func (s *Svc) Mitigation(ctx context.Context, r bias.Result) (domain.MitigationResult, error) {
	out, err := safe.Value("mitigation", func() []string { return s.det.SuggestMitigation(r) })
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("mitigation lookup failed")
		return domain.MitigationResult{Suggestions: []string{}, Error: safe.Message(err)}, nil
	}
	if out == nil {
		out = []string{}
	}
	return domain.MitigationResult{Suggestions: out, Count: len(out)}, nil
}
