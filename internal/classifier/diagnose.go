package classifier

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/clambin/froeling-monitor/internal/froeling"
)

// Finding reports a parameter that doesn't map onto exactly one entity.
type Finding struct {
	Identity  Identity
	Parameter froeling.Parameter
	Kinds     Kinds
}

// Unregistered reports whether the parameter matched no rule.
func (f Finding) Unregistered() bool {
	return f.Kinds.Len() == 0
}

// Level is the severity at which the finding is logged: info for unregistered parameters,
// warning for parameters that matched more than one rule.
func (f Finding) Level() slog.Level {
	if f.Unregistered() {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func (f Finding) Message() string {
	if f.Unregistered() {
		return "parameter not registered"
	}
	return "parameter registered multiple times"
}

// Diagnose classifies every parameter and returns the ones that match zero or multiple rules, ordered by identity.
func Diagnose(parameters map[Identity]froeling.Parameter) []Finding {
	var findings []Finding
	for _, id := range slices.SortedFunc(maps.Keys(parameters), CompareIdentity) {
		p := parameters[id]
		if kinds := Classify(p); kinds.Len() != 1 {
			findings = append(findings, Finding{Identity: id, Parameter: p, Kinds: kinds})
		}
	}
	return findings
}

// LogFindings logs each finding at its level.
func LogFindings(ctx context.Context, logger *slog.Logger, findings []Finding) {
	for _, f := range findings {
		logger.Log(ctx, f.Level(), f.Message(),
			slog.Any("id", f.Identity),
			slog.Any("parameter", f.Parameter),
			slog.Any("kinds", f.Kinds),
		)
	}
}
