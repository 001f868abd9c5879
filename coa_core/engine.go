package coa_core

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// ReviewConfidence is the floor under which a suggestion is always routed to
// manual review, regardless of match state.
const ReviewConfidence = 0.7

// Advisor is a pluggable free-text classification provider. Its output is
// advisory only; the engine's override rules dominate it.
type Advisor interface {
	Advise(ctx context.Context, description string, categories []string) (*Advice, error)
}

type Engine struct {
	rules            []*CategoryRule
	advisor          Advisor
	reviewConfidence float64
}

type EngineOption func(*Engine)

func WithCategoryRules(rules []*CategoryRule) EngineOption {
	return func(e *Engine) {
		e.rules = rules
	}
}

func WithReviewConfidence(threshold float64) EngineOption {
	return func(e *Engine) {
		e.reviewConfidence = threshold
	}
}

func NewEngine(advisor Advisor, opts ...EngineOption) *Engine {
	eng := Engine{
		rules:            DefaultCategoryRules(),
		advisor:          advisor,
		reviewConfidence: ReviewConfidence,
	}
	for _, opt := range opts {
		opt(&eng)
	}
	return &eng
}

func (e *Engine) Rules() []*CategoryRule {
	return e.rules
}

// Suggest runs the full pipeline for one description over an immutable
// directory snapshot. It never mutates the snapshot and is safe to call
// concurrently for different descriptions.
func (e *Engine) Suggest(ctx context.Context, description string, accounts []*Account) (*Suggestion, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return nil, &InvalidDescriptionError{Description: description, Reason: "empty"}
	}

	if IsBlacklisted(desc) {
		return nil, &InvalidDescriptionError{
			Description: desc,
			Reason:      "matches product identifier blacklist",
		}
	}

	if accounts == nil {
		return nil, ErrDirectoryUnavailable
	}

	resolved := Resolve(desc, accounts, e.rules)

	advice := e.advise(ctx, desc)

	return e.assemble(desc, resolved, advice, accounts)
}

func (e *Engine) advise(ctx context.Context, description string) *Advice {
	if e.advisor == nil {
		return &Advice{}
	}

	advice, err := e.advisor.Advise(ctx, description, CategoryNames(e.rules))
	if err != nil {
		// advisory input only. degrade to zero confidence so the
		// suggestion lands in manual review instead of failing.
		slog.Error("advisor failed", "err", err.Error(), "description", description)
		return &Advice{Reasoning: "classification provider unavailable"}
	}
	if advice == nil {
		return &Advice{}
	}

	return advice
}

// assemble applies the decision precedence: confidence gate, vehicle side
// channel, exact-match reuse, auto-create.
func (e *Engine) assemble(
	description string,
	resolved *ResolveResult,
	advice *Advice,
	accounts []*Account,
) (*Suggestion, error) {
	rule := resolved.Category
	if rule == nil && advice.Category != "" {
		rule = FindRule(advice.Category, e.rules)
	}

	sug := Suggestion{
		Description:          description,
		IntentCode:           advice.IntentCode,
		SuggestedAccountName: advice.ProposedName,
		Confidence:           advice.Confidence,
		Reasoning:            advice.Reasoning,
		Status:               StatusPending,
		Created:              time.Now(),
	}
	if rule != nil {
		sug.FinancialCategory = rule.Name
		sug.ParentAccount = rule.ParentCode
	} else if advice.Category != "" {
		sug.FinancialCategory = advice.Category
	}

	// vehicle facts are metadata either way, attached before any decision
	vehicle := rule != nil && rule.VehicleAsset && HasVehicleKeyword(description)
	if vehicle {
		sug.SetVehicleMetadata(ExtractVehicleMetadata(description))
	}

	// rule 1: low confidence suppresses every other path, exact match
	// included. proposed fields stay for the reviewer to inspect.
	if advice.Confidence < e.reviewConfidence {
		sug.ActionTaken = ActionNeedsReview
		sug.Status = StatusNeedsReview
		return &sug, nil
	}

	// vehicle side channel: reuse the generic umbrella account when one
	// exists, never mint an account from one unit's facts.
	if vehicle {
		for _, name := range rule.GenericNames {
			if acc := FindAccountByName(name, accounts); acc != nil {
				e.reuse(&sug, acc)
				return &sug, nil
			}
		}
		// no umbrella account yet, fall through to normal resolution
	}

	// rule 2: exact name equality always wins over heuristic naming
	if resolved.ExactMatch != nil {
		e.reuse(&sug, resolved.ExactMatch)
		return &sug, nil
	}

	// rule 3: auto-create under the category's header
	if sug.ParentAccount == "" {
		return nil, &MissingParentAccountError{Category: sug.FinancialCategory}
	}

	code, err := NextCode(sug.ParentAccount, accounts)
	if err != nil {
		return nil, err
	}

	sug.ActionTaken = ActionAutoCreated
	sug.SelectedAccountCode = code
	if sug.SuggestedAccountName == "" {
		sug.SuggestedAccountName = description
	}

	return &sug, nil
}

func (e *Engine) reuse(sug *Suggestion, acc *Account) {
	sug.ActionTaken = ActionReused
	sug.SelectedAccountCode = acc.Code
	sug.SuggestedAccountName = acc.Name
	if acc.ParentCode != "" {
		sug.ParentAccount = acc.ParentCode
	}
}
