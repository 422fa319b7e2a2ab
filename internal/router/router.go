package router

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"patient-intake-router/internal/routing"
)

// Classify determines the caller's intent with one structured prediction call.
// Convention: Method accepts context.Context as first parameter
func (r *IntentRouter) Classify(ctx context.Context, text string) (IntentClassification, error) {
	vars := r.buildVariables(text)

	tmpl, ok := r.prompts.Get(PromptCategory, PromptName)
	if !ok {
		return IntentClassification{}, &ConfigurationError{
			Message: MsgPromptNotFound,
			Err:     fmt.Errorf("%w: %s/%s", ErrPromptNotFound, PromptCategory, PromptName),
		}
	}

	start := time.Now()
	var out IntentClassification
	err := r.gateway.Predict(ctx, tmpl, ClassificationSchema, vars, &out)
	classificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return IntentClassification{}, err
	}

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %.2f, emergency: %t)",
		LogPrefixClassify, out.ClassifiedIntent, out.ConfidenceScore, out.IsEmergency)
	return out, nil
}

// ProcessUserInput classifies text and maps the result onto a routing decision.
// Any failure, including a panic, is returned as an error Decision.
func (r *IntentRouter) ProcessUserInput(ctx context.Context, text string) (decision Decision) {
	ctx, span := r.tracer.Start(ctx, "router.ProcessUserInput")
	defer func() {
		if rec := recover(); rec != nil {
			err := panicError{value: rec}
			r.l.Errorf(ctx, "%s: Error processing user input: panic: %v", LogPrefixProcess, rec)
			decision = errorDecision(ErrorKindInternal, err.Error(), err, nil)
		}

		span.SetAttributes(attribute.String("routing.status", string(decision.Status)))
		if decision.Status == StatusError {
			span.SetAttributes(attribute.String("routing.error_kind", string(decision.ErrorKind)))
			span.SetStatus(codes.Error, decision.Message)
		}
		span.End()
		observeDecision(decision)
	}()

	classification, err := r.Classify(ctx, text)
	if err != nil {
		r.l.Errorf(ctx, "%s: Error processing user input: %v", LogPrefixProcess, err)
		return errorDecision(kindOf(err), err.Error(), err, nil)
	}

	return r.decide(ctx, classification)
}

// decide branches on the classification: emergency first, then clarification, then rule lookup.
func (r *IntentRouter) decide(ctx context.Context, c IntentClassification) Decision {
	classification := c

	if c.IsEmergency {
		return Decision{
			Status:         StatusEmergency,
			Action:         ActionRouteToEmergency,
			Classification: &classification,
		}
	}

	if c.ClassifiedIntent == routing.IntentNeedsClarification {
		return Decision{
			Status:          StatusNeedsClarification,
			Questions:       c.ClarifyingQuestions,
			PossibleIntents: c.PossibleIntents,
			Classification:  &classification,
		}
	}

	rule, ok := r.cfg.RuleByIntent(c.ClassifiedIntent)
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %s", LogPrefixProcess, MsgNoRoutingRule, c.ClassifiedIntent)
		return errorDecision(ErrorKindNoRoute, MsgNoRoutingRule, nil, &classification)
	}

	return Decision{
		Status:                StatusClassified,
		Intent:                c.ClassifiedIntent,
		Confidence:            c.ConfidenceScore,
		RouteTo:               rule.RouteTo,
		RequiredPrerequisites: rule.RequiredPrerequisites,
		OptionalPrerequisites: rule.OptionalPrerequisites,
		Classification:        &classification,
	}
}

func errorDecision(kind ErrorKind, message string, err error, c *IntentClassification) Decision {
	return Decision{
		Status:         StatusError,
		Message:        message,
		ErrorKind:      kind,
		Err:            err,
		Classification: c,
	}
}
