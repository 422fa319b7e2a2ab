// Package bootstrap assembles the routing pipeline from configuration.
package bootstrap

import (
	"context"
	"fmt"

	"patient-intake-router/config"
	"patient-intake-router/internal/prediction"
	"patient-intake-router/internal/prompt"
	"patient-intake-router/internal/router"
	"patient-intake-router/internal/routing"
	"patient-intake-router/pkg/llmprovider"
	"patient-intake-router/pkg/log"
)

const logPrefixBuild = "internal.bootstrap.Build"

// Components is everything an entrypoint needs to route utterances.
type Components struct {
	Routing *routing.Configuration
	Prompts *prompt.Library
	LLM     *llmprovider.Manager
	Router  *router.IntentRouter
}

// Build loads the routing documents, initializes the LLM providers and wires the router.
// A routing configuration failure is fatal; a missing prompt library is not.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*Components, error) {
	routingCfg, err := routing.LoadFile(cfg.Routing.RulesPath())
	if err != nil {
		return nil, fmt.Errorf("load routing configuration: %w", err)
	}
	l.Infof(ctx, "%s: loaded %d routing rules from %s", logPrefixBuild, len(routingCfg.Rules()), routingCfg.Source())
	for _, target := range routingCfg.UnknownRouteTargets() {
		l.Warnf(ctx, "%s: route_to %q does not name a configured department", logPrefixBuild, target)
	}

	prompts := prompt.Load(ctx, cfg.Routing.PromptsPath(), l)

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM providers: %w", err)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{Timeout: cfg.LLM.Timeout}, l)

	gateway := prediction.New(l, manager, prediction.Options{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})

	return &Components{
		Routing: routingCfg,
		Prompts: prompts,
		LLM:     manager,
		Router:  router.New(l, routingCfg, prompts, gateway),
	}, nil
}
