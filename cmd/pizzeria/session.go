package main

import (
	"context"
	"fmt"

	"github.com/minhyannv/pizzeria-agent-go/pkg/agent"
	"github.com/minhyannv/pizzeria-agent-go/pkg/cart"
	configpkg "github.com/minhyannv/pizzeria-agent-go/pkg/config"
	loggerpkg "github.com/minhyannv/pizzeria-agent-go/pkg/logger"
	"github.com/minhyannv/pizzeria-agent-go/pkg/menu"
	"github.com/minhyannv/pizzeria-agent-go/pkg/payment"
	"github.com/minhyannv/pizzeria-agent-go/pkg/prompt"
	"github.com/minhyannv/pizzeria-agent-go/pkg/tools"
)

// session bundles the state owned by one conversation.
type session struct {
	loop    *agent.AgentLoop
	catalog *menu.Catalog
	cart    *cart.Cart
}

func newSession(ctx context.Context, cfg configpkg.Config, logger loggerpkg.Logger, opts ...agent.AgentOption) (*session, error) {
	catalog := menu.Default()
	if cfg.MenuFile != "" {
		loaded, err := menu.LoadFile(cfg.MenuFile)
		if err != nil {
			return nil, fmt.Errorf("load menu: %w", err)
		}
		catalog = loaded
	}
	loggerpkg.Debug(cfg.Verbose, logger, "menu loaded", map[string]any{
		"file":   cfg.MenuFile,
		"pizzas": catalog.Names(),
	})

	payments, err := payment.NewProcessor(catalog, cfg.PaymentMethods)
	if err != nil {
		return nil, fmt.Errorf("payment processor: %w", err)
	}

	c := cart.New()
	registry, err := tools.New(tools.Context{
		Catalog:  catalog,
		Cart:     c,
		Payments: payments,
		Verbose:  cfg.Verbose,
		Ctx:      ctx,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}

	systemPrompt := prompt.BuildSystemPrompt(catalog, payments.Methods(), registry.Names())
	agentOpts := append([]agent.AgentOption{
		agent.WithLogger(logger),
		agent.WithTools(registry),
		agent.WithSystemPrompt(systemPrompt),
	}, opts...)

	loop, err := agent.New(ctx, cfg, agentOpts...)
	if err != nil {
		return nil, err
	}
	return &session{loop: loop, catalog: catalog, cart: c}, nil
}
