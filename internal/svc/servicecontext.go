package svc

import (
	"errors"
	"fmt"

	"mission-api/internal/config"
	llmpkg "mission-api/pkg/llm"
	"mission-api/pkg/mission"
	"mission-api/pkg/prompt"
)

type ServiceContext struct {
	Config config.Config

	LLMConfig *llmpkg.Config
	LLM       llmpkg.LLMClient
	Prompts   *mission.Builder
	Missions  *mission.Service
}

// Option customizes NewServiceContext.
type Option func(*options)

type options struct {
	client llmpkg.LLMClient
	llm    []llmpkg.ClientOption
}

// WithLLMClient bypasses client construction from config.
func WithLLMClient(client llmpkg.LLMClient) Option {
	return func(o *options) { o.client = client }
}

// WithLLMOptions forwards options to llm.NewClient.
func WithLLMOptions(opts ...llmpkg.ClientOption) Option {
	return func(o *options) { o.llm = append(o.llm, opts...) }
}

func NewServiceContext(c config.Config, opts ...Option) (*ServiceContext, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	svc := &ServiceContext{
		Config:    c,
		LLMConfig: c.LLM.Value,
		LLM:       o.client,
	}

	if svc.LLM == nil {
		if svc.LLMConfig == nil {
			return nil, errors.New("svc: llm config not loaded")
		}
		client, err := llmpkg.NewClient(svc.LLMConfig, o.llm...)
		if err != nil {
			return nil, fmt.Errorf("svc: init llm client: %w", err)
		}
		svc.LLM = client
	}

	builderOpts := []mission.BuilderOption{
		mission.WithSystemPrompt(c.Prompt.System),
		mission.WithModel(c.Prompt.Model),
	}
	if c.Prompt.Template != "" {
		tmpl, err := prompt.NewTemplate(c.Prompt.Template, mission.TemplateFuncs)
		if err != nil {
			return nil, fmt.Errorf("svc: load prompt template: %w", err)
		}
		builderOpts = append(builderOpts, mission.WithUserTemplate(tmpl))
	}
	builder, err := mission.NewBuilder(builderOpts...)
	if err != nil {
		return nil, fmt.Errorf("svc: init prompt builder: %w", err)
	}

	svc.Prompts = builder

	missions, err := mission.NewService(svc.LLM, builder)
	if err != nil {
		return nil, err
	}
	svc.Missions = missions
	return svc, nil
}

// Close releases the upstream client.
func (s *ServiceContext) Close() error {
	if s == nil || s.LLM == nil {
		return nil
	}
	return s.LLM.Close()
}
