package mission

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"mission-api/pkg/llm"
)

// Service turns a mission description into AI-generated mission details.
type Service struct {
	client  llm.LLMClient
	builder *Builder
}

// NewService wires a completion client and a request builder.
func NewService(client llm.LLMClient, builder *Builder) (*Service, error) {
	if client == nil {
		return nil, errors.New("mission: llm client is nil")
	}
	if builder == nil {
		return nil, errors.New("mission: prompt builder is nil")
	}
	return &Service{client: client, builder: builder}, nil
}

// Generate asks the model for details of a decoded mission. It never
// returns an error: every failure is reported through the Result. There is
// no retry.
func (s *Service) Generate(ctx context.Context, mission, totalPoints string) Result {
	logger := logx.WithContext(ctx)

	req, err := s.builder.Build(mission, totalPoints)
	if err != nil {
		logger.Errorf("build mission prompt: %v", err)
		return Failed(MsgUpstreamFailure)
	}

	resp, err := s.client.Chat(ctx, req)
	if err != nil {
		logger.Errorf("error contacting completion api: %v", err)
		return Failed(MsgUpstreamFailure)
	}

	if resp == nil || resp.ChoicesMissing {
		logger.Error("completion response has no choices field")
		return Failed(MsgUnexpectedFormat)
	}
	// An empty choices array reads as absent content.
	content, _ := resp.FirstContent()
	return Extract(ctx, content)
}
