package svc

import (
	"context"
	"errors"
	"os"

	"github.com/zeromicro/go-zero/core/logx"

	"mission-api/pkg/prompt"
)

// ReloadPrompt rereads the user prompt template from disk.
func (s *ServiceContext) ReloadPrompt() error {
	if s == nil || s.Prompts == nil {
		return errors.New("svc: prompt builder not initialised")
	}
	return s.Prompts.Reload()
}

// WatchPromptReload reloads the prompt template on every value received
// from signals until ctx is done or signals is closed. Failures keep the
// previous template.
func (s *ServiceContext) WatchPromptReload(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			switch err := s.ReloadPrompt(); {
			case errors.Is(err, prompt.ErrNotReloadable):
				logx.Infof("received %v: prompt template is embedded, nothing to reload", sig)
			case err != nil:
				logx.Errorf("received %v: reload prompt template: %v", sig, err)
			default:
				logx.Infof("received %v: prompt template %s reloaded, digest=%s", sig, s.Prompts.TemplateName(), s.Prompts.TemplateDigest())
			}
		}
	}
}
