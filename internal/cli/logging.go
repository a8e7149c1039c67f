package cli

import (
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"mission-api/internal/config"
	"mission-api/internal/svc"
	"mission-api/pkg/confkit"
	"mission-api/pkg/llm"
)

// ConfigSummaryLines returns human readable lines describing the loaded app
// config. Secrets are never included.
func ConfigSummaryLines(cfg *config.Config) []string {
	if cfg == nil {
		return []string{"Configuration: <nil>"}
	}

	lines := []string{
		fmt.Sprintf("Environment: %s", cfg.Env),
		fmt.Sprintf("Listen: %s:%d", cfg.Host, cfg.Port),
		fmt.Sprintf("CORS: %s", corsLine(cfg)),
		sectionLine("LLM config", cfg.LLM),
	}
	if v := cfg.LLM.Value; v != nil {
		alias := modelOrDefault(cfg.Prompt.Model, v.DefaultModel)
		model, _ := v.Model(alias)
		lines = append(lines,
			fmt.Sprintf("LLM endpoint: %s", v.BaseURL),
			fmt.Sprintf("LLM model: %s (timeout %s)", llm.ResolveModelID(alias, model), v.Timeout),
			fmt.Sprintf("LLM api key: %s", presence(strings.TrimSpace(v.APIKey) != "")),
		)
	}
	lines = append(lines, fmt.Sprintf("Prompt template: %s", templateLine(cfg.Prompt.Template)))

	return lines
}

// LogConfigSummary emits the configuration summary using logx.
func LogConfigSummary(cfg *config.Config) {
	lines := ConfigSummaryLines(cfg)
	if len(lines) == 0 {
		return
	}
	logx.Info("configuration summary")
	for _, line := range lines {
		logx.Infof("config • %s", line)
	}
}

// ServiceSummaryLines describes the runtime wiring built from the config.
func ServiceSummaryLines(svcCtx *svc.ServiceContext) []string {
	if svcCtx == nil || svcCtx.Prompts == nil {
		return []string{"Prompt: <nil>"}
	}
	p := svcCtx.Prompts
	reload := "embedded, fixed"
	if p.Reloadable() {
		reload = "reload on SIGHUP"
	}
	return []string{
		fmt.Sprintf("Prompt template: %s (%s)", p.TemplateName(), reload),
		fmt.Sprintf("Prompt digest: %s", shortDigest(p.TemplateDigest())),
	}
}

// LogServiceSummary emits ServiceSummaryLines using logx.
func LogServiceSummary(svcCtx *svc.ServiceContext) {
	for _, line := range ServiceSummaryLines(svcCtx) {
		logx.Infof("service • %s", line)
	}
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}

func presence(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

func corsLine(cfg *config.Config) string {
	if !cfg.CorsEnabled() {
		return "disabled"
	}
	return strings.Join(cfg.Cors.Origins, ", ")
}

func templateLine(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func modelOrDefault(model, fallback string) string {
	if strings.TrimSpace(model) != "" {
		return model
	}
	return fallback
}

func sectionLine[T any](name string, section confkit.Section[T]) string {
	switch {
	case strings.TrimSpace(section.File) != "":
		return fmt.Sprintf("%s: %s", name, section.File)
	case section.Value != nil:
		return fmt.Sprintf("%s: inline", name)
	default:
		return fmt.Sprintf("%s: not configured", name)
	}
}
