package llm

import "strings"

// OpenRouter addresses models as "<provider>/<model>", e.g. "openai/gpt-4o-mini".
const modelSeparator = "/"

// ResolveModelID maps a configured alias to the provider-qualified model id
// sent upstream. An alias that already carries a provider is used as-is.
func ResolveModelID(alias string, cfg ModelConfig) string {
	model := strings.TrimSpace(alias)
	if strings.Contains(model, modelSeparator) {
		return model
	}

	name := strings.TrimSpace(cfg.ModelName)
	if name == "" {
		name = model
	}

	provider := strings.TrimSpace(cfg.Provider)
	if provider == "" || strings.Contains(name, modelSeparator) {
		return name
	}
	return provider + modelSeparator + name
}

// ParseModelID splits a qualified model id into provider and model name.
func ParseModelID(model string) (provider, name string) {
	provider, name, ok := strings.Cut(model, modelSeparator)
	if !ok {
		return "", model
	}
	return provider, name
}
