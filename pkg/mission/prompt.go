package mission

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"mission-api/pkg/llm"
	"mission-api/pkg/prompt"
)

// DefaultSystemPrompt frames the model as a mission analyst.
const DefaultSystemPrompt = "You analyze mission descriptions and provide structured details. Always return a valid JSON format."

//go:embed templates/mission.tmpl
var defaultUserTemplate string

// TemplateFuncs are available to mission prompt templates.
var TemplateFuncs = template.FuncMap{
	"grades": func(scale []Grade) string {
		letters := make([]string, 0, len(scale))
		for _, g := range scale {
			letters = append(letters, string(g.Difficulty))
		}
		return strings.Join(letters, ", ")
	},
}

// PromptData is the value user prompt templates are rendered with.
type PromptData struct {
	Mission     string
	TotalPoints string
	Scale       []Grade
}

// Builder renders the chat request sent upstream for one mission.
type Builder struct {
	system string
	user   *prompt.Template
	model  string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSystemPrompt replaces DefaultSystemPrompt. Blank values are ignored.
func WithSystemPrompt(system string) BuilderOption {
	return func(b *Builder) {
		if strings.TrimSpace(system) != "" {
			b.system = system
		}
	}
}

// WithUserTemplate replaces the embedded user prompt template.
func WithUserTemplate(t *prompt.Template) BuilderOption {
	return func(b *Builder) {
		if t != nil {
			b.user = t
		}
	}
}

// WithModel pins the model alias; empty uses the client's default model.
func WithModel(model string) BuilderOption {
	return func(b *Builder) {
		b.model = strings.TrimSpace(model)
	}
}

// NewBuilder returns a Builder using the embedded template unless
// overridden.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{system: DefaultSystemPrompt}
	for _, opt := range opts {
		opt(b)
	}
	if b.user == nil {
		tmpl, err := DefaultUserTemplate()
		if err != nil {
			return nil, err
		}
		b.user = tmpl
	}
	return b, nil
}

// DefaultUserTemplate parses the embedded mission prompt.
func DefaultUserTemplate() (*prompt.Template, error) {
	return prompt.Parse("mission.tmpl", defaultUserTemplate, TemplateFuncs)
}

// Build renders the system and user messages for a decoded mission.
func (b *Builder) Build(mission, totalPoints string) (*llm.ChatRequest, error) {
	user, err := b.user.Render(PromptData{
		Mission:     mission,
		TotalPoints: totalPoints,
		Scale:       Scale,
	})
	if err != nil {
		return nil, fmt.Errorf("render mission prompt: %w", err)
	}
	return &llm.ChatRequest{
		Model: b.model,
		Messages: []llm.Message{
			{Role: "system", Content: b.system},
			{Role: "user", Content: user},
		},
	}, nil
}

// TemplateDigest identifies the user template in use.
func (b *Builder) TemplateDigest() string {
	return b.user.Digest()
}

// TemplateName is the user template's name.
func (b *Builder) TemplateName() string {
	return b.user.Name()
}

// Reloadable reports whether the user template is backed by a file.
func (b *Builder) Reloadable() bool {
	return b.user.Path() != ""
}

// Reload rereads a file-backed user template. Requests built concurrently
// see either the old or the new template. Embedded templates return
// prompt.ErrNotReloadable.
func (b *Builder) Reload() error {
	return b.user.Reload()
}
