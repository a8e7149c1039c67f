package mission

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// fencedJSON matches the first ```json fenced block; the payload may span lines.
var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// Extract turns raw model output into a Result. A ```json fenced block, if
// present, is unwrapped first; otherwise the whole trimmed text is parsed.
// Any syntactically valid JSON value counts as success.
func Extract(ctx context.Context, text string) Result {
	if text == "" {
		return Failed(MsgEmptyResponse)
	}

	candidate := strings.TrimSpace(text)
	if m := fencedJSON.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}

	var details json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &details); err != nil {
		logx.WithContext(ctx).Errorf("json parsing error: %v | candidate=%q", err, truncate(candidate, 512))
		return Failed(MsgParseFailure)
	}
	return Succeeded(details)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
