package webhook

import (
	"fmt"

	"github.com/sandevgo/factbot/internal/core"
)

// render translates an engine directive into the fulfillment response body.
// Context names are qualified under the request's session path; suggestion
// chips are only rendered for screen-capable surfaces.
func render(sessionPath string, resp *core.TurnResponse, hasScreen bool) *WebhookResponse {
	out := &WebhookResponse{
		FulfillmentText: resp.Speech,
		FulfillmentMessages: []Message{
			{Text: &Text{Text: []string{resp.Speech}}},
		},
		Payload: googlePayload(resp, hasScreen),
	}

	for _, cu := range resp.Contexts {
		out.OutputContexts = append(out.OutputContexts, Context{
			Name:          fmt.Sprintf("%s/contexts/%s", sessionPath, cu.Name),
			LifespanCount: cu.Lifespan,
			Parameters:    anyParams(cu.Params),
		})
	}

	return out
}

// googlePayload carries the Assistant-specific surface: the terminal flag and
// suggestion chips.
func googlePayload(resp *core.TurnResponse, hasScreen bool) map[string]any {
	rich := map[string]any{
		"items": []any{
			map[string]any{
				"simpleResponse": map[string]any{"textToSpeech": resp.Speech},
			},
		},
	}

	if hasScreen && len(resp.Suggestions) > 0 {
		chips := make([]map[string]string, 0, len(resp.Suggestions))
		for _, s := range resp.Suggestions {
			chips = append(chips, map[string]string{"title": s})
		}
		rich["suggestions"] = chips
	}

	return map[string]any{
		"google": map[string]any{
			"expectUserResponse": !resp.EndConversation,
			"richResponse":       rich,
		},
	}
}

func anyParams(params map[string]string) map[string]any {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
