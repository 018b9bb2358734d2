package webhook

// Wire types for the Dialogflow v2 fulfillment webhook. Only the fields this
// service reads or writes; the platform sends more.

type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Context is an output context on the wire. Name is the full resource path
// under the session. LifespanCount deliberately has no omitempty: a zero
// lifespan is how a context gets closed.
type Context struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount"`
	Parameters    map[string]any `json:"parameters,omitempty"`
}

type QueryResult struct {
	QueryText       string         `json:"queryText"`
	Parameters      map[string]any `json:"parameters"`
	Intent          Intent         `json:"intent"`
	OutputContexts  []Context      `json:"outputContexts"`
	FulfillmentText string         `json:"fulfillmentText"`
	LanguageCode    string         `json:"languageCode"`
}

// OriginalDetectIntentRequest carries the surface the platform is speaking
// for; the payload shape is assistant-specific.
type OriginalDetectIntentRequest struct {
	Source  string         `json:"source"`
	Payload map[string]any `json:"payload"`
}

type WebhookRequest struct {
	ResponseID                  string                      `json:"responseId"`
	Session                     string                      `json:"session"`
	QueryResult                 QueryResult                 `json:"queryResult"`
	OriginalDetectIntentRequest OriginalDetectIntentRequest `json:"originalDetectIntentRequest"`
}

const capabilityScreenOutput = "actions.capability.SCREEN_OUTPUT"

// HasScreenOutput reports whether the requesting surface can render chips.
// Requests without surface information (the simulator, plain text tests)
// count as screen-capable.
func (r *WebhookRequest) HasScreenOutput() bool {
	surface, ok := r.OriginalDetectIntentRequest.Payload["surface"].(map[string]any)
	if !ok {
		return true
	}
	capabilities, ok := surface["capabilities"].([]any)
	if !ok {
		return true
	}
	for _, c := range capabilities {
		if m, ok := c.(map[string]any); ok && m["name"] == capabilityScreenOutput {
			return true
		}
	}
	return false
}

type Text struct {
	Text []string `json:"text"`
}

type Message struct {
	Text *Text `json:"text,omitempty"`
}

type WebhookResponse struct {
	FulfillmentText     string         `json:"fulfillmentText,omitempty"`
	FulfillmentMessages []Message      `json:"fulfillmentMessages,omitempty"`
	OutputContexts      []Context      `json:"outputContexts,omitempty"`
	Payload             map[string]any `json:"payload,omitempty"`
}
