package core

const (
	FactbotName          = "FactBot"
	FactbotRepositoryURL = "https://github.com/sandevgo/factbot"
	FactbotVersion       = "0.1.0"
)

// Intent display names as defined in the NLU agent. The platform classifies
// the utterance and posts one of these per turn.
const (
	IntentWelcome     = "welcome"
	IntentTellFact    = "tell.fact"
	IntentTellCatFact = "tell.cat.fact"
	IntentChooseCats  = "choose.cats"
	IntentQuit        = "quit"
)

// Follow-up contexts. While choose_fact is active the platform routes bare
// confirmations ("sure", "another one") back to tell.fact with the category
// parameter carried by the context.
const (
	ContextChooseFact = "choose_fact"
	ContextChooseCats = "choose_cats"
)

// ContextLifespan is how many turns a follow-up context stays active.
const ContextLifespan = 5

// ParamCategory is the name of the category argument on tell.fact.
const ParamCategory = "category"

// TurnRequest is one decoded conversational turn as delivered by the
// platform webhook.
type TurnRequest struct {
	Session string
	Intent  string
	Params  map[string]string
}

func (r *TurnRequest) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}

// ContextUpdate sets or clears (lifespan 0) a follow-up context.
type ContextUpdate struct {
	Name     string
	Lifespan int
	Params   map[string]string
}

// TurnResponse is the directive rendered back to the platform. Immutable
// once constructed.
type TurnResponse struct {
	Speech          string
	Suggestions     []string
	Contexts        []ContextUpdate
	EndConversation bool
}
