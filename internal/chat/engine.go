// Package chat implements the conversational order-intake engine: a
// deterministic intent router for idle conversations and a slot-filling
// state machine that turns free-text messages into validated, priced
// shipping orders.
package chat

import (
	"context"
	"math/rand"
	"strconv"
	"strings"

	"github.com/theyellowexpress/expressbot/internal/catalog"
	"github.com/theyellowexpress/expressbot/internal/llm"
	"github.com/theyellowexpress/expressbot/internal/pricing"
)

// historyWindow is how many transcript messages are forwarded as context to
// the completion fallback.
const historyWindow = 6

// Completer is the generative fallback for questions no local rule answers.
// *llm.Bridge satisfies it.
type Completer interface {
	Complete(ctx context.Context, clientID string, messages []llm.Message) (string, error)
}

// Engine processes one inbound message at a time per session. Local
// deterministic rules run first so safety and pricing answers never depend
// on the external model; the completion service only sees open-ended
// questions.
type Engine struct {
	rates      pricing.Rates
	classifier *catalog.Classifier
	orders     OrderCreator
	assistant  Completer
	prompt     string
}

// NewEngine wires the engine's collaborators. assistant may be nil, in
// which case open-ended questions get the connectivity-failure reply.
func NewEngine(rates pricing.Rates, classifier *catalog.Classifier, orders OrderCreator, assistant Completer) *Engine {
	return &Engine{
		rates:      rates,
		classifier: classifier,
		orders:     orders,
		assistant:  assistant,
		prompt:     buildSystemPrompt(rates),
	}
}

// Handle processes one user message and returns the assistant's reply. The
// session is locked for the whole exchange: state is read, validated and
// written before the next message for this session can be accepted.
func (e *Engine) Handle(ctx context.Context, sess *Session, text string) string {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	input := strings.TrimSpace(text)
	sess.Messages = append(sess.Messages, Message{Role: RoleUser, Content: input})

	var reply string
	if sess.State != StateIdle {
		reply = e.advance(ctx, sess, input)
	} else {
		reply = e.route(ctx, sess, input)
	}

	sess.Messages = append(sess.Messages, Message{Role: RoleAssistant, Content: reply})
	return reply
}

// route handles an idle conversation: cheap local matchers in fixed priority
// order, then delegation to the completion fallback.
func (e *Engine) route(ctx context.Context, sess *Session, input string) string {
	lower := strings.ToLower(input)

	// Explicit intent to start an order.
	if startOrderPattern.MatchString(lower) {
		sess.State = StateAskingProduct
		return replyStartOrder
	}

	// A bare "sí" right after a quick quote also starts the flow.
	if affirmativePattern.MatchString(lower) && sess.Draft.Weight > 0 {
		sess.State = StateAskingProduct
		return replyStartOrderAfterQuote
	}

	if greetingPattern.MatchString(lower) {
		return greetingReplies[rand.Intn(len(greetingReplies))]
	}

	if priceWordPattern.MatchString(lower) || priceAskPattern.MatchString(lower) {
		return e.priceOverview()
	}

	// Quick quote: a bare weight mention prices it immediately and records
	// the weight so a following "sí" can enter the order flow.
	if weight, ok := extractWeight(input); ok && weight > 0 {
		quote := e.rates.ForWeight(weight, 0, false)
		sess.Draft = Draft{Weight: weight}
		return quickQuoteReply(weight, quote)
	}

	if whatCanSendPattern.MatchString(lower) {
		return replyWhatCanSend
	}

	if deliveryPattern.MatchString(lower) {
		return replyDeliveryTime
	}

	if thanksPattern.MatchString(lower) {
		return replyThanks
	}

	return e.delegate(ctx, sess, input)
}

// delegate forwards an open-ended question to the completion service with a
// bounded window of recent transcript context.
func (e *Engine) delegate(ctx context.Context, sess *Session, input string) string {
	if e.assistant == nil {
		return replyServiceDown
	}

	msgs := []llm.Message{{Role: llm.RoleSystem, Content: e.prompt}}

	// History excludes the message being handled, which was already
	// appended to the transcript.
	history := sess.Messages[:len(sess.Messages)-1]
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: input})

	answer, err := e.assistant.Complete(ctx, sess.ID, msgs)
	switch {
	case err == nil:
		// The model sometimes quotes a weight; record it so a following
		// "sí" can enter the order flow.
		if m := answerWeightPattern.FindStringSubmatch(answer); m != nil {
			if weight, perr := strconv.ParseFloat(m[1], 64); perr == nil && weight > 0 {
				sess.Draft = Draft{Weight: weight}
			}
		}
		return answer
	case isTooManyRequests(err):
		return replyClientRateLimited
	case isRateLimited(err):
		return replyServiceBusy
	default:
		return replyServiceDown
	}
}
