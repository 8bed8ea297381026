package chat

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/theyellowexpress/expressbot/internal/extract"
	"github.com/theyellowexpress/expressbot/internal/llm"
)

func extractWeight(text string) (float64, bool) { return extract.Weight(text) }

func isRateLimited(err error) bool     { return errors.Is(err, llm.ErrRateLimited) }
func isTooManyRequests(err error) bool { return errors.Is(err, llm.ErrTooManyRequests) }

// advance runs one step of the slot-filling order flow. The global cancel
// intent is checked before any per-state logic.
func (e *Engine) advance(ctx context.Context, sess *Session, input string) string {
	lower := strings.ToLower(input)

	if cancelPattern.MatchString(lower) {
		sess.reset()
		return replyCancelled
	}

	switch sess.State {
	case StateAskingProduct:
		return e.acceptProduct(sess, input)

	case StateAskingWeight:
		weight, ok := extract.Weight(input)
		if !ok || weight <= 0 {
			return replyWeightNotUnderstood
		}
		quote := e.rates.ForWeight(weight, 0, false)
		sess.Draft.Weight = weight
		sess.State = StateAskingName
		return weightAcceptedReply(weight, quote)

	case StateAskingName:
		if utf8.RuneCountInString(input) < 3 {
			return replyNeedFullName
		}
		sess.Draft.ContactName = input
		sess.State = StateAskingPhone
		return nameAcceptedReply(input)

	case StateAskingPhone:
		phone, ok := extract.Phone(input)
		if !ok {
			return replyPhoneNotRecognized
		}
		sess.Draft.ContactPhone = phone
		sess.State = StateAskingCity
		return "Perfecto. ¿En qué ciudad de El Salvador se entregará el paquete?"

	case StateAskingCity:
		if utf8.RuneCountInString(input) < 3 {
			return replyAskCity
		}
		sess.Draft.DeliveryCity = input
		sess.State = StateAskingAddress
		return "Entrega en " + input + ". ¿Cuál es la dirección completa de entrega?"

	case StateAskingAddress:
		if utf8.RuneCountInString(input) < 10 {
			return replyNeedFullAddress
		}
		sess.Draft.DeliveryAddress = input
		sess.State = StateConfirming
		quote := e.rates.ForWeight(sess.Draft.Weight, 0, false)
		return orderSummaryReply(sess.Draft, quote)

	case StateConfirming:
		return e.confirm(ctx, sess, lower)
	}

	// Unreachable while transitions stay within the enum; recover anyway.
	sess.reset()
	return replyCancelled
}

// acceptProduct validates the product slot against the item classifier.
// Prohibited items abort the whole flow; restricted items continue with a
// requirements notice.
func (e *Engine) acceptProduct(sess *Session, input string) string {
	if utf8.RuneCountInString(input) < 3 {
		return replyAskMoreProductDetail
	}

	result := e.classifier.Classify(input)
	if result.HasProhibited() {
		sess.reset()
		return prohibitedRefusalReply(result.Prohibited)
	}

	sess.Draft.Product = input
	sess.State = StateAskingWeight

	if result.HasRestricted() {
		return restrictedNoticeReply(result.Restricted)
	}
	return productAcceptedReply(input)
}

// confirm handles the final yes/no. The submission side effect is awaited
// before the state transition completes; either outcome resets to idle and
// discards the draft.
func (e *Engine) confirm(ctx context.Context, sess *Session, lower string) string {
	switch {
	case confirmYesPattern.MatchString(lower):
		sess.State = StateSaving
		draft := sess.Draft
		tracking, err := e.orders.CreateOrder(ctx, NewOrder{
			CustomerName:       draft.ContactName,
			CustomerPhone:      draft.ContactPhone,
			DestinationAddress: draft.DeliveryAddress,
			DestinationCity:    draft.DeliveryCity,
			PackageDescription: draft.Product,
			WeightPounds:       draft.Weight,
		})
		sess.reset()
		if err != nil {
			return submissionFailedReply(err)
		}
		return orderCreatedReply(tracking)

	case confirmNoPattern.MatchString(lower):
		sess.reset()
		return replyCancelledAtConfirm

	default:
		return replyConfirmYesNo
	}
}
