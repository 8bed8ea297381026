package orders

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/theyellowexpress/expressbot/internal/chat"
	"github.com/theyellowexpress/expressbot/internal/pricing"
)

// Service turns confirmed conversations into persisted orders. It satisfies
// chat.OrderCreator.
type Service struct {
	store *Store
	rates pricing.Rates
}

// NewService creates a service backed by the given store and rate card.
func NewService(store *Store, rates pricing.Rates) *Service {
	return &Service{store: store, rates: rates}
}

// CreateOrder prices and persists an order assembled by the chat flow and
// returns its tracking number. Chat customers rarely give an email, so a
// placeholder derived from the phone number is used instead.
func (s *Service) CreateOrder(ctx context.Context, no chat.NewOrder) (string, error) {
	digits := strings.TrimPrefix(no.CustomerPhone, "+")
	email := digits + "@chatbot.theyellowexpress.com"

	quote := s.rates.ForWeight(no.WeightPounds, 0, false)

	order := &Order{
		CustomerName:       no.CustomerName,
		CustomerEmail:      email,
		CustomerPhone:      no.CustomerPhone,
		DestinationAddress: no.DestinationAddress,
		DestinationCity:    no.DestinationCity,
		PackageDescription: no.PackageDescription,
		PackageWeight:      no.WeightPounds,
		ShippingCost:       quote.Total,
	}
	if err := s.store.Create(ctx, order); err != nil {
		return "", fmt.Errorf("creating order: %w", err)
	}

	log.Printf("orders: created %s for %s (%.1f lb, $%.2f)",
		order.TrackingNumber, order.CustomerName, order.PackageWeight, order.ShippingCost)
	return order.TrackingNumber, nil
}
