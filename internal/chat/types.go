package chat

import "context"

// State is the position of a conversation in the order-collection flow.
// Transitions are strictly linear except for the global cancel back to idle
// and retry loops that stay in place while a slot fails validation.
type State string

const (
	StateIdle          State = "idle"
	StateAskingProduct State = "asking_product"
	StateAskingWeight  State = "asking_weight"
	StateAskingName    State = "asking_name"
	StateAskingPhone   State = "asking_phone"
	StateAskingCity    State = "asking_city"
	StateAskingAddress State = "asking_address"
	StateConfirming    State = "confirming"
	StateSaving        State = "saving"
)

// Draft accumulates the order fields collected one slot at a time. Fields
// are only ever filled forward; cancel resets the whole draft.
type Draft struct {
	Product         string  `json:"product,omitempty"`
	Weight          float64 `json:"weight,omitempty"` // pounds
	ContactName     string  `json:"contact_name,omitempty"`
	ContactPhone    string  `json:"contact_phone,omitempty"`
	DeliveryCity    string  `json:"delivery_city,omitempty"`
	DeliveryAddress string  `json:"delivery_address,omitempty"`
}

// Complete reports whether every slot required for submission is filled.
func (d Draft) Complete() bool {
	return d.Product != "" && d.Weight > 0 && d.ContactName != "" &&
		d.ContactPhone != "" && d.DeliveryCity != "" && d.DeliveryAddress != ""
}

// Role identifies who produced a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a conversation transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewOrder carries a completed draft to the order-persistence collaborator.
type NewOrder struct {
	CustomerName       string
	CustomerPhone      string
	DestinationAddress string
	DestinationCity    string
	PackageDescription string
	WeightPounds       float64
}

// OrderCreator is the external persistence collaborator. The tracking number
// format and uniqueness are its responsibility; the engine treats the value
// as opaque.
type OrderCreator interface {
	CreateOrder(ctx context.Context, o NewOrder) (trackingNumber string, err error)
}
