package orders

import "time"

// Status is the lifecycle state of a shipping order.
type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusPending             Status = "pending"
	StatusWarehouseLA         Status = "warehouse_la"
	StatusWarehouseSV         Status = "warehouse_sv"
	StatusInTransit           Status = "in_transit_international"
	StatusCustoms             Status = "customs"
	StatusAssignedToDriver    Status = "assigned_to_driver"
	StatusOutForDelivery      Status = "out_for_delivery"
	StatusDelivered           Status = "delivered"
	StatusCancelled           Status = "cancelled"
)

// StatusLabels maps each status to the Spanish label shown to customers.
var StatusLabels = map[Status]string{
	StatusPendingConfirmation: "Pendiente de confirmación",
	StatusPending:             "Pendiente",
	StatusWarehouseLA:         "Bodega LA",
	StatusWarehouseSV:         "Bodega SV",
	StatusInTransit:           "En Tránsito Internacional",
	StatusCustoms:             "En Aduana",
	StatusAssignedToDriver:    "Asignado a Motorista",
	StatusOutForDelivery:      "En Ruta de Entrega",
	StatusDelivered:           "Entregado",
	StatusCancelled:           "Cancelado",
}

// Label returns the customer-facing name of s, falling back to the raw value.
func (s Status) Label() string {
	if label, ok := StatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

// Order is a shipping order from Los Angeles to El Salvador.
type Order struct {
	ID                 string     `json:"id"`
	TrackingNumber     string     `json:"tracking_number"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	CustomerPhone      string     `json:"customer_phone"`
	DestinationAddress string     `json:"destination_address"`
	DestinationCity    string     `json:"destination_city"`
	DestinationCountry string     `json:"destination_country"`
	PackageDescription string     `json:"package_description"`
	PackageWeight      float64    `json:"package_weight"`
	DeclaredValue      float64    `json:"declared_value"`
	ShippingCost       float64    `json:"shipping_cost"`
	Status             Status     `json:"status"`
	EstimatedDelivery  *time.Time `json:"estimated_delivery,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// StatusChange is one entry in an order's status history.
type StatusChange struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
