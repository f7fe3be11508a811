package orders

import (
	"encoding/json"
	"time"
)

const (
	EventOrderSubmitted = "OrderSubmitted"
	EventOrderApproved  = "OrderApproved"
	EventOrderRejected  = "OrderRejected"
	EventStockReceived  = "StockReceived"
	EventStockAdjusted  = "StockAdjusted"
	EventProductSaved   = "ProductSaved"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // salah satu const di atas
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "stockfront"
	Actor         string          `json:"actor,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order_id atau product_id
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload tipe per event ----

type OrderSubmittedPayload struct {
	OrderID   string      `json:"order_id"`
	ClientRef string      `json:"client_ref"`
	Items     []OrderItem `json:"items"`
	Total     int         `json:"total"`
}

type OrderDecidedPayload struct {
	OrderID string `json:"order_id"`
	Status  Status `json:"status"`
}

type StockChangedPayload struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
	Reason    string `json:"reason,omitempty"`
}

type ProductSavedPayload struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Created   bool   `json:"created"`
}
