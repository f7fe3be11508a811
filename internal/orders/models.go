package orders

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Product struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
	Active      bool   `json:"active"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// UnmarshalJSON accepts sheet-style cells: numbers may arrive as strings and
// active as "TRUE"/"FALSE". A missing active flag means the product is listed.
func (p *Product) UnmarshalJSON(b []byte) error {
	var raw struct {
		ProductID   string          `json:"productId"`
		Name        string          `json:"name"`
		Price       json.RawMessage `json:"price"`
		Stock       json.RawMessage `json:"stock"`
		Active      json.RawMessage `json:"active"`
		Image       string          `json:"image"`
		Description string          `json:"description"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	price, err := flexInt(raw.Price)
	if err != nil {
		return fmt.Errorf("product %s price: %w", raw.ProductID, err)
	}
	stock, err := flexInt(raw.Stock)
	if err != nil {
		return fmt.Errorf("product %s stock: %w", raw.ProductID, err)
	}
	*p = Product{
		ProductID:   raw.ProductID,
		Name:        raw.Name,
		Price:       price,
		Stock:       stock,
		Active:      flexBool(raw.Active, true),
		Image:       raw.Image,
		Description: raw.Description,
	}
	return nil
}

func (p Product) InStock() bool { return p.Stock > 0 }

type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Qty       int    `json:"qty"`
}

type Order struct {
	OrderID    string      `json:"orderId"`
	Items      []OrderItem `json:"items"`
	Total      int         `json:"total"`
	Status     Status      `json:"status"` // lihat status.go
	CreatedAt  Timestamp   `json:"createdAt"`
	UpdatedAt  Timestamp   `json:"updatedAt"`
	ApprovedBy string      `json:"approvedBy,omitempty"`
	RejectedBy string      `json:"rejectedBy,omitempty"`
}

// UnmarshalJSON tolerates items stored as a JSON string (one sheet cell).
func (o *Order) UnmarshalJSON(b []byte) error {
	type plain Order
	var raw struct {
		plain
		Items json.RawMessage `json:"items"`
		Total json.RawMessage `json:"total"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*o = Order(raw.plain)
	o.Items = nil
	o.Status = Status(strings.ToUpper(string(o.Status)))

	items := raw.Items
	var s string
	if len(items) > 0 && items[0] == '"' {
		if err := json.Unmarshal(items, &s); err != nil {
			return err
		}
		items = json.RawMessage(s)
	}
	if len(items) > 0 && string(items) != "null" && strings.TrimSpace(string(items)) != "" {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return fmt.Errorf("order %s items: %w", o.OrderID, err)
		}
	}
	total, err := flexInt(raw.Total)
	if err != nil {
		return fmt.Errorf("order %s total: %w", o.OrderID, err)
	}
	o.Total = total
	return nil
}

// UpdatedBy is the admin who moved the order out of PENDING.
func (o Order) UpdatedBy() string {
	if o.ApprovedBy != "" {
		return o.ApprovedBy
	}
	return o.RejectedBy
}

// LastChanged falls back to CreatedAt when the endpoint never stamped an update.
func (o Order) LastChanged() time.Time {
	if !o.UpdatedAt.IsZero() {
		return o.UpdatedAt.Time
	}
	return o.CreatedAt.Time
}

type StockLogType string

const (
	StockIn     StockLogType = "IN"
	StockOut    StockLogType = "OUT"
	StockAdjust StockLogType = "ADJUST"
	StockCreate StockLogType = "CREATE"
)

type StockLogEntry struct {
	LogID     string       `json:"logId"`
	ProductID string       `json:"productId"`
	Type      StockLogType `json:"type"`
	Qty       int          `json:"qty"`
	Before    int          `json:"before"`
	After     int          `json:"after"`
	By        string       `json:"by"`
	Timestamp Timestamp    `json:"timestamp"`
	OrderID   string       `json:"orderId,omitempty"`
	Reason    string       `json:"reason,omitempty"`
}

func (l *StockLogEntry) UnmarshalJSON(b []byte) error {
	type plain StockLogEntry
	var raw struct {
		plain
		Qty    json.RawMessage `json:"qty"`
		Before json.RawMessage `json:"before"`
		After  json.RawMessage `json:"after"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*l = StockLogEntry(raw.plain)
	l.Type = StockLogType(strings.ToUpper(string(l.Type)))
	var err error
	if l.Qty, err = flexInt(raw.Qty); err != nil {
		return fmt.Errorf("stock log %s qty: %w", l.LogID, err)
	}
	if l.Before, err = flexInt(raw.Before); err != nil {
		return fmt.Errorf("stock log %s before: %w", l.LogID, err)
	}
	if l.After, err = flexInt(raw.After); err != nil {
		return fmt.Errorf("stock log %s after: %w", l.LogID, err)
	}
	return nil
}

// Timestamp decodes RFC3339 / "2006-01-02 15:04:05" strings or epoch milliseconds.
type Timestamp struct{ time.Time }

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	if s[0] != '"' {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("timestamp %s: %w", s, err)
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, str); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp %q: unknown layout", str)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

func flexInt(raw json.RawMessage) (int, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" || s == `""` {
		return 0, nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return 0, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func flexBool(raw json.RawMessage, def bool) bool {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	switch strings.ToLower(s) {
	case "", "null":
		return def
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
