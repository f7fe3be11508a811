package session

import "fmt"

type Capability int

const (
	capNone Capability = iota
	ManageOrders
	ManageProducts
	ManageStock
	ViewHistory
	capabilityCount
)

var capabilityNames = [capabilityCount]string{
	capNone:        "none",
	ManageOrders:   "manage-orders",
	ManageProducts: "manage-products",
	ManageStock:    "manage-stock",
	ViewHistory:    "view-history",
}

func (c Capability) String() string {
	if c < capNone || c >= capabilityCount {
		return fmt.Sprintf("capability(%d)", int(c))
	}
	return capabilityNames[c]
}

// Action is one gated admin operation.
type Action int

const (
	LoadOrders Action = iota
	ApproveOrder
	RejectOrder
	StockIn
	StockAdjust
	LoadStockLogs
	AddProduct
	UpdateProduct
	UploadImage
	ViewTimeline
	ViewHistoryLog
	actionCount
)

var actionCapabilities = [actionCount]Capability{
	LoadOrders:     ManageOrders,
	ApproveOrder:   ManageOrders,
	RejectOrder:    ManageOrders,
	StockIn:        ManageStock,
	StockAdjust:    ManageStock,
	LoadStockLogs:  ViewHistory,
	AddProduct:     ManageProducts,
	UpdateProduct:  ManageProducts,
	UploadImage:    ManageProducts,
	ViewTimeline:   ViewHistory,
	ViewHistoryLog: ViewHistory,
}

var actionNames = [actionCount]string{
	LoadOrders:     "load-orders",
	ApproveOrder:   "approve-order",
	RejectOrder:    "reject-order",
	StockIn:        "stock-in",
	StockAdjust:    "stock-adjust",
	LoadStockLogs:  "load-stock-logs",
	AddProduct:     "add-product",
	UpdateProduct:  "update-product",
	UploadImage:    "upload-image",
	ViewTimeline:   "view-timeline",
	ViewHistoryLog: "view-history",
}

// Actions lists every gated action.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

func (a Action) Capability() Capability {
	if a < 0 || a >= actionCount {
		return capNone
	}
	return actionCapabilities[a]
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

type DeniedError struct {
	Action Action
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("permission denied: %s requires %s", e.Action, e.Action.Capability())
}
