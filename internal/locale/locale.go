// Package locale holds the user-facing messages. Thai is the shop's default.
package locale

import (
	"fmt"
	"strings"
)

type Key string

const (
	Failed            Key = "failed"
	LoadingProducts   Key = "loading_products"
	LoadProductsError Key = "load_products_error"
	NoProducts        Key = "no_products"
	OutOfStock        Key = "out_of_stock"
	QtyInvalid        Key = "qty_invalid"
	AddedToCart       Key = "added_to_cart"
	CartEmpty         Key = "cart_empty"
	CartSaveFailed    Key = "cart_save_failed"
	SubmittingOrder   Key = "submitting_order"
	OrderCreated      Key = "order_created"
	OrderFailed       Key = "order_failed"

	LoginRequired Key = "login_required"
	LoggingIn     Key = "logging_in"
	LoginOK       Key = "login_ok"
	LoginFailed   Key = "login_failed"
	LoggedOut     Key = "logged_out"

	LoadingOrders     Key = "loading_orders"
	LoadOrdersFailed  Key = "load_orders_failed"
	ConfirmApprove    Key = "confirm_approve"
	ConfirmReject     Key = "confirm_reject"
	Approving         Key = "approving"
	Approved          Key = "approved"
	ApproveFailed     Key = "approve_failed"
	Rejecting         Key = "rejecting"
	Rejected          Key = "rejected"
	RejectFailed      Key = "reject_failed"
	NothingToConfirm  Key = "nothing_to_confirm"
	SavingStock       Key = "saving_stock"
	StockInOK         Key = "stock_in_ok"
	StockInFailed     Key = "stock_in_failed"
	StockAdjustOK     Key = "stock_adjust_ok"
	StockAdjustFailed Key = "stock_adjust_failed"
	LoadingHistory    Key = "loading_history"
	LoadHistoryFailed Key = "load_history_failed"
	SavingProduct     Key = "saving_product"
	ProductSaved      Key = "product_saved"
	ProductSaveFailed Key = "product_save_failed"
	UploadingImage    Key = "uploading_image"
	ImageUploaded     Key = "image_uploaded"
	ImageUploadFailed Key = "image_upload_failed"

	LoadingProductsAdmin Key = "loading_products_admin"

	FieldRequired    Key = "field_required"
	FieldNotInteger  Key = "field_not_integer"
	FieldNegative    Key = "field_negative"
	FieldNotPositive Key = "field_not_positive"

	DeniedOrders   Key = "denied_orders"
	DeniedApprove  Key = "denied_approve"
	DeniedReject   Key = "denied_reject"
	DeniedStockIn  Key = "denied_stock_in"
	DeniedAdjust   Key = "denied_adjust"
	DeniedLogs     Key = "denied_logs"
	DeniedAdd      Key = "denied_add"
	DeniedUpdate   Key = "denied_update"
	DeniedUpload   Key = "denied_upload"
	DeniedTimeline Key = "denied_timeline"
	DeniedHistory  Key = "denied_history"
)

type Catalog struct {
	Tag      string
	messages map[Key]string
}

// For picks a catalog from a tag such as "th-TH" or "en". Unknown tags fall back to Thai.
func For(tag string) Catalog {
	lang := strings.ToLower(strings.SplitN(strings.ReplaceAll(tag, "_", "-"), "-", 2)[0])
	if lang == "en" {
		return Catalog{Tag: "en", messages: english}
	}
	return Catalog{Tag: "th", messages: thai}
}

// T formats the message for key. Missing keys render as the key itself.
func (c Catalog) T(key Key, args ...any) string {
	msg, ok := c.messages[key]
	if !ok {
		msg, ok = english[key]
	}
	if !ok {
		return string(key)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
