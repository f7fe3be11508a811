package locale

var thai = map[Key]string{
	Failed:            "ทำรายการไม่สำเร็จ",
	LoadingProducts:   "กำลังโหลดสินค้า...",
	LoadProductsError: "ไม่สามารถโหลดข้อมูลสินค้าได้",
	NoProducts:        "ยังไม่มีสินค้าในระบบ",
	OutOfStock:        "สินค้าหมด",
	QtyInvalid:        "จำนวนสินค้าไม่ถูกต้อง",
	AddedToCart:       "เพิ่ม %s ลงตะกร้าแล้ว",
	CartEmpty:         "ยังไม่มีสินค้าในตะกร้า",
	CartSaveFailed:    "บันทึกตะกร้าไม่สำเร็จ",
	SubmittingOrder:   "กำลังสร้างใบสั่งซื้อ...",
	OrderCreated:      "สร้างใบสั่งซื้อสำเร็จ",
	OrderFailed:       "สร้างใบสั่งซื้อไม่สำเร็จ",

	LoginRequired: "กรุณาเข้าสู่ระบบแอดมิน",
	LoggingIn:     "กำลังเข้าสู่ระบบ...",
	LoginOK:       "เข้าสู่ระบบแล้ว",
	LoginFailed:   "เข้าสู่ระบบไม่สำเร็จ",
	LoggedOut:     "ออกจากระบบแล้ว",

	LoadingOrders:        "กำลังโหลดคำสั่งซื้อ...",
	LoadOrdersFailed:     "โหลดคำสั่งซื้อไม่สำเร็จ",
	ConfirmApprove:       "ยืนยันการอนุมัติคำสั่งซื้อ %s?",
	ConfirmReject:        "ยืนยันการปฏิเสธคำสั่งซื้อ %s?",
	Approving:            "กำลังอนุมัติคำสั่งซื้อ...",
	Approved:             "อนุมัติคำสั่งซื้อเรียบร้อย",
	ApproveFailed:        "อนุมัติคำสั่งซื้อไม่สำเร็จ",
	Rejecting:            "กำลังปฏิเสธคำสั่งซื้อ...",
	Rejected:             "ปฏิเสธคำสั่งซื้อเรียบร้อย",
	RejectFailed:         "ปฏิเสธคำสั่งซื้อไม่สำเร็จ",
	NothingToConfirm:     "ไม่มีรายการรอยืนยัน",
	SavingStock:          "กำลังบันทึกสต๊อก...",
	StockInOK:            "รับสินค้าเข้าเรียบร้อย",
	StockInFailed:        "รับสินค้าเข้าไม่สำเร็จ",
	StockAdjustOK:        "ปรับยอดสต๊อกเรียบร้อย",
	StockAdjustFailed:    "ปรับยอดสต๊อกไม่สำเร็จ",
	LoadingHistory:       "กำลังโหลดประวัติ...",
	LoadHistoryFailed:    "โหลดประวัติไม่สำเร็จ",
	SavingProduct:        "กำลังบันทึกสินค้า...",
	ProductSaved:         "บันทึกสินค้าเรียบร้อย",
	ProductSaveFailed:    "บันทึกสินค้าไม่สำเร็จ",
	UploadingImage:       "กำลังอัปโหลดรูป...",
	ImageUploaded:        "อัปโหลดรูปเรียบร้อย",
	ImageUploadFailed:    "อัปโหลดรูปไม่สำเร็จ",
	LoadingProductsAdmin: "กำลังโหลดรายการสินค้า...",

	FieldRequired:    "กรุณากรอก %s",
	FieldNotInteger:  "%s ต้องเป็นจำนวนเต็ม",
	FieldNegative:    "%s ต้องไม่ติดลบ",
	FieldNotPositive: "%s ต้องมากกว่า 0",

	DeniedOrders:   "ไม่มีสิทธิ์ดูคำสั่งซื้อ",
	DeniedApprove:  "ไม่มีสิทธิ์อนุมัติคำสั่งซื้อ",
	DeniedReject:   "ไม่มีสิทธิ์ปฏิเสธคำสั่งซื้อ",
	DeniedStockIn:  "ไม่มีสิทธิ์รับสินค้าเข้า",
	DeniedAdjust:   "ไม่มีสิทธิ์ปรับยอดสต๊อก",
	DeniedLogs:     "ไม่มีสิทธิ์ดูประวัติสต๊อก",
	DeniedAdd:      "ไม่มีสิทธิ์เพิ่มสินค้า",
	DeniedUpdate:   "ไม่มีสิทธิ์แก้ไขสินค้า",
	DeniedUpload:   "ไม่มีสิทธิ์อัปโหลดรูปสินค้า",
	DeniedTimeline: "ไม่มีสิทธิ์ดูไทม์ไลน์",
	DeniedHistory:  "ไม่มีสิทธิ์ดูประวัติ",
}

var english = map[Key]string{
	Failed:            "Something went wrong",
	LoadingProducts:   "Loading products...",
	LoadProductsError: "Could not load products",
	NoProducts:        "No products yet",
	OutOfStock:        "Out of stock",
	QtyInvalid:        "Invalid quantity",
	AddedToCart:       "Added %s to cart",
	CartEmpty:         "Your cart is empty",
	CartSaveFailed:    "Could not save the cart",
	SubmittingOrder:   "Creating order...",
	OrderCreated:      "Order created",
	OrderFailed:       "Could not create the order",

	LoginRequired: "Please sign in as admin",
	LoggingIn:     "Signing in...",
	LoginOK:       "Signed in",
	LoginFailed:   "Sign-in failed",
	LoggedOut:     "Signed out",

	LoadingOrders:        "Loading orders...",
	LoadOrdersFailed:     "Could not load orders",
	ConfirmApprove:       "Approve order %s?",
	ConfirmReject:        "Reject order %s?",
	Approving:            "Approving order...",
	Approved:             "Order approved",
	ApproveFailed:        "Could not approve the order",
	Rejecting:            "Rejecting order...",
	Rejected:             "Order rejected",
	RejectFailed:         "Could not reject the order",
	NothingToConfirm:     "Nothing to confirm",
	SavingStock:          "Saving stock...",
	StockInOK:            "Stock received",
	StockInFailed:        "Could not receive stock",
	StockAdjustOK:        "Stock adjusted",
	StockAdjustFailed:    "Could not adjust stock",
	LoadingHistory:       "Loading history...",
	LoadHistoryFailed:    "Could not load history",
	SavingProduct:        "Saving product...",
	ProductSaved:         "Product saved",
	ProductSaveFailed:    "Could not save the product",
	UploadingImage:       "Uploading image...",
	ImageUploaded:        "Image uploaded",
	ImageUploadFailed:    "Could not upload the image",
	LoadingProductsAdmin: "Loading product list...",

	FieldRequired:    "%s is required",
	FieldNotInteger:  "%s must be a whole number",
	FieldNegative:    "%s must not be negative",
	FieldNotPositive: "%s must be greater than 0",

	DeniedOrders:   "You may not view orders",
	DeniedApprove:  "You may not approve orders",
	DeniedReject:   "You may not reject orders",
	DeniedStockIn:  "You may not receive stock",
	DeniedAdjust:   "You may not adjust stock",
	DeniedLogs:     "You may not view stock history",
	DeniedAdd:      "You may not add products",
	DeniedUpdate:   "You may not edit products",
	DeniedUpload:   "You may not upload product images",
	DeniedTimeline: "You may not view the timeline",
	DeniedHistory:  "You may not view history",
}
