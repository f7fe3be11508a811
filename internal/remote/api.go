package remote

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/pkg/errors"
)

// Action names understood by the endpoint.
const (
	ActProducts      = "products"
	ActCreateOrder   = "createOrder"
	ActAdminLogin    = "adminLogin"
	ActAdminLogout   = "adminLogout"
	ActOrders        = "orders"
	ActApprove       = "approveOrder"
	ActReject        = "rejectOrder"
	ActStockIn       = "stockIn"
	ActStockAdjust   = "stockAdjust"
	ActStockLogs     = "stockLogs"
	ActUploadImage   = "uploadProductImage"
	ActAddProduct    = "addProduct"
	ActUpdateProduct = "updateProduct"
)

// API is what the flows depend on; *Client implements it.
type API interface {
	Products(ctx context.Context) ([]orders.Product, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (CreatedOrder, error)
	AdminLogin(ctx context.Context, username, password string) (LoginResult, error)
	AdminLogout(ctx context.Context, token string) error
	Orders(ctx context.Context, token string) ([]orders.Order, error)
	ApproveOrder(ctx context.Context, token, orderID string) error
	RejectOrder(ctx context.Context, token, orderID string) error
	StockIn(ctx context.Context, token, productID string, qty int, reason string) error
	StockAdjust(ctx context.Context, token, productID string, newQty int, reason string) error
	StockLogs(ctx context.Context, token string) ([]orders.StockLogEntry, error)
	UploadProductImage(ctx context.Context, token string, img Image) (string, error)
	AddProduct(ctx context.Context, token string, f ProductFields) error
	UpdateProduct(ctx context.Context, token string, f ProductFields) error
}

var _ API = (*Client)(nil)

type CreateOrderRequest struct {
	Items     []orders.OrderItem
	Total     int
	ClientRef string
}

// CreatedOrder is whatever the endpoint echoes back; OrderID may be empty.
type CreatedOrder struct {
	OrderID string             `json:"orderId"`
	Total   int                `json:"total"`
	Items   []orders.OrderItem `json:"items,omitempty"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Image struct {
	Data     []byte
	Filename string
	MimeType string
}

// ProductFields is the form for add/update. Nil pointers are not sent, so an
// update only touches what was set. Image and description are always sent;
// an empty one clears the stored value.
type ProductFields struct {
	ProductID   string
	Name        string
	Price       *int
	Stock       *int
	Active      *bool
	Image       string
	Description string
}

var clearable = []string{"image", "description"}

func (f ProductFields) values() url.Values {
	v := url.Values{}
	v.Set("productId", f.ProductID)
	v.Set("name", f.Name)
	if f.Price != nil {
		v.Set("price", strconv.Itoa(*f.Price))
	}
	if f.Stock != nil {
		v.Set("stock", strconv.Itoa(*f.Stock))
	}
	if f.Active != nil {
		v.Set("active", strconv.FormatBool(*f.Active))
	}
	v.Set("image", f.Image)
	v.Set("description", f.Description)
	return v
}

func (c *Client) Products(ctx context.Context) ([]orders.Product, error) {
	data, err := c.post(ctx, ActProducts, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[orders.Product](ActProducts, data)
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (CreatedOrder, error) {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return CreatedOrder{}, errors.Wrap(err, "marshal items")
	}
	data, err := c.post(ctx, ActCreateOrder, url.Values{
		"items":     {string(items)},
		"total":     {strconv.Itoa(req.Total)},
		"clientRef": {req.ClientRef},
	})
	if err != nil {
		return CreatedOrder{}, err
	}
	if len(data) == 0 || string(data) == "null" {
		return CreatedOrder{}, nil
	}
	return decodeObject[CreatedOrder](ActCreateOrder, data)
}

func (c *Client) AdminLogin(ctx context.Context, username, password string) (LoginResult, error) {
	data, err := c.post(ctx, ActAdminLogin, url.Values{"username": {username}, "password": {password}})
	if err != nil {
		return LoginResult{}, err
	}
	res, err := decodeObject[LoginResult](ActAdminLogin, data)
	if err != nil {
		return LoginResult{}, err
	}
	if res.Token == "" {
		return LoginResult{}, &Error{Kind: KindDomain, Action: ActAdminLogin, Message: "missing token", Payload: data}
	}
	if res.Username == "" {
		res.Username = username
	}
	return res, nil
}

func (c *Client) AdminLogout(ctx context.Context, token string) error {
	_, err := c.post(ctx, ActAdminLogout, url.Values{"token": {token}})
	return err
}

func (c *Client) Orders(ctx context.Context, token string) ([]orders.Order, error) {
	data, err := c.post(ctx, ActOrders, url.Values{"token": {token}})
	if err != nil {
		return nil, err
	}
	return decodeList[orders.Order](ActOrders, data)
}

func (c *Client) ApproveOrder(ctx context.Context, token, orderID string) error {
	_, err := c.post(ctx, ActApprove, url.Values{"token": {token}, "orderId": {orderID}})
	return err
}

func (c *Client) RejectOrder(ctx context.Context, token, orderID string) error {
	_, err := c.post(ctx, ActReject, url.Values{"token": {token}, "orderId": {orderID}})
	return err
}

func (c *Client) StockIn(ctx context.Context, token, productID string, qty int, reason string) error {
	_, err := c.post(ctx, ActStockIn, url.Values{
		"token":     {token},
		"productId": {productID},
		"qty":       {strconv.Itoa(qty)},
		"reason":    {reason},
	})
	return err
}

func (c *Client) StockAdjust(ctx context.Context, token, productID string, newQty int, reason string) error {
	_, err := c.post(ctx, ActStockAdjust, url.Values{
		"token":     {token},
		"productId": {productID},
		"newQty":    {strconv.Itoa(newQty)},
		"reason":    {reason},
	})
	return err
}

func (c *Client) StockLogs(ctx context.Context, token string) ([]orders.StockLogEntry, error) {
	data, err := c.post(ctx, ActStockLogs, url.Values{"token": {token}})
	if err != nil {
		return nil, err
	}
	return decodeList[orders.StockLogEntry](ActStockLogs, data)
}

func (c *Client) UploadProductImage(ctx context.Context, token string, img Image) (string, error) {
	data, err := c.post(ctx, ActUploadImage, url.Values{
		"token":    {token},
		"base64":   {base64.StdEncoding.EncodeToString(img.Data)},
		"filename": {img.Filename},
		"mimeType": {img.MimeType},
	})
	if err != nil {
		return "", err
	}
	res, err := decodeObject[struct {
		ImageURL string `json:"imageUrl"`
	}](ActUploadImage, data)
	if err != nil {
		return "", err
	}
	return res.ImageURL, nil
}

func (c *Client) AddProduct(ctx context.Context, token string, f ProductFields) error {
	v := f.values()
	v.Set("token", token)
	_, err := c.post(ctx, ActAddProduct, v, clearable...)
	return err
}

func (c *Client) UpdateProduct(ctx context.Context, token string, f ProductFields) error {
	v := f.values()
	v.Set("token", token)
	_, err := c.post(ctx, ActUpdateProduct, v, clearable...)
	return err
}
