package admin

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/locale"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/ariefcatur/stockfront/internal/session"
)

// LoadProducts fetches the catalog, inactive products included.
func (c *Console) LoadProducts() *flow.Op { return c.productsOp() }

func (c *Console) productsOp() *flow.Op {
	var list []orders.Product
	c.ui.ShowBusy(locale.LoadingProductsAdmin)
	return &flow.Op{
		Name: remote.ActProducts,
		Run: func(ctx context.Context) error {
			var err error
			list, err = c.api.Products(ctx)
			return err
		},
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(remote.ActProducts, err, locale.LoadProductsError)
				return
			}
			c.products = list
		},
	}
}

func (c *Console) AddProduct(f ProductForm) (*flow.Op, error) {
	if err := c.guard(session.AddProduct); err != nil {
		return nil, err
	}
	fields, err := f.fields(true)
	if err != nil {
		return nil, c.invalid(err)
	}
	return c.saveProduct(remote.ActAddProduct, c.api.AddProduct, fields, true), nil
}

func (c *Console) UpdateProduct(f ProductForm) (*flow.Op, error) {
	if err := c.guard(session.UpdateProduct); err != nil {
		return nil, err
	}
	fields, err := f.fields(false)
	if err != nil {
		return nil, c.invalid(err)
	}
	return c.saveProduct(remote.ActUpdateProduct, c.api.UpdateProduct, fields, false), nil
}

func (c *Console) saveProduct(act string, call func(context.Context, string, remote.ProductFields) error, fields remote.ProductFields, created bool) *flow.Op {
	token := c.sess.Token()
	c.ui.ShowBusy(locale.SavingProduct)
	return &flow.Op{
		Name: act,
		Run:  func(ctx context.Context) error { return call(ctx, token, fields) },
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(act, err, locale.ProductSaveFailed)
				return
			}
			c.ui.Success(locale.ProductSaved)
			c.emit(orders.EventProductSaved, fields.ProductID,
				orders.ProductSavedPayload{ProductID: fields.ProductID, Name: fields.Name, Created: created})
		},
		Next: c.productsOp,
	}
}

func (f ProductForm) fields(withStock bool) (remote.ProductFields, error) {
	id, err := required("productId", f.ProductID)
	if err != nil {
		return remote.ProductFields{}, err
	}
	name, err := required("name", f.Name)
	if err != nil {
		return remote.ProductFields{}, err
	}
	price, err := wholeNumber("price", f.Price, 0)
	if err != nil {
		return remote.ProductFields{}, err
	}
	active := f.Active
	out := remote.ProductFields{
		ProductID:   id,
		Name:        name,
		Price:       &price,
		Active:      &active,
		Image:       strings.TrimSpace(f.Image),
		Description: strings.TrimSpace(f.Description),
	}
	if withStock {
		stock := 0
		if strings.TrimSpace(f.Stock) != "" {
			if stock, err = wholeNumber("stock", f.Stock, 0); err != nil {
				return remote.ProductFields{}, err
			}
		}
		out.Stock = &stock
	}
	return out, nil
}

// UploadImage sends the file and keeps the returned URL for the product form.
func (c *Console) UploadImage(img remote.Image) (*flow.Op, error) {
	if err := c.guard(session.UploadImage); err != nil {
		return nil, err
	}
	if len(img.Data) == 0 {
		return nil, c.invalid(&ValidationError{Field: "image", Key: locale.FieldRequired})
	}
	if _, err := required("filename", img.Filename); err != nil {
		return nil, c.invalid(err)
	}
	img.Filename = filepath.Base(img.Filename)
	if img.MimeType == "" {
		img.MimeType = http.DetectContentType(img.Data)
	}
	token := c.sess.Token()
	var url string
	c.ui.ShowBusy(locale.UploadingImage)
	return &flow.Op{
		Name: remote.ActUploadImage,
		Run: func(ctx context.Context) error {
			var err error
			url, err = c.api.UploadProductImage(ctx, token, img)
			return err
		},
		Done: func(err error) {
			defer c.ui.HideBusy()
			if err != nil {
				c.ui.Fail(remote.ActUploadImage, err, locale.ImageUploadFailed)
				return
			}
			c.imageURL = url
			c.ui.Success(locale.ImageUploaded)
		},
	}, nil
}
