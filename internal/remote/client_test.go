package remote_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ariefcatur/stockfront/internal/devremote"
	"github.com/ariefcatur/stockfront/internal/httpx"
	"github.com/ariefcatur/stockfront/internal/inventory"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func devClient(t *testing.T) *remote.Client {
	t.Helper()
	l := inventory.NewLedger()
	require.NoError(t, devremote.Seed(l))
	srv := httptest.NewServer(devremote.New(l, devremote.DefaultUsers(), quiet()).Handler(httpx.Options{}))
	t.Cleanup(srv.Close)
	return remote.New(srv.URL, 5*time.Second, quiet())
}

func rawClient(t *testing.T, h http.HandlerFunc) *remote.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return remote.New(srv.URL, 5*time.Second, quiet())
}

func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	c := devClient(t)

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)

	created, err := c.CreateOrder(ctx, remote.CreateOrderRequest{
		Items:     []orders.OrderItem{{ProductID: "P003", Name: "ขนมปังสังขยา", Price: 35, Qty: 2}},
		Total:     70,
		ClientRef: "ref-42",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.OrderID)
	assert.Equal(t, 70, created.Total)

	login, err := c.AdminLogin(ctx, "owner", "owner123")
	require.NoError(t, err)
	assert.Equal(t, "owner", login.Role)

	list, err := c.Orders(ctx, login.Token)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, orders.StatusPending, list[0].Status)

	require.NoError(t, c.ApproveOrder(ctx, login.Token, created.OrderID))

	logs, err := c.StockLogs(ctx, login.Token)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, orders.StockOut, logs[0].Type)
	assert.Equal(t, created.OrderID, logs[0].OrderID)
	assert.Equal(t, 1, logs[0].After)

	err = c.RejectOrder(ctx, login.Token, created.OrderID)
	assert.True(t, remote.IsDomain(err))
}

func TestDomainFailureCarriesMessage(t *testing.T) {
	c := devClient(t)
	_, err := c.AdminLogin(context.Background(), "owner", "wrong")

	require.Error(t, err)
	assert.True(t, remote.IsDomain(err))
	assert.Equal(t, "invalid username or password", remote.UserMessage(err, "fallback"))
}

func TestStaffCannotTouchStock(t *testing.T) {
	ctx := context.Background()
	c := devClient(t)
	login, err := c.AdminLogin(ctx, "staff", "staff123")
	require.NoError(t, err)

	err = c.StockIn(ctx, login.Token, "P001", 3, "")
	assert.Equal(t, "forbidden: stock-in", remote.UserMessage(err, ""))
}

func TestProductSaveAndUpload(t *testing.T) {
	ctx := context.Background()
	c := devClient(t)
	login, err := c.AdminLogin(ctx, "owner", "owner123")
	require.NoError(t, err)

	price, stock := 25, 7
	require.NoError(t, c.AddProduct(ctx, login.Token, remote.ProductFields{ProductID: "P010", Name: "ชาเขียว", Price: &price, Stock: &stock}))

	imgURL, err := c.UploadProductImage(ctx, login.Token, remote.Image{Data: []byte("GIF89a"), Filename: "tea.gif", MimeType: "image/gif"})
	require.NoError(t, err)
	assert.Contains(t, imgURL, "/images/")

	require.NoError(t, c.UpdateProduct(ctx, login.Token, remote.ProductFields{ProductID: "P010", Name: "ชาเขียว", Image: imgURL}))
	products, err := c.Products(ctx)
	require.NoError(t, err)
	last := products[len(products)-1]
	assert.Equal(t, imgURL, last.Image)
	assert.Equal(t, 7, last.Stock)
	assert.Equal(t, 25, last.Price)
}

func TestUpdateClearsDescription(t *testing.T) {
	ctx := context.Background()
	c := devClient(t)
	login, err := c.AdminLogin(ctx, "owner", "owner123")
	require.NoError(t, err)

	require.NoError(t, c.UpdateProduct(ctx, login.Token, remote.ProductFields{ProductID: "P001", Name: "ชาไทย", Description: "hello"}))
	require.NoError(t, c.UpdateProduct(ctx, login.Token, remote.ProductFields{ProductID: "P001", Name: "ชาไทย", Description: ""}))

	products, err := c.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, "P001", products[0].ProductID)
	assert.Empty(t, products[0].Description)
}

func TestClearableFieldsAreSentEmpty(t *testing.T) {
	var form url.Values
	c := rawClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	require.NoError(t, c.UpdateProduct(context.Background(), "tok", remote.ProductFields{ProductID: "P1", Name: "x"}))

	assert.True(t, form.Has("image"))
	assert.True(t, form.Has("description"))
	assert.False(t, form.Has("price"))
}

func TestNetworkFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"non-2xx": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"success":true}`, http.StatusBadGateway)
		},
		"html": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>moved</html>"))
		},
		"data not a list": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":{"oops":1}}`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rawClient(t, h).Products(context.Background())
			require.Error(t, err)
			assert.True(t, remote.IsNetwork(err))
			assert.Equal(t, "fallback", remote.UserMessage(err, "fallback"))
		})
	}
}

func TestNullListIsEmpty(t *testing.T) {
	c := rawClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	})
	list, err := c.Orders(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmptyFieldsAreNotSent(t *testing.T) {
	var form string
	c := rawClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm.Encode()
		_, _ = w.Write([]byte(`{"success":false,"message":"nope"}`))
	})
	err := c.StockIn(context.Background(), "tok", "P1", 2, "")

	assert.Equal(t, "nope", remote.UserMessage(err, ""))
	assert.False(t, strings.Contains(form, "reason"), form)
	assert.Contains(t, form, "action=stockIn")
}

func TestMissingMessageFallsBack(t *testing.T) {
	c := rawClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	})
	err := c.AdminLogout(context.Background(), "tok")
	assert.Equal(t, "API error", remote.UserMessage(err, ""))
}
