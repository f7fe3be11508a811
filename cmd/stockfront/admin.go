package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ariefcatur/stockfront/internal/admin"
	"github.com/ariefcatur/stockfront/internal/flow"
	"github.com/ariefcatur/stockfront/internal/remote"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const tsLayout = "2006-01-02 15:04:05"

var loginFlags = []cli.Flag{
	&cli.StringFlag{Name: "user", Aliases: []string{"u"}, EnvVars: []string{"STOCKFRONT_ADMIN_USER"}},
	&cli.StringFlag{Name: "password", Aliases: []string{"p"}, EnvVars: []string{"STOCKFRONT_ADMIN_PASSWORD"}},
}

func flags(extra ...cli.Flag) []cli.Flag { return append(append([]cli.Flag{}, loginFlags...), extra...) }

// execute runs a prepared op and prints what it reported.
func execute(c *cli.Context, e *env, op *flow.Op, err error) error {
	if err == nil {
		err = op.Execute(c.Context)
	}
	report(c, e.app)
	return err
}

// asAdmin logs in, runs fn and logs out again.
func asAdmin(fn func(c *cli.Context, e *env, con *admin.Console) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		e, err := headless(c)
		if err != nil {
			return err
		}
		defer e.Close()

		op, err := e.app.Login(c.String("user"), c.String("password"))
		if err := execute(c, e, op, err); err != nil {
			return errors.Wrap(err, "login")
		}
		defer func() {
			if op, err := e.app.Logout(); err == nil {
				_ = op.Execute(c.Context)
			}
		}()
		return fn(c, e, e.app.Admin)
	}
}

func table(c *cli.Context, header string, rows func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	_ = w.Flush()
}

func adminCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "products",
			Usage: "list the storefront catalog",
			Action: func(c *cli.Context) error {
				e, err := headless(c)
				if err != nil {
					return err
				}
				defer e.Close()
				if err := execute(c, e, e.app.LoadProducts(), nil); err != nil {
					return err
				}
				table(c, "ID\tNAME\tPRICE\tSTOCK", func(w *tabwriter.Writer) {
					for _, p := range e.app.Products() {
						fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", p.ProductID, p.Name, p.Price, p.Stock)
					}
				})
				return nil
			},
		},
		{
			Name:  "orders",
			Usage: "list orders",
			Flags: flags(),
			Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
				table(c, "ORDER\tSTATUS\tTOTAL\tITEMS\tCREATED\tBY", func(w *tabwriter.Writer) {
					for _, o := range con.Orders() {
						fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n", o.OrderID, o.Status, o.Total, len(o.Items),
							o.CreatedAt.Format(tsLayout), o.UpdatedBy())
					}
				})
				return nil
			}),
		},
		decideCommand("approve", true),
		decideCommand("reject", false),
		{
			Name:  "stock-in",
			Usage: "receive stock for a product",
			Flags: flags(
				&cli.StringFlag{Name: "product", Required: true},
				&cli.StringFlag{Name: "qty", Required: true},
				&cli.StringFlag{Name: "reason"},
			),
			Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
				op, err := con.StockIn(admin.StockInForm{ProductID: c.String("product"), Qty: c.String("qty"), Reason: c.String("reason")})
				return execute(c, e, op, err)
			}),
		},
		{
			Name:  "stock-adjust",
			Usage: "set a product's stock to a counted value",
			Flags: flags(
				&cli.StringFlag{Name: "product", Required: true},
				&cli.StringFlag{Name: "qty", Required: true, Usage: "new stock level"},
				&cli.StringFlag{Name: "reason"},
			),
			Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
				op, err := con.StockAdjust(admin.StockAdjustForm{ProductID: c.String("product"), NewQty: c.String("qty"), Reason: c.String("reason")})
				return execute(c, e, op, err)
			}),
		},
		{
			Name:  "stock-logs",
			Usage: "print the raw stock log",
			Flags: flags(),
			Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
				op, err := con.LoadStockLogs()
				if err := execute(c, e, op, err); err != nil {
					return err
				}
				printLogs(c, con)
				return nil
			}),
		},
		{
			Name:  "history",
			Usage: "filtered stock history",
			Flags: flags(
				&cli.StringFlag{Name: "type", Value: "ALL", Usage: "ALL, IN, OUT, ADJUST or CREATE"},
				&cli.StringFlag{Name: "query", Usage: "match product id, order id or actor"},
				&cli.BoolFlag{Name: "oldest", Usage: "oldest first"},
			),
			Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
				op, err := con.Switch(string(admin.ViewHistory))
				if err := execute(c, e, op, err); err != nil {
					return err
				}
				con.History.Type = c.String("type")
				con.History.Query = c.String("query")
				con.History.OldestFirst = c.Bool("oldest")
				printLogs(c, con)
				return nil
			}),
		},
		{
			Name:  "timeline",
			Usage: "decided orders and stock movements, newest first",
			Flags: flags(&cli.StringFlag{Name: "scope", Value: "ALL", Usage: "ALL, ORDER or STOCK"}),
			Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
				con.SetScope(c.String("scope"))
				op, err := con.LoadTimeline()
				if err := execute(c, e, op, err); err != nil {
					return err
				}
				table(c, "TIME\tKIND\tTYPE\tTITLE\tDETAIL", func(w *tabwriter.Writer) {
					for _, ev := range con.Timeline() {
						fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ev.Time.Format(tsLayout), ev.Kind, ev.Type, ev.Title, ev.Meta)
					}
				})
				return nil
			}),
		},
		{
			Name:  "add-product",
			Usage: "create a product",
			Flags: flags(
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "price", Required: true},
				&cli.StringFlag{Name: "stock", Value: "0"},
				&cli.StringFlag{Name: "image"},
				&cli.StringFlag{Name: "description"},
				&cli.BoolFlag{Name: "inactive"},
			),
			Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
				op, err := con.AddProduct(admin.ProductForm{
					ProductID: c.String("id"), Name: c.String("name"), Price: c.String("price"), Stock: c.String("stock"),
					Image: c.String("image"), Description: c.String("description"), Active: !c.Bool("inactive"),
				})
				return execute(c, e, op, err)
			}),
		},
		{
			Name:  "update-product",
			Usage: "change product fields; unset flags keep the current value",
			Flags: flags(
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "name"},
				&cli.StringFlag{Name: "price"},
				&cli.StringFlag{Name: "image"},
				&cli.StringFlag{Name: "description"},
				&cli.BoolFlag{Name: "active"},
			),
			Action: asAdmin(updateProduct),
		},
		{
			Name:      "upload-image",
			Usage:     "upload a product image and print its URL",
			ArgsUsage: "FILE",
			Flags:     flags(),
			Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
				path := c.Args().First()
				if path == "" {
					return errors.New("upload-image needs a file")
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrap(err, "read image")
				}
				op, err := con.UploadImage(remote.Image{Data: data, Filename: path})
				if err := execute(c, e, op, err); err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, con.LastImageURL())
				return nil
			}),
		},
	}
}

func updateProduct(c *cli.Context, e *env, con *admin.Console) error {
	if err := execute(c, e, con.LoadProducts(), nil); err != nil {
		return err
	}
	id := c.String("id")
	var form admin.ProductForm
	found := false
	for _, p := range con.Products() {
		if p.ProductID == id {
			form = admin.ProductForm{ProductID: p.ProductID, Name: p.Name, Price: strconv.Itoa(p.Price),
				Image: p.Image, Description: p.Description, Active: p.Active}
			found = true
			break
		}
	}
	if !found {
		return errors.Errorf("product %s not found", id)
	}
	for name, dst := range map[string]*string{"name": &form.Name, "price": &form.Price, "image": &form.Image, "description": &form.Description} {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	if c.IsSet("active") {
		form.Active = c.Bool("active")
	}
	op, err := con.UpdateProduct(form)
	return execute(c, e, op, err)
}

func decideCommand(name string, approve bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     name + " a pending order",
		ArgsUsage: "ORDER_ID",
		Flags:     flags(&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation question"}),
		Action: asAdmin(func(c *cli.Context, e *env, con *admin.Console) error {
			id := c.Args().First()
			request := con.RequestReject
			if approve {
				request = con.RequestApprove
			}
			if err := request(id); err != nil {
				report(c, e.app)
				return err
			}
			if !c.Bool("yes") {
				q, _ := con.PendingPrompt()
				if !confirm(c, q) {
					con.CancelPending()
					return errors.New("cancelled")
				}
			}
			op, err := con.ConfirmPending()
			return execute(c, e, op, err)
		}),
	}
}

func confirm(c *cli.Context, question string) bool {
	fmt.Fprintf(c.App.Writer, "%s [y/N] ", question)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func printLogs(c *cli.Context, con *admin.Console) {
	table(c, "TIME\tTYPE\tPRODUCT\tQTY\tBEFORE\tAFTER\tBY\tORDER\tREASON", func(w *tabwriter.Writer) {
		for _, l := range con.HistoryEntries() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\t%s\n", l.Timestamp.Format(tsLayout), l.Type, l.ProductID,
				l.Qty, l.Before, l.After, l.By, l.OrderID, l.Reason)
		}
	})
}
