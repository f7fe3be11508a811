package devremote

import (
	"github.com/ariefcatur/stockfront/internal/inventory"
	"github.com/ariefcatur/stockfront/internal/orders"
	"github.com/ariefcatur/stockfront/internal/session"
)

// DefaultUsers are the accounts a fresh dev endpoint accepts.
func DefaultUsers() []User {
	return []User{
		{Username: "owner", Password: "owner123", Role: session.RoleOwner},
		{Username: "staff", Password: "staff123", Role: session.RoleStaff},
	}
}

// Seed fills l with a small demo catalog.
func Seed(l *inventory.Ledger) error {
	for _, p := range []orders.Product{
		{ProductID: "P001", Name: "ชาไทย", Price: 45, Stock: 20, Active: true, Description: "Thai milk tea"},
		{ProductID: "P002", Name: "กาแฟเย็น", Price: 55, Stock: 12, Active: true, Description: "Iced coffee"},
		{ProductID: "P003", Name: "ขนมปังสังขยา", Price: 35, Stock: 3, Active: true},
		{ProductID: "P004", Name: "น้ำเปล่า", Price: 10, Stock: 0, Active: true},
		{ProductID: "P005", Name: "เค้กส้ม", Price: 80, Stock: 5, Active: false},
	} {
		if err := l.Create(p, "seed"); err != nil {
			return err
		}
	}
	return nil
}
