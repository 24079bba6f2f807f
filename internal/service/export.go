package service

import (
	"strings"
	"time"

	"github.com/event-ops/coffee-orders/internal/domain"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"ID", "Created At", "First Name", "Last Name", "Company", "Role",
	"Company Size", "Email", "Phone", "Drink", "Milk Type", "Status",
	"Pickup Code", "Ready At", "Delivered At", "Deleted At",
}

// RenderOrdersCSV serializes orders to the export format: string fields
// double-quote-wrapped, timestamps in RFC 3339, no embedded-quote
// escaping (known limitation of the format).
func RenderOrdersCSV(orders []domain.Order) string {
	rows := make([]string, 0, len(orders)+1)
	rows = append(rows, strings.Join(csvHeader, ","))

	for i := range orders {
		o := &orders[i]
		fields := []string{
			o.ID,
			o.CreatedAt.Format(time.RFC3339),
			quote(o.FirstName),
			quote(o.LastName),
			quote(o.Company),
			quote(o.Role),
			quote(o.CompanySize),
			quote(o.Email),
			o.Phone,
			quote(o.Drink),
			quote(o.MilkType),
			string(o.Status),
			o.PickupCode,
			formatOptionalTime(o.ReadyAt),
			formatOptionalTime(o.DeliveredAt),
			formatOptionalTime(o.DeletedAt),
		}
		rows = append(rows, strings.Join(fields, ","))
	}
	return strings.Join(rows, "\n")
}

func quote(s string) string {
	return `"` + s + `"`
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
