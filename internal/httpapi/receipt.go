package httpapi

import (
	"bytes"
	"fmt"

	"gearmart-be/internal/order"
)

// ReceiptRenderer turns a fulfilled order into a downloadable document.
// The production deployment plugs a PDF renderer in here.
type ReceiptRenderer interface {
	Render(o *order.Order) (body []byte, contentType string, err error)
}

// TextReceipt is the plain-text ReceiptRenderer used by default.
type TextReceipt struct{}

func (TextReceipt) Render(o *order.Order) ([]byte, string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Order Receipt #%d\n", o.ID)
	fmt.Fprintf(&buf, "Placed: %s\n", o.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&buf, "Status: %s / shipping %s / payment %s\n\n", o.Status, o.ShippingStatus, o.PaymentStatus)
	fmt.Fprintf(&buf, "Ship to: %s, %s %s (%s)\n\n", o.ShippingAddress, o.City, o.PostalCode, o.PhoneNumber)

	for _, line := range o.Lines {
		fmt.Fprintf(&buf, "%-30s x%-4d @ %10.2f = %10.2f\n",
			line.ProductName, line.Quantity, line.UnitPriceAtPurchase,
			float64(line.Quantity)*line.UnitPriceAtPurchase)
	}
	fmt.Fprintf(&buf, "\nTotal: %.2f\n", o.TotalPrice)
	fmt.Fprintf(&buf, "Payment method: %s\n", o.PaymentMethod)

	return buf.Bytes(), "text/plain; charset=utf-8", nil
}
