package services

import (
	"testing"
	"time"

	"github.com/mannancrackers/shop/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoicePDF(t *testing.T) {
	svc := NewInvoiceService()

	order := &models.Order{
		ID:          "0a1b2c3d-aaaa-bbbb-cccc-123456789012",
		FullName:    "Asha Verma",
		Email:       "asha@example.com",
		Phone:       "9876543210",
		Address:     "12 Market Road, Sivakasi",
		TotalAmount: decimal.NewFromInt(3500),
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Date(2025, time.October, 18, 10, 30, 0, 0, time.UTC),
		OrderItems: []models.OrderItem{
			{ProductName: "Gold Shower", Quantity: 1, Price: decimal.NewFromInt(2000)},
			{ProductName: "Silver Fountain", Quantity: 3, Price: decimal.NewFromInt(500)},
		},
	}

	pdfBytes, err := svc.BuildInvoicePDF(order)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)

	// A well formed document starts with the PDF magic and carries real
	// content beyond the bare page skeleton.
	assert.Equal(t, "%PDF-", string(pdfBytes[:5]))
	assert.Greater(t, len(pdfBytes), 1000)
}

func TestBuildInvoicePDFRequiresOrder(t *testing.T) {
	svc := NewInvoiceService()

	_, err := svc.BuildInvoicePDF(nil)
	require.Error(t, err)
}

func TestInvoiceFilename(t *testing.T) {
	svc := NewInvoiceService()

	order := &models.Order{ID: "0a1b2c3d-aaaa-bbbb-cccc-123456789012"}
	assert.Equal(t, "invoice-0a1b2c3d-aaaa-bbbb-cccc-123456789012.pdf", svc.Filename(order))
}
