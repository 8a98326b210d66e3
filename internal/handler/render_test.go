package handler

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"tlapaleria/internal/model"
	"tlapaleria/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestRenderProductTable(t *testing.T) {
	var buf bytes.Buffer
	renderProductTable(&buf, []model.Product{
		{ID: 1, Name: "Martillo", Barcode: strPtr("7501234567890"), Price: 250.50, Stock: 20, MinStock: 10},
		{ID: 2, Name: "Pintura blanca 1L", Price: 180, Stock: 8, MinStock: 10},
	})

	out := buf.String()
	assert.Contains(t, out, "Martillo")
	assert.Contains(t, out, "7501234567890")
	assert.Contains(t, out, "$250.50")
	assert.Contains(t, out, "N/A", "missing barcode renders as N/A")

	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	for _, line := range lines {
		if bytes.Contains(line, []byte("Pintura")) {
			assert.True(t, bytes.HasPrefix(line, []byte("[!]")), "low-stock row carries the marker")
		}
		if bytes.Contains(line, []byte("Martillo")) {
			assert.False(t, bytes.HasPrefix(line, []byte("[!]")))
		}
	}
}

func TestRenderStats(t *testing.T) {
	var buf bytes.Buffer
	renderStats(&buf, &repository.SummaryStats{
		TotalProducts:  3,
		InventoryValue: 12345.678,
		LowStockCount:  1,
		TotalSales:     2,
		SalesRevenue:   681.0,
		BestSeller:     &repository.BestSeller{ProductID: 1, Name: "Martillo", UnitsSold: 2},
	})

	out := buf.String()
	assert.Contains(t, out, "Total de productos: 3")
	assert.Contains(t, out, "$12345.68")
	assert.Contains(t, out, "Producto mas vendido: Martillo (2 unidades)")
}

func TestRenderStatsWithoutSales(t *testing.T) {
	var buf bytes.Buffer
	renderStats(&buf, &repository.SummaryStats{})

	assert.NotContains(t, buf.String(), "mas vendido")
}

func TestRenderReceipt(t *testing.T) {
	var buf bytes.Buffer
	renderReceipt(&buf, &model.Sale{
		Quantity:  5,
		UnitPrice: 250.50,
		Total:     1252.50,
		Folio:     strPtr("abc-123"),
		Product:   &model.Product{Name: "Martillo", Stock: 15},
	}, "Sistema")

	out := buf.String()
	assert.Contains(t, out, "Producto: Martillo")
	assert.Contains(t, out, "Cantidad: 5")
	assert.Contains(t, out, "Total: $1252.50")
	assert.Contains(t, out, "Stock restante: 15")
	assert.Contains(t, out, "Folio: abc-123")
	assert.Contains(t, out, "Atendio: Sistema")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))

	// A multibyte rune at the boundary must not be split.
	got := truncate("Ferretería Nacional", 10)
	assert.Equal(t, "Ferretería", got)
	assert.True(t, utf8.ValidString(got))
}
