package handler

import (
	"fmt"
	"io"
	"strings"

	"tlapaleria/internal/model"
	"tlapaleria/internal/repository"
)

// Rendering mirrors the column sets of the original reports: plain fixed-width
// text on stdout, "N/A" for absent optional fields.

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

// truncate counts runes, not bytes, so accented names never cut mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func renderProductTable(w io.Writer, products []model.Product) {
	line := strings.Repeat("-", 120)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%-3s %-5s %-30s %-15s %-10s %-8s %-6s %-15s %-15s\n",
		"", "ID", "Nombre", "Codigo", "Precio", "Stock", "Min", "Categoria", "Ubicacion")
	fmt.Fprintln(w, line)
	for _, p := range products {
		alert := "   "
		if p.LowStock() {
			alert = "[!]"
		}
		fmt.Fprintf(w, "%-3s %-5d %-30s %-15s $%-9.2f %-8d %-6d %-15s %-15s\n",
			alert, p.ID, truncate(p.Name, 28), orNA(p.Barcode), p.Price,
			p.Stock, p.MinStock, orNA(p.Category), orNA(p.Location))
	}
	fmt.Fprintln(w, line)
}

func renderProductDetails(w io.Writer, products []model.Product) {
	line := strings.Repeat("-", 80)
	for _, p := range products {
		stockNote := "Stock OK"
		if p.LowStock() {
			stockNote = "STOCK BAJO"
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "ID: %d\n", p.ID)
		fmt.Fprintf(w, "Nombre: %s\n", p.Name)
		fmt.Fprintf(w, "Descripcion: %s\n", orNA(p.Description))
		fmt.Fprintf(w, "Codigo de barras: %s\n", orNA(p.Barcode))
		fmt.Fprintf(w, "Precio: $%.2f\n", p.Price)
		fmt.Fprintf(w, "Stock actual: %d | Stock minimo: %d | %s\n", p.Stock, p.MinStock, stockNote)
		fmt.Fprintf(w, "Categoria: %s\n", orNA(p.Category))
		fmt.Fprintf(w, "Ubicacion: %s\n", orNA(p.Location))
		fmt.Fprintf(w, "Proveedor: %s\n", orNA(p.Supplier))
	}
	fmt.Fprintln(w, line)
}

func renderLowStockTable(w io.Writer, products []model.Product) {
	line := strings.Repeat("-", 100)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%-5s %-30s %-15s %-8s %-8s %-15s %-15s\n",
		"ID", "Nombre", "Codigo", "Stock", "Minimo", "Categoria", "Proveedor")
	fmt.Fprintln(w, line)
	for _, p := range products {
		fmt.Fprintf(w, "%-5d %-30s %-15s %-8d %-8d %-15s %-15s\n",
			p.ID, truncate(p.Name, 28), orNA(p.Barcode), p.Stock, p.MinStock,
			orNA(p.Category), orNA(p.Supplier))
	}
	fmt.Fprintln(w, line)
}

func renderStats(w io.Writer, stats *repository.SummaryStats) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "ESTADISTICAS DEL SISTEMA")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total de productos: %d\n", stats.TotalProducts)
	fmt.Fprintf(w, "Valor total del inventario: $%.2f\n", stats.InventoryValue)
	fmt.Fprintf(w, "Productos con stock bajo: %d\n", stats.LowStockCount)
	fmt.Fprintf(w, "Total de ventas realizadas: %d\n", stats.TotalSales)
	fmt.Fprintf(w, "Monto total de ventas: $%.2f\n", stats.SalesRevenue)
	if stats.BestSeller != nil {
		fmt.Fprintf(w, "Producto mas vendido: %s (%d unidades)\n",
			stats.BestSeller.Name, stats.BestSeller.UnitsSold)
	}
	fmt.Fprintln(w, line)
}

func renderReceipt(w io.Writer, sale *model.Sale, sellerName string) {
	fmt.Fprintln(w, "Venta registrada exitosamente")
	if sale.Product != nil {
		fmt.Fprintf(w, "   Producto: %s\n", sale.Product.Name)
	}
	fmt.Fprintf(w, "   Cantidad: %d\n", sale.Quantity)
	fmt.Fprintf(w, "   Precio unitario: $%.2f\n", sale.UnitPrice)
	fmt.Fprintf(w, "   Total: $%.2f\n", sale.Total)
	if sale.Product != nil {
		fmt.Fprintf(w, "   Stock restante: %d\n", sale.Product.Stock)
	}
	if sellerName != "" {
		fmt.Fprintf(w, "   Atendio: %s\n", sellerName)
	}
	if sale.Folio != nil {
		fmt.Fprintf(w, "   Folio: %s\n", *sale.Folio)
	}
}
