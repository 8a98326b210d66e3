package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"tlapaleria/internal/model"
	"tlapaleria/internal/service"
)

type CatalogHandler struct {
	service service.CatalogService
	out     io.Writer
	in      io.Reader
}

func NewCatalogHandler(s service.CatalogService, out io.Writer, in io.Reader) *CatalogHandler {
	return &CatalogHandler{service: s, out: out, in: in}
}

func (h *CatalogHandler) List(c *cli.Context) error {
	products, err := h.service.ListProducts(c.Int("limit"))
	if err != nil {
		return exitErr(err)
	}
	if len(products) == 0 {
		fmt.Fprintln(h.out, "No hay productos en el inventario")
		return nil
	}
	fmt.Fprintf(h.out, "\nINVENTARIO DE PRODUCTOS (mostrando %d productos)\n\n", len(products))
	renderProductTable(h.out, products)
	return nil
}

func (h *CatalogHandler) Search(c *cli.Context) error {
	term := c.Args().First()
	if term == "" {
		return cli.Exit("uso: buscar TERMINO", 2)
	}
	products, err := h.service.SearchProducts(term)
	if err != nil {
		return exitErr(err)
	}
	if len(products) == 0 {
		fmt.Fprintf(h.out, "No se encontraron productos con '%s'\n", term)
		return nil
	}
	fmt.Fprintf(h.out, "\nRESULTADOS DE BUSQUEDA: '%s' (%d encontrados)\n\n", term, len(products))
	renderProductDetails(h.out, products)
	return nil
}

func (h *CatalogHandler) Add(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return cli.Exit("uso: agregar NOMBRE PRECIO [opciones]", 2)
	}
	price, err := strconv.ParseFloat(c.Args().Get(1), 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("precio invalido: %s", c.Args().Get(1)), 2)
	}

	product := &model.Product{
		Name:        c.Args().Get(0),
		Price:       price,
		Stock:       c.Int("stock"),
		MinStock:    c.Int("stock-minimo"),
		Barcode:     optFlag(c, "codigo"),
		Description: optFlag(c, "descripcion"),
		Category:    optFlag(c, "categoria"),
		Location:    optFlag(c, "ubicacion"),
		Supplier:    optFlag(c, "proveedor"),
	}

	if err := h.service.AddProduct(product); err != nil {
		if errors.Is(err, service.ErrDuplicateBarcode) {
			return cli.Exit("Error: el codigo de barras ya existe en el sistema", 1)
		}
		return exitErr(err)
	}

	fmt.Fprintf(h.out, "Producto agregado exitosamente con ID: %d\n", product.ID)
	fmt.Fprintf(h.out, "   Nombre: %s\n", product.Name)
	fmt.Fprintf(h.out, "   Precio: $%.2f\n", product.Price)
	fmt.Fprintf(h.out, "   Stock inicial: %d\n", product.Stock)
	return nil
}

func (h *CatalogHandler) SetStock(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return cli.Exit("uso: actualizar-stock ID STOCK", 2)
	}
	id, err := parseID(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	newStock, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return cli.Exit(fmt.Sprintf("stock invalido: %s", c.Args().Get(1)), 2)
	}

	product, err := h.service.UpdateStock(id, newStock)
	if err != nil {
		return exitErr(err)
	}

	fmt.Fprintf(h.out, "Stock actualizado para '%s'\n", product.Name)
	fmt.Fprintf(h.out, "   Nuevo stock: %d\n", newStock)
	return nil
}

func (h *CatalogHandler) LowStock(c *cli.Context) error {
	products, err := h.service.ListLowStock()
	if err != nil {
		return exitErr(err)
	}
	if len(products) == 0 {
		fmt.Fprintln(h.out, "Todos los productos tienen stock suficiente")
		return nil
	}
	fmt.Fprintf(h.out, "\nALERTA: PRODUCTOS CON STOCK BAJO (%d productos)\n\n", len(products))
	renderLowStockTable(h.out, products)
	return nil
}

func (h *CatalogHandler) Delete(c *cli.Context) error {
	id, err := parseID(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	product, deleted, err := h.service.DeleteProduct(id, h.confirmDeletion(c.Bool("si")))
	if err != nil {
		return exitErr(err)
	}
	if !deleted {
		fmt.Fprintln(h.out, "Operacion cancelada")
		return nil
	}
	fmt.Fprintf(h.out, "Producto '%s' eliminado exitosamente\n", product.Name)
	return nil
}

// confirmDeletion builds the guard for deleting a product with recorded
// sales: --si answers yes up front, otherwise the user is prompted.
func (h *CatalogHandler) confirmDeletion(assumeYes bool) service.ConfirmFunc {
	return func(p *model.Product, salesCount int64) bool {
		fmt.Fprintf(h.out, "Advertencia: este producto tiene %d ventas registradas\n", salesCount)
		if assumeYes {
			return true
		}
		fmt.Fprint(h.out, "Desea continuar con la eliminacion? (s/n): ")
		answer, err := bufio.NewReader(h.in).ReadString('\n')
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(answer), "s")
	}
}

func optFlag(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	if v == "" {
		return nil
	}
	return &v
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id de producto invalido: %q", arg)
	}
	return id, nil
}

// exitErr translates service sentinels into user-facing exit messages.
func exitErr(err error) error {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return cli.Exit(fmt.Sprintf("No se encontro el producto (%v)", err), 1)
	case errors.Is(err, service.ErrInsufficientStock):
		return cli.Exit(fmt.Sprintf("Stock insuficiente (%v)", err), 1)
	case errors.Is(err, service.ErrDuplicateBarcode):
		return cli.Exit(fmt.Sprintf("Codigo de barras duplicado (%v)", err), 1)
	default:
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
}
