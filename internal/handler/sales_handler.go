package handler

import (
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"

	"tlapaleria/internal/repository"
	"tlapaleria/internal/service"
)

type SalesHandler struct {
	service  service.SalesService
	userRepo repository.UserRepository
	out      io.Writer
}

func NewSalesHandler(s service.SalesService, userRepo repository.UserRepository, out io.Writer) *SalesHandler {
	return &SalesHandler{service: s, userRepo: userRepo, out: out}
}

func (h *SalesHandler) Sell(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return cli.Exit("uso: venta PRODUCTO_ID CANTIDAD [--usuario ID]", 2)
	}
	productID, err := parseID(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	quantity, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return cli.Exit(fmt.Sprintf("cantidad invalida: %s", c.Args().Get(1)), 2)
	}

	sale, err := h.service.RegisterSale(productID, quantity, c.Int64("usuario"))
	if err != nil {
		return exitErr(err)
	}

	// Attribution is best effort: a missing user row never fails the receipt.
	var sellerName string
	if user, err := h.userRepo.FindByID(sale.UserID); err == nil {
		sellerName = user.Name
	}

	renderReceipt(h.out, sale, sellerName)
	return nil
}
