package handler

import (
	"io"

	"github.com/urfave/cli/v2"

	"tlapaleria/internal/service"
)

type StatsHandler struct {
	service service.StatsService
	out     io.Writer
}

func NewStatsHandler(s service.StatsService, out io.Writer) *StatsHandler {
	return &StatsHandler{service: s, out: out}
}

func (h *StatsHandler) Stats(c *cli.Context) error {
	stats, err := h.service.Summary()
	if err != nil {
		return exitErr(err)
	}
	renderStats(h.out, stats)
	return nil
}
