package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"tlapaleria/internal/config"
	"tlapaleria/internal/handler"
	"tlapaleria/internal/repository"
	"tlapaleria/internal/service"
	"tlapaleria/pkg/database"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	// 1. Load env + config
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, relying on system env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// 2. Setup database
	db, err := database.Connect(cfg.DBPath, log)
	if err != nil {
		log.WithError(err).Fatal("connect database")
	}
	defer database.Close(db, log)

	// 3. Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo, saleRepo, db)
	salesService := service.NewSalesService(productRepo, saleRepo, db)
	statsService := service.NewStatsService(saleRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService, os.Stdout, os.Stdin)
	salesHandler := handler.NewSalesHandler(salesService, userRepo, os.Stdout)
	statsHandler := handler.NewStatsHandler(statsService, os.Stdout)

	// 4. Command surface
	app := &cli.App{
		Name:  "tlapaleria",
		Usage: "Sistema de gestion para tlapaleria",
		Commands: []*cli.Command{
			{
				Name:      "listar",
				Usage:     "Lista todos los productos",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 50, Usage: "Numero maximo de productos a mostrar"},
				},
				Action: catalogHandler.List,
			},
			{
				Name:      "buscar",
				Usage:     "Busca productos por nombre, codigo o descripcion",
				ArgsUsage: "TERMINO",
				Action:    catalogHandler.Search,
			},
			{
				Name:      "agregar",
				Usage:     "Agrega un nuevo producto",
				ArgsUsage: "NOMBRE PRECIO",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "stock", Value: 0, Usage: "Stock inicial"},
					&cli.StringFlag{Name: "codigo", Usage: "Codigo de barras"},
					&cli.StringFlag{Name: "descripcion", Usage: "Descripcion del producto"},
					&cli.IntFlag{Name: "stock-minimo", Value: 10, Usage: "Stock minimo"},
					&cli.StringFlag{Name: "categoria", Usage: "Categoria del producto"},
					&cli.StringFlag{Name: "ubicacion", Usage: "Ubicacion en la tienda"},
					&cli.StringFlag{Name: "proveedor", Usage: "Nombre del proveedor"},
				},
				Action: catalogHandler.Add,
			},
			{
				Name:      "actualizar-stock",
				Usage:     "Actualiza el stock de un producto",
				ArgsUsage: "ID STOCK",
				Action:    catalogHandler.SetStock,
			},
			{
				Name:   "stock-bajo",
				Usage:  "Muestra productos con stock bajo",
				Action: catalogHandler.LowStock,
			},
			{
				Name:      "venta",
				Usage:     "Registra una venta",
				ArgsUsage: "PRODUCTO_ID CANTIDAD",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "usuario", Value: 1, Usage: "ID del usuario"},
				},
				Action: salesHandler.Sell,
			},
			{
				Name:   "estadisticas",
				Usage:  "Muestra estadisticas del sistema",
				Action: statsHandler.Stats,
			},
			{
				Name:      "eliminar",
				Usage:     "Elimina un producto",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "si", Usage: "Confirma la eliminacion sin preguntar"},
				},
				Action: catalogHandler.Delete,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
