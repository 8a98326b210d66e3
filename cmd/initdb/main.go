package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"tlapaleria/internal/config"
	"tlapaleria/internal/model"
	"tlapaleria/internal/repository"
	"tlapaleria/pkg/database"
)

// exampleProducts mirrors the catalog the store was first loaded with.
var exampleProducts = []model.Product{
	{Name: "Martillo de carpintero", Description: ptr("Martillo profesional con mango de madera"), Barcode: ptr("7501234567890"), Price: 250.50, Stock: 20, MinStock: 10, Category: ptr("Herramientas"), Location: ptr("Pasillo A1"), Supplier: ptr("Ferreteria Nacional")},
	{Name: "Pintura blanca 1L", Description: ptr("Pintura vinilica blanca para interiores"), Barcode: ptr("7501234567891"), Price: 180.00, Stock: 8, MinStock: 10, Category: ptr("Pinturas"), Location: ptr("Pasillo B2"), Supplier: ptr("Pinturas del Norte")},
	{Name: "Clavos 3 pulgadas (caja)", Description: ptr("Caja con 100 clavos de acero de 3 pulgadas"), Barcode: ptr("7501234567892"), Price: 45.50, Stock: 30, MinStock: 10, Category: ptr("Ferreteria"), Location: ptr("Pasillo A3"), Supplier: ptr("Ferreteria Nacional")},
	{Name: "Desarmador Phillips", Description: ptr("Desarmador de cruz profesional"), Barcode: ptr("7501234567893"), Price: 85.00, Stock: 15, MinStock: 10, Category: ptr("Herramientas"), Location: ptr("Pasillo A1"), Supplier: ptr("Herramientas Mexico")},
	{Name: "Brocha 3 pulgadas", Description: ptr("Brocha para pintura de alta calidad"), Barcode: ptr("7501234567894"), Price: 65.00, Stock: 12, MinStock: 10, Category: ptr("Pinturas"), Location: ptr("Pasillo B2"), Supplier: ptr("Pinturas del Norte")},
	{Name: "Tornillos para madera (caja)", Description: ptr("Caja con 50 tornillos para madera"), Barcode: ptr("7501234567895"), Price: 38.00, Stock: 25, MinStock: 15, Category: ptr("Ferreteria"), Location: ptr("Pasillo A3"), Supplier: ptr("Ferreteria Nacional")},
	{Name: "Cinta metrica 5m", Description: ptr("Cinta metrica retractil de 5 metros"), Barcode: ptr("7501234567896"), Price: 95.00, Stock: 10, MinStock: 10, Category: ptr("Herramientas"), Location: ptr("Pasillo A1"), Supplier: ptr("Herramientas Mexico")},
	{Name: "Thinner 1L", Description: ptr("Solvente para diluir pinturas"), Barcode: ptr("7501234567897"), Price: 75.00, Stock: 18, MinStock: 10, Category: ptr("Pinturas"), Location: ptr("Pasillo B2"), Supplier: ptr("Pinturas del Norte")},
	{Name: "Lija grano 100 (paquete)", Description: ptr("Paquete de 5 lijas de grano 100"), Barcode: ptr("7501234567898"), Price: 28.00, Stock: 5, MinStock: 10, Category: ptr("Ferreteria"), Location: ptr("Pasillo A4"), Supplier: ptr("Ferreteria Nacional")},
	{Name: "Sierra para madera", Description: ptr("Sierra manual para corte de madera"), Barcode: ptr("7501234567899"), Price: 145.00, Stock: 8, MinStock: 10, Category: ptr("Herramientas"), Location: ptr("Pasillo A1"), Supplier: ptr("Herramientas Mexico")},
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	app := &cli.App{
		Name:  "initdb",
		Usage: "Inicializa la base de datos de la tlapaleria",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "ejemplos", Usage: "Agrega productos de ejemplo sin preguntar"},
			&cli.BoolFlag{Name: "no-ejemplos", Usage: "Omite los productos de ejemplo"},
		},
		Action: func(c *cli.Context) error {
			return initialize(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func initialize(c *cli.Context, log *logrus.Logger) error {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, relying on system env")
	}
	cfg, err := config.Load()
	if err != nil {
		return cli.Exit(fmt.Sprintf("configuracion invalida: %v", err), 1)
	}

	fmt.Println("Inicializando base de datos...")

	db, err := database.Connect(cfg.DBPath, log)
	if err != nil {
		return cli.Exit(fmt.Sprintf("no se pudo abrir la base de datos: %v", err), 1)
	}
	defer database.Close(db, log)

	if err := db.AutoMigrate(&model.Product{}, &model.Sale{}, &model.User{}); err != nil {
		return cli.Exit(fmt.Sprintf("no se pudo crear el esquema: %v", err), 1)
	}

	if err := seedSystemUser(db); err != nil {
		return cli.Exit(fmt.Sprintf("no se pudo crear el usuario del sistema: %v", err), 1)
	}

	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return cli.Exit(fmt.Sprintf("error al consultar productos: %v", err), 1)
	}

	seedExamples := c.Bool("ejemplos")
	if count > 0 && !seedExamples {
		fmt.Printf("La base de datos ya contiene %d productos\n", count)
		if c.Bool("no-ejemplos") || !askYesNo("Desea agregar productos de ejemplo? (s/n): ") {
			fmt.Println("Base de datos lista")
			return nil
		}
	} else if c.Bool("no-ejemplos") {
		fmt.Println("Base de datos lista")
		return nil
	}

	fmt.Println("\nAgregando productos de ejemplo...")
	seedExampleProducts(db)

	fmt.Println("\nBase de datos inicializada correctamente")
	fmt.Printf("Ubicacion: %s\n", cfg.DBPath)
	return nil
}

// seedSystemUser guarantees the default attribution target for ventas exists.
func seedSystemUser(db *gorm.DB) error {
	userRepo := repository.NewUserRepo(db)
	if _, err := userRepo.FindByID(model.DefaultUserID); err == nil {
		return nil
	}
	return userRepo.Create(&model.User{
		ID:    model.DefaultUserID,
		Email: "sistema@tlapaleria.local",
		Name:  "Sistema",
		Role:  model.RoleWorker,
	})
}

func seedExampleProducts(db *gorm.DB) {
	productRepo := repository.NewProductRepo(db)
	for i := range exampleProducts {
		p := exampleProducts[i]
		if p.Barcode != nil {
			if _, err := productRepo.FindByBarcode(*p.Barcode); err == nil {
				fmt.Printf("  - %s ya existe\n", p.Name)
				continue
			}
		}
		if err := productRepo.Create(&p); err != nil {
			fmt.Printf("  - %s no se pudo agregar: %v\n", p.Name, err)
			continue
		}
		fmt.Printf("  + %s\n", p.Name)
	}
}

func askYesNo(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "s")
}

func ptr(s string) *string { return &s }
