package main

import (
	"log"

	"go-warehouse-inventory/internal/model"
	"go-warehouse-inventory/internal/repository"
	"go-warehouse-inventory/internal/service"
	"go-warehouse-inventory/internal/ws"
	"go-warehouse-inventory/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds a small demo catalog with an initial stock-in transaction.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.Transaction{}, &model.LineItem{})

	wsHub := ws.NewHub()
	go wsHub.Run()

	productRepo := repository.NewProductRepo(db)
	ledgerRepo := repository.NewLedgerRepo(db)
	catalogService := service.NewCatalogService(productRepo, ledgerRepo, wsHub)
	ledgerService := service.NewLedgerService(ledgerRepo, productRepo, db, wsHub)

	demoProducts := []service.CreateProductRequest{
		{Name: "Laptop Computer", SKU: "LAPTOP-001", Description: "Dell Inspiron 15 3000 Series"},
		{Name: "Wireless Mouse", SKU: "MOUSE-001", Description: "Logitech M170 Wireless Mouse"},
		{Name: "USB Cable", SKU: "CABLE-001", Description: "USB Type-C to USB-A Cable"},
		{Name: "Monitor Stand", SKU: "STAND-001", Description: "Adjustable Monitor Stand"},
		{Name: "Keyboard", SKU: "KEYB-001", Description: "Mechanical Gaming Keyboard"},
	}

	var items []service.LineItemInput
	for _, req := range demoProducts {
		if existing, err := productRepo.FindBySKU(req.SKU); err == nil {
			log.Printf("Product %s already exists, skipping", existing.SKU)
			continue
		}

		product, err := catalogService.CreateProduct(&req, "seed-demo")
		if err != nil {
			log.Fatalf("Failed to create product %s: %v", req.SKU, err)
		}
		log.Printf("Created product: %s (%s)", product.Name, product.SKU)

		items = append(items, service.LineItemInput{ProductID: product.ID, Quantity: 50})
	}

	if len(items) == 0 {
		log.Println("Demo products already exist, nothing to seed")
		return
	}

	txn, err := ledgerService.CreateTransaction(&service.CreateTransactionRequest{
		Type:      model.TxIn,
		Remarks:   "Initial stock inventory",
		LineItems: items,
	}, "seed-demo")
	if err != nil {
		log.Fatalf("Failed to create initial stock transaction: %v", err)
	}

	log.Printf("Created initial stock transaction %s with %d units", txn.ID, txn.TotalItems())
	log.Println("Demo data setup completed!")
}
