package config

import (
	"log"
	"os"

	"github.com/abduulthecoder/fam-vans-parts-store/catalog"
)

var (
	Inventory *catalog.Inventory
	Vans      *catalog.VanIndex
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadCatalog reads the inventory and van documents once at startup. Both
// are immutable for the rest of the session; a failed load is terminal —
// the storefront never runs against a partial catalog.
func LoadCatalog() {
	inventoryPath := getEnv("INVENTORY_PATH", "Models/inventory.json")
	vansPath := getEnv("VANS_PATH", "Models/vans.json")

	inv, err := catalog.LoadInventory(inventoryPath)
	if err != nil {
		log.Fatalf("❌ Unable to load inventory document: %v", err)
	}
	Inventory = inv
	log.Printf("✅ Inventory loaded: %d products in %d categories", inv.Len(), len(inv.Categories()))

	vans, err := catalog.LoadVans(vansPath)
	if err != nil {
		log.Fatalf("❌ Unable to load vans document: %v", err)
	}
	Vans = vans
	log.Printf("✅ Van database loaded: %d vans", len(vans.Vans()))
}
