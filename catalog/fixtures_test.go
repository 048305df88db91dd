package catalog

import "github.com/abduulthecoder/fam-vans-parts-store/models"

func testVans() []models.Van {
	return []models.Van{
		{Year: 2019, Make: "Ford", Model: "Transit", ModelNumber: "T250", Type: "Cargo", Roof: "High", Wheelbase: "148"},
		{Year: 2019, Make: "Ford", Model: "Transit", ModelNumber: "T350", Type: "Cargo", Roof: "Low", Wheelbase: "130"},
		{Year: 2020, Make: "Ram", Model: "ProMaster", ModelNumber: "1500", Type: "Cargo"},
		{Year: 2020, Make: "Ram", Model: "ProMaster City", ModelNumber: "SLT", Type: "Cargo"},
		{Year: 2021, Make: "Mercedes-Benz", Model: "Sprinter", ModelNumber: "2500", Type: "Cargo"},
		{Year: 2020, Make: "Honda", Model: "Odyssey", ModelNumber: "EX-L"}, // passenger, dropped at load
	}
}

func testInventoryDoc() models.InventoryDocument {
	return models.InventoryDocument{
		"shelving": {
			{PartNumber: "SH-100", PartDescription: "Steel Shelving Unit", Brand: "Ranger", VehicleFitment: "2015-2023 Ford Transit", RetailPrice: 299.99, LaborHours: 2, QuantityOnHand: 12},
			{PartNumber: "SH-200", PartDescription: "Aluminum Shelf Kit", Brand: "Adrian", VehicleFitment: "2019-2022 Ram ProMaster", RetailPrice: 449.5, LaborHours: 3, QuantityOnHand: 0},
		},
		"partitions": {
			{PartNumber: "PT-300", PartDescription: "Mesh Partition", Brand: "Ranger", VehicleFitment: "Sprinter 2500 All Years", RetailPrice: 189, LaborHours: 1.5, QuantityOnHand: 4},
			{PartNumber: "PT-310", PartDescription: "Solid Partition", Brand: "Weather Guard", VehicleFitment: "Cargo vans universal fit", RetailPrice: 210, LaborHours: 1, QuantityOnHand: 7},
		},
	}
}

func testInventory() *Inventory {
	return NewInventory(testInventoryDoc())
}

func testIndex() *VanIndex {
	return NewVanIndex(testVans())
}
