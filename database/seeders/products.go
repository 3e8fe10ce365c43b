package seeders

import "github.com/shashiranjanraj/stocktracker/app/models"

// sampleProducts is a small-shop catalogue used for demos and local
// development.
var sampleProducts = []models.Product{
	{Name: "Rooibos Tea 40 Bags", SKU: "FB-0001", Category: models.CategoryFoodBeverages, Price: 34.99, Stock: 120, LowStockThreshold: 20, Description: "Organic Cederberg rooibos."},
	{Name: "Biltong Sliced 250g", SKU: "FB-0002", Category: models.CategoryFoodBeverages, Price: 89.50, Stock: 45, LowStockThreshold: 10},
	{Name: "Rusks Buttermilk 500g", SKU: "FB-0003", Category: models.CategoryFoodBeverages, Price: 42.00, Stock: 60, LowStockThreshold: 15},
	{Name: "Chakalaka Mild 410g", SKU: "FB-0004", Category: models.CategoryFoodBeverages, Price: 18.99, Stock: 8, LowStockThreshold: 12},
	{Name: "Springbok Rugby Jersey", SKU: "CS-0001", Category: models.CategoryClothingSports, Price: 899.00, Stock: 25, LowStockThreshold: 5, Description: "Official replica."},
	{Name: "Running Socks 3-Pack", SKU: "CS-0002", Category: models.CategoryClothingSports, Price: 129.00, Stock: 80, LowStockThreshold: 15},
	{Name: "Cricket Ball Leather", SKU: "CS-0003", Category: models.CategoryClothingSports, Price: 249.00, Stock: 0, LowStockThreshold: 6},
	{Name: "Beaded Wire Art Guineafowl", SKU: "AC-0001", Category: models.CategoryArtsCrafts, Price: 185.00, Stock: 14, LowStockThreshold: 5, Description: "Handmade township wire art."},
	{Name: "Acrylic Paint Set 12x12ml", SKU: "AC-0002", Category: models.CategoryArtsCrafts, Price: 159.99, Stock: 30, LowStockThreshold: 8},
	{Name: "Sketch Pad A4 50 Sheets", SKU: "AC-0003", Category: models.CategoryArtsCrafts, Price: 64.50, Stock: 55, LowStockThreshold: 10},
	{Name: "Protea Seedling Tray", SKU: "GP-0001", Category: models.CategoryGardenPlants, Price: 75.00, Stock: 22, LowStockThreshold: 10, Description: "King protea, six seedlings."},
	{Name: "Potting Soil 30L", SKU: "GP-0002", Category: models.CategoryGardenPlants, Price: 59.99, Stock: 40, LowStockThreshold: 12},
	{Name: "Garden Trowel Stainless", SKU: "GP-0003", Category: models.CategoryGardenPlants, Price: 95.00, Stock: 9, LowStockThreshold: 10},
	{Name: "Scatter Cushion Shweshwe", SKU: "HL-0001", Category: models.CategoryHomeLiving, Price: 220.00, Stock: 35, LowStockThreshold: 8, Description: "Indigo shweshwe print cover."},
	{Name: "Candle Fynbos Scented", SKU: "HL-0002", Category: models.CategoryHomeLiving, Price: 145.00, Stock: 50, LowStockThreshold: 10},
	{Name: "Braai Tongs Long Handle", SKU: "HL-0003", Category: models.CategoryHomeLiving, Price: 189.00, Stock: 18, LowStockThreshold: 6},
	{Name: "USB-C Charger 65W", SKU: "EL-0001", Category: models.CategoryElectronics, Price: 449.00, Stock: 28, LowStockThreshold: 8},
	{Name: "Bluetooth Speaker Mini", SKU: "EL-0002", Category: models.CategoryElectronics, Price: 599.00, Stock: 12, LowStockThreshold: 5},
	{Name: "Load Shedding LED Lamp", SKU: "EL-0003", Category: models.CategoryElectronics, Price: 325.00, Stock: 3, LowStockThreshold: 10, Description: "Rechargeable, 8 hour runtime."},
	{Name: "AA Batteries 8-Pack", SKU: "EL-0004", Category: models.CategoryElectronics, Price: 99.99, Stock: 95, LowStockThreshold: 20},
}
