package memory

import "coffeepos/internal/domain"

// Demo rows shown when the service runs without a reachable database.
// Ids are fixed so locally created rows continue from 4.

func DemoCategories() []*domain.Category {
	return []*domain.Category{
		{Model: domain.Model{ID: 1}, Name: "Coffee", Description: "Espresso based drinks"},
		{Model: domain.Model{ID: 2}, Name: "Tea", Description: "Hot and iced teas"},
		{Model: domain.Model{ID: 3}, Name: "Pastry", Description: "Baked goods"},
	}
}

func DemoSizes() []*domain.Size {
	return []*domain.Size{
		{Model: domain.Model{ID: 1}, Name: "Small", ExtraPrice: 0},
		{Model: domain.Model{ID: 2}, Name: "Medium", ExtraPrice: 0.50},
		{Model: domain.Model{ID: 3}, Name: "Large", ExtraPrice: 1.00},
	}
}

func DemoProducts() []*domain.Product {
	c1, c3 := uint64(1), uint64(3)
	return []*domain.Product{
		{Model: domain.Model{ID: 1}, Name: "Latte", Price: 3.50, CategoryID: &c1, Status: domain.ProductAvailable},
		{Model: domain.Model{ID: 2}, Name: "Americano", Price: 2.50, CategoryID: &c1, Status: domain.ProductAvailable},
		{Model: domain.Model{ID: 3}, Name: "Croissant", Price: 3.00, CategoryID: &c3, Status: domain.ProductAvailable},
	}
}

func DemoTables() []*domain.Table {
	return []*domain.Table{
		{Model: domain.Model{ID: 1}, Number: 1, Seats: 2, Status: domain.TableAvailable},
		{Model: domain.Model{ID: 2}, Number: 2, Seats: 4, Status: domain.TableAvailable},
		{Model: domain.Model{ID: 3}, Number: 3, Seats: 4, Status: domain.TableOccupied},
	}
}
