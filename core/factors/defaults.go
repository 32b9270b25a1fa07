package factors

import "ecotrack/core/types"

// DefaultVersion is the embedded catalog version
const DefaultVersion = "2024.1"

// Default returns the embedded factor catalog.
// Values are kgCO2e per unit and are configuration data, not engine
// logic; a file catalog replaces them wholesale.
func Default() *Table {
	b := NewBuilder(DefaultVersion).WithSource(SourceEmbedded)

	// Transport, per km
	b.Add(types.CategoryTransport, "car_petrol", 0.192, "km")
	b.Add(types.CategoryTransport, "car_diesel", 0.171, "km")
	b.Add(types.CategoryTransport, "car_ev", 0.053, "km")
	b.Add(types.CategoryTransport, "motorbike", 0.103, "km")
	b.Add(types.CategoryTransport, "bus_diesel", 0.105, "km")
	b.Add(types.CategoryTransport, "train_electric", 0.041, "km")
	b.Add(types.CategoryTransport, "bicycle", 0.0, "km")
	b.Add(types.CategoryTransport, "walking", 0.0, "km")
	b.Add(types.CategoryTransport, "airplane_shorthaul", 0.255, "km")
	b.Add(types.CategoryTransport, "airplane_longhaul", 0.195, "km")

	// Food, per kg
	b.Add(types.CategoryFood, "beef", 27.0, "kg")
	b.Add(types.CategoryFood, "chicken", 6.9, "kg")
	b.Add(types.CategoryFood, "pork", 12.1, "kg")
	b.Add(types.CategoryFood, "fish", 6.1, "kg")
	b.Add(types.CategoryFood, "milk", 3.2, "kg")
	b.Add(types.CategoryFood, "vegetables", 2.0, "kg")
	b.Add(types.CategoryFood, "fruits", 1.1, "kg")

	// Energy, per kWh
	b.Add(types.CategoryEnergy, "electricity_global_avg", 0.475, "kWh")
	b.Add(types.CategoryEnergy, "natural_gas", 0.185, "kWh")

	// Waste, per kg landfilled
	b.Add(types.CategoryWaste, "municipal_waste", 0.57, "kg")

	// Consumption
	b.Add(types.CategoryConsumption, "clothing", 22.0, "kg")
	b.Add(types.CategoryConsumption, "electronics_smartphone", 70.0, "item")

	return b.Build()
}
