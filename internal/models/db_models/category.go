package db_models

// Category tags an activity's type and picks its display color.
type Category string

const (
	CategoryDriving     Category = "Driving"
	CategoryHiking      Category = "Hiking"
	CategoryRafting     Category = "Rafting"
	CategoryEating      Category = "Eating"
	CategoryHotelRest   Category = "Hotel/Rest"
	CategoryFlight      Category = "Flight"
	CategoryTransport   Category = "Transport"
	CategorySightseeing Category = "Sightseeing"
	CategoryOther       Category = "Other"
)

// Categories lists the color table in display order.
var Categories = []Category{
	CategoryDriving,
	CategoryHiking,
	CategoryRafting,
	CategoryEating,
	CategoryHotelRest,
	CategoryFlight,
	CategoryTransport,
	CategorySightseeing,
	CategoryOther,
}

// Colors is the authoritative set of valid categories.
var Colors = map[Category]string{
	CategoryDriving:     "#B91C1C",
	CategoryHiking:      "#2F855A",
	CategoryRafting:     "#2B6CB0",
	CategoryEating:      "#6B46C1",
	CategoryHotelRest:   "#4A5568",
	CategoryFlight:      "#DC2626",
	CategoryTransport:   "#059669",
	CategorySightseeing: "#7C3AED",
	CategoryOther:       "#065F60",
}

func (c Category) IsValid() bool {
	_, ok := Colors[c]
	return ok
}

func (c Category) Color() string {
	return Colors[c]
}
