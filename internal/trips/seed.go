package trips

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk layout of a catalog seed.
type seedFile struct {
	Trips []Trip `yaml:"trips"`
}

// LoadSeedFile reads a YAML seed file of the form:
//
//	trips:
//	  - id: lisbon-food
//	    title: Lisbon food walk
//	    image: images/trips/lisbon.jpg
//	    category: city
func LoadSeedFile(path string) ([]Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for i, t := range seed.Trips {
		if t.ID == "" || t.Title == "" {
			return nil, fmt.Errorf("seed file %s: entry %d needs id and title", path, i)
		}
	}
	return seed.Trips, nil
}

// DefaultTrips is the catalog a fresh backend starts with when no seed
// file is given.
func DefaultTrips() []Trip {
	return []Trip{
		{
			ID:          "iceland-ring-road",
			Title:       "Iceland Ring Road",
			Description: "Ten days of glaciers, black sand beaches and hot springs.",
			Image:       "images/trips/iceland.jpg",
			Category:    "adventure",
		},
		{
			ID:          "tuscany-villas",
			Title:       "Tuscan Villas",
			Description: "Vineyard stays and cooking classes in the Chianti hills.",
			Image:       "images/trips/tuscany.jpg",
			Category:    "relax",
		},
		{
			ID:          "patagonia-trek",
			Title:       "Patagonia W Trek",
			Description: "A guided five-day trek through Torres del Paine.",
			Image:       "images/trips/patagonia.jpg",
			Category:    "adventure",
		},
		{
			ID:          "tokyo-nights",
			Title:       "Tokyo After Dark",
			Description: "Izakaya crawls, jazz bars and the city from Shibuya Sky.",
			Image:       "https://cdn.voyage.example/trips/tokyo.jpg",
			Category:    "city",
		},
	}
}
