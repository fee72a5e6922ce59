package testutil

import (
	"fmt"

	"github.com/npratt/voyage/internal/carousel"
	"github.com/npratt/voyage/internal/trips"
)

// SampleTripsJSON is a typical GET /api/trips response. Images are a mix of
// relative and absolute references.
var SampleTripsJSON = `[
  {"id": "iceland-ring-road", "title": "Iceland Ring Road", "description": "Ten days of waterfalls", "image": "images/trips/iceland.jpg", "category": "adventure"},
  {"id": "tuscany-villas", "title": "Tuscany Villas", "description": "Slow food and vineyards", "image": "/images/trips/tuscany.jpg", "category": "relax"},
  {"id": "tokyo-nights", "title": "Tokyo Nights", "description": "Neon and ramen", "image": "https://cdn.example.com/tokyo.jpg", "category": "city"}
]`

// EmptyTripsJSON is the response when nothing is featured.
var EmptyTripsJSON = `[]`

// SampleSeedYAML is a catalog seed file with two trips.
var SampleSeedYAML = `trips:
  - id: lisbon-food
    title: Lisbon food walk
    image: images/trips/lisbon.jpg
    category: city
  - id: dolomites-hike
    title: Dolomites hut to hut
    category: adventure
`

// SampleTrips returns the trips in SampleTripsJSON.
func SampleTrips() []trips.Trip {
	return []trips.Trip{
		{ID: "iceland-ring-road", Title: "Iceland Ring Road", Description: "Ten days of waterfalls", Image: "images/trips/iceland.jpg", Category: "adventure"},
		{ID: "tuscany-villas", Title: "Tuscany Villas", Description: "Slow food and vineyards", Image: "/images/trips/tuscany.jpg", Category: "relax"},
		{ID: "tokyo-nights", Title: "Tokyo Nights", Description: "Neon and ramen", Image: "https://cdn.example.com/tokyo.jpg", Category: "city"},
	}
}

// Slides returns n numbered slides: "Destination 0" at "/img/dest-0.jpg", and so on.
func Slides(n int) carousel.SlideSet {
	slides := make([]carousel.Slide, n)
	for i := range slides {
		slides[i] = carousel.Slide{
			ResourceRef: fmt.Sprintf("/img/dest-%d.jpg", i),
			DisplayName: fmt.Sprintf("Destination %d", i),
		}
	}
	return carousel.NewSlideSet(slides...)
}
