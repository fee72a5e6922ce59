// Package catalog holds the compiled-in slide lists for the landing page
// carousels.
package catalog

import "github.com/npratt/voyage/internal/carousel"

var heroSlides = []carousel.Slide{
	{ResourceRef: "images/hero/santorini.jpg", DisplayName: "Santorini, Greece"},
	{ResourceRef: "images/hero/kyoto.jpg", DisplayName: "Kyoto, Japan"},
	{ResourceRef: "images/hero/machu-picchu.jpg", DisplayName: "Machu Picchu, Peru"},
	{ResourceRef: "images/hero/banff.jpg", DisplayName: "Banff, Canada"},
	{ResourceRef: "images/hero/zanzibar.jpg", DisplayName: "Zanzibar, Tanzania"},
}

var homepageSlides = []carousel.Slide{
	{ResourceRef: "images/home/northern-lights.jpg", DisplayName: "Chase the northern lights"},
	{ResourceRef: "images/home/safari.jpg", DisplayName: "Sunrise safari in the Serengeti"},
	{ResourceRef: "images/home/amalfi.jpg", DisplayName: "Slow days on the Amalfi coast"},
}

// HeroSlides returns the slides shown in the landing page banner.
func HeroSlides() carousel.SlideSet {
	return carousel.NewSlideSet(heroSlides...)
}

// HomepageSlides returns the slides of the full-screen homepage slideshow.
func HomepageSlides() carousel.SlideSet {
	return carousel.NewSlideSet(homepageSlides...)
}
