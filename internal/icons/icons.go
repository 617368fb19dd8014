// Package icons maps the backend's icon identifiers to terminal glyphs.
// The set is closed: unknown identifiers resolve to a defined fallback
// instead of being looked up dynamically.
package icons

// Icon identifies a supported icon.
type Icon string

// Supported icons. These match the identifiers the backend stores on
// categories, payment methods, and savings goals.
const (
	Target      Icon = "Target"
	Car         Icon = "Car"
	Home        Icon = "Home"
	Plane       Icon = "Plane"
	Smartphone  Icon = "Smartphone"
	Laptop      Icon = "Laptop"
	Gift        Icon = "Gift"
	Shield      Icon = "Shield"
	Coffee      Icon = "Coffee"
	Utensils    Icon = "Utensils"
	ShoppingBag Icon = "ShoppingBag"
	Heart       Icon = "Heart"
	Zap         Icon = "Zap"
	Star        Icon = "Star"
	Music       Icon = "Music"
	Camera      Icon = "Camera"
	Palette     Icon = "Palette"
	Gamepad     Icon = "Gamepad2"
	Library     Icon = "Library"
	Dumbbell    Icon = "Dumbbell"
	Bike        Icon = "Bike"
	CreditCard  Icon = "CreditCard"
	Wallet      Icon = "Wallet"
)

// Fallback is used for unknown or empty identifiers.
const Fallback = CreditCard

var glyphs = map[Icon]string{
	Target:      "🎯",
	Car:         "🚗",
	Home:        "🏠",
	Plane:       "✈️",
	Smartphone:  "📱",
	Laptop:      "💻",
	Gift:        "🎁",
	Shield:      "🛡️",
	Coffee:      "☕",
	Utensils:    "🍽️",
	ShoppingBag: "🛍️",
	Heart:       "❤️",
	Zap:         "⚡",
	Star:        "⭐",
	Music:       "🎵",
	Camera:      "📷",
	Palette:     "🎨",
	Gamepad:     "🎮",
	Library:     "📚",
	Dumbbell:    "🏋️",
	Bike:        "🚴",
	CreditCard:  "💳",
	Wallet:      "👛",
}

// Lookup resolves an identifier to a supported icon, falling back for
// anything outside the set.
func Lookup(name string) Icon {
	icon := Icon(name)
	if _, ok := glyphs[icon]; ok {
		return icon
	}
	return Fallback
}

// Glyph returns the terminal glyph for an identifier, using the fallback
// glyph for unknown names.
func Glyph(name string) string {
	return glyphs[Lookup(name)]
}
