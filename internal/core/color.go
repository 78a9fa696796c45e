package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Only the colors the lane runner draws with are defined.
const (
	ColorDefault      Color = iota
	ColorRed                // Tall obstacles
	ColorGreen              // Slow-motion pickups
	ColorYellow             // Low obstacles, high score
	ColorMagenta            // Obstacles with an image
	ColorCyan               // Player
	ColorWhite              // HUD text, message boxes
	ColorBrightBlue         // Shield pickups
	ColorBrightGreen        // Skinned player, modifier status
	ColorBrightYellow       // Message titles
	ColorBrightCyan         // Speed level
	ColorOrange             // Double-score pickups
	ColorGray               // Lane dividers, ground, invulnerable player
)
