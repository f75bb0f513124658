package core

// Color is a semantic color tag for a screen cell. The game engine only
// selects tags; the platform layer decides the actual terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBody          // snake body segment
	ColorHead          // snake head segment
	ColorTarget        // the consumable orb
	ColorWall          // playing field border
	ColorCollision     // highlighted collision cell on game over
	ColorDim           // secondary text (hints, labels)
)
