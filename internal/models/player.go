package models

import "math/rand/v2"

// DefaultAvatar is the avatar assigned when none is chosen.
const DefaultAvatar = "person.circle.fill"

// Avatars is the fixed set of avatar symbols a player can pick from.
var Avatars = []string{
	"person.circle.fill",
	"person.fill",
	"person.2.fill",
	"person.3.fill",
	"person.crop.circle.fill",
	"person.crop.square.fill",
	"face.smiling.fill",
	"crown.fill",
	"star.fill",
	"flame.fill",
	"bolt.fill",
	"gamecontroller.fill",
	"suit.spade.fill",
	"suit.heart.fill",
	"suit.club.fill",
	"suit.diamond.fill",
	"dice.fill",
	"trophy.fill",
	"medal.fill",
	"shield.fill",
}

// Player represents one member of the game-night group.
type Player struct {
	// ID is the unique identifier for the player (UUID format).
	ID string

	// Nick is the display name.
	Nick string

	// TotalPoints is the cumulative score across all recorded games.
	TotalPoints int

	// GamesPlayed counts recorded game sessions.
	// It always moves together with TotalPoints.
	GamesPlayed int

	// Avatar is the symbol name shown next to the player.
	Avatar string

	// CreatedAt is the Unix timestamp when the player was added.
	CreatedAt int64
}

// RandomAvatar returns a random entry from Avatars.
func RandomAvatar() string {
	return Avatars[rand.IntN(len(Avatars))]
}
