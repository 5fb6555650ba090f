package core

// EventType classifies something that happened during a tick.
type EventType int

const (
	EventWordTyped EventType = iota // A word was typed correctly
	EventLifeLost                   // A word escaped and cost a life
	EventPurchase                   // A power-up was bought
	EventGameOver                   // The last life was lost
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventWordTyped:
		return "WordTyped"
	case EventLifeLost:
		return "LifeLost"
	case EventPurchase:
		return "Purchase"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PowerUp identifies one of the purchasable effects.
type PowerUp int

const (
	PowerNone PowerUp = iota
	PowerExtraLife
	PowerRemoveWords
	PowerSlowSpawn
)

// String returns the power-up name.
func (p PowerUp) String() string {
	switch p {
	case PowerExtraLife:
		return "ExtraLife"
	case PowerRemoveWords:
		return "RemoveWords"
	case PowerSlowSpawn:
		return "SlowSpawn"
	default:
		return "None"
	}
}

// Event is a side effect emitted by the simulation for the platform
// (sound cues, logging). Word carries the typed or escaped word's text.
type Event struct {
	Type  EventType
	Word  string
	Power PowerUp
}
