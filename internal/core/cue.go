package core

// Cue names shared by the engine, the audio bank and the menus.
const (
	CueIntro        = "intro"
	CueInstructions = "instructions"
	CueMusic        = "music"
	CueOutro        = "outro"
	CueCollision    = "collision"
	CueDodged       = "dodged"
	CueLeft         = "left"
	CueRight        = "right"
	CueCenter       = "center"
	CueAbove        = "above"
	CueBonus        = "bonus"
	CueLife         = "life"
	CueMenu         = "menu"
	CueObstacle     = "obstacle" // Generic variants used when a directional cue is missing
)

// CueNames lists every cue in menu order.
func CueNames() []string {
	return []string{
		CueBonus, CueLife, CueCollision, CueAbove, CueCenter, CueLeft, CueRight,
		CueDodged, CueMenu, CueObstacle, CueIntro, CueOutro, CueInstructions, CueMusic,
	}
}

// CueDescription returns the player-facing description of a cue.
func CueDescription(name string) string {
	switch name {
	case CueBonus:
		return "Box with an extra life"
	case CueLife:
		return "Extra life collected"
	case CueCollision:
		return "Hit an obstacle"
	case CueAbove:
		return "Obstacle from above"
	case CueCenter:
		return "Obstacle in the center"
	case CueLeft:
		return "Obstacle from the left"
	case CueRight:
		return "Obstacle from the right"
	case CueDodged:
		return "Dodged successfully"
	case CueMenu:
		return "Menu navigation"
	case CueObstacle:
		return "Generic obstacle"
	case CueIntro:
		return "Race start"
	case CueOutro:
		return "Game over"
	case CueInstructions:
		return "Spoken instructions"
	case CueMusic:
		return "Background music"
	default:
		return name
	}
}
