package survivor

// Mode is the top-level state of the game. Exactly one is active.
type Mode int

const (
	ModePlaying   Mode = iota // Simulation runs
	ModeLevelUp               // Level-up banner is shown
	ModeUpgrading             // Waiting for an upgrade selection
	ModeGameOver              // Waiting for a restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeLevelUp:
		return "levelUp"
	case ModeUpgrading:
		return "upgrading"
	case ModeGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}
