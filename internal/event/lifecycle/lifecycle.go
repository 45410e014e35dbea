package lifecycle

// Event identifies a server lifecycle transition.
type Event int32

const (
	ServerSpawn Event = iota
	GameInit
	GameStart
	NewMap
	RoundStart
)

func (e Event) String() string {
	switch e {
	case ServerSpawn:
		return "server spawn"
	case GameInit:
		return "game init"
	case GameStart:
		return "game start"
	case NewMap:
		return "new map"
	case RoundStart:
		return "round start"
	default:
		return "unknown"
	}
}
