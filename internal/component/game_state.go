package component

// SessionPhase: фаза игровой сессии
type SessionPhase int

const (
	NotStarted SessionPhase = iota
	Running
	Ended
)

func (p SessionPhase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}
