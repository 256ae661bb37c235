package batch

// State is a step of the session loop.
type State int

const (
	CollectTemplate State = iota
	SelectFormat
	CollectCount
	Generate
	Report
	AskRepeat
	Done
)

func (s State) String() string {
	switch s {
	case CollectTemplate:
		return "collect-template"
	case SelectFormat:
		return "select-format"
	case CollectCount:
		return "collect-count"
	case Generate:
		return "generate"
	case Report:
		return "report"
	case AskRepeat:
		return "ask-repeat"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
