package practice

// Status is the practice session state.
type Status int

const (
	StatusIdle Status = iota
	StatusRecording
	StatusTranscribing
	StatusTranslating
	StatusReady
	StatusSpeaking
	StatusPermissionDenied
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRecording:
		return "recording"
	case StatusTranscribing:
		return "transcribing"
	case StatusTranslating:
		return "translating"
	case StatusReady:
		return "ready"
	case StatusSpeaking:
		return "speaking"
	case StatusPermissionDenied:
		return "permission denied"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
