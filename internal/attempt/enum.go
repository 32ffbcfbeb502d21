package attempt

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusAbandoned  Status = "ABANDONED"
	// StatusTimedOut is reserved; no transition produces it yet.
	StatusTimedOut Status = "TIMED_OUT"
)

var AllStatuses = []Status{
	StatusInProgress,
	StatusCompleted,
	StatusAbandoned,
	StatusTimedOut,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
