package router

// EventType identifies what an Event reports.
type EventType int

const (
	EventTransitionStart EventType = iota // The stack changed and the visual transition began
	EventTransitionEnd                    // The visual transition settled
	EventParamsChanged                    // The top entry's params changed without a transition
)

func (t EventType) String() string {
	switch t {
	case EventTransitionStart:
		return "transitionStart"
	case EventTransitionEnd:
		return "transitionEnd"
	case EventParamsChanged:
		return "paramsChanged"
	default:
		return "unknown"
	}
}

// Operation identifies the engine call that produced an Event.
type Operation int

const (
	OpPush Operation = iota
	OpPop
	OpReplace
	OpNavigate
	OpSetParams
)

func (o Operation) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpReplace:
		return "replace"
	case OpNavigate:
		return "navigate"
	case OpSetParams:
		return "setParams"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners registered with Engine.AddListener.
//
// From is the active entry before the operation and To the active entry
// after it; both are snapshots and safe to retain. Start and End events of
// the same transition share Seq. Back is true when the operation revealed
// an entry that was already on the stack.
type Event struct {
	Type EventType
	Seq  uint64
	Op   Operation
	From Entry
	To   Entry
	Back bool
}

// Listener receives engine events. Listeners run on the caller's goroutine
// and may issue further engine operations; those are queued. Settle called
// from a TransitionStart listener takes effect once all Start listeners ran.
type Listener func(Event)

type listenerSlot struct {
	id uint64
	fn Listener
}
