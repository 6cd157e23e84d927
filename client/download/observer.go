package download

// Observer receives the notifications of a download, keyed by its tag.
// For one download the calls arrive in the order OnStart, zero or more
// OnProgress with non-decreasing percent, then exactly one of OnSuccess or
// OnError. Nothing is delivered after the terminal call.
//
// Observers may be called from a goroutine other than the one copying bytes.
type Observer interface {
	OnStart(tag string, total int64)
	OnProgress(tag string, read, total int64, percent int)
	OnSuccess(tag, path string)
	OnError(tag string, err error)
}

// ObserverFuncs adapts plain functions to [Observer]. Nil fields are skipped.
type ObserverFuncs struct {
	Start    func(tag string, total int64)
	Progress func(tag string, read, total int64, percent int)
	Success  func(tag, path string)
	Error    func(tag string, err error)
}

func (o ObserverFuncs) OnStart(tag string, total int64) {
	if o.Start != nil {
		o.Start(tag, total)
	}
}

func (o ObserverFuncs) OnProgress(tag string, read, total int64, percent int) {
	if o.Progress != nil {
		o.Progress(tag, read, total, percent)
	}
}

func (o ObserverFuncs) OnSuccess(tag, path string) {
	if o.Success != nil {
		o.Success(tag, path)
	}
}

func (o ObserverFuncs) OnError(tag string, err error) {
	if o.Error != nil {
		o.Error(tag, err)
	}
}

// EventKind identifies the variant held by an [Event].
type EventKind int

const (
	EventStart EventKind = iota + 1
	EventProgress
	EventSuccess
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventProgress:
		return "progress"
	case EventSuccess:
		return "success"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single notification of a download.
type Event struct {
	Kind    EventKind
	Tag     string
	Read    int64
	Total   int64
	Percent int
	Path    string
	Err     error
}

// Terminal reports whether e ends the notification sequence.
func (e Event) Terminal() bool {
	return e.Kind == EventSuccess || e.Kind == EventError
}

// Deliver invokes the callback of obs matching e.
func (e Event) Deliver(obs Observer) {
	switch e.Kind {
	case EventStart:
		obs.OnStart(e.Tag, e.Total)
	case EventProgress:
		obs.OnProgress(e.Tag, e.Read, e.Total, e.Percent)
	case EventSuccess:
		obs.OnSuccess(e.Tag, e.Path)
	case EventError:
		obs.OnError(e.Tag, e.Err)
	}
}

// Recorder is an [Observer] forwarding every notification to a channel,
// useful when the consumer prefers a select loop over callbacks.
type Recorder chan<- Event

func (r Recorder) OnStart(tag string, total int64) {
	r <- Event{Kind: EventStart, Tag: tag, Total: total}
}

func (r Recorder) OnProgress(tag string, read, total int64, percent int) {
	r <- Event{Kind: EventProgress, Tag: tag, Read: read, Total: total, Percent: percent}
}

func (r Recorder) OnSuccess(tag, path string) {
	r <- Event{Kind: EventSuccess, Tag: tag, Path: path}
}

func (r Recorder) OnError(tag string, err error) {
	r <- Event{Kind: EventError, Tag: tag, Err: err}
}
