package pipeline

import "time"

// Stage describes a high-level generation phase.
type Stage string

const (
	// StageLoad is the manifest reading and parsing stage.
	StageLoad Stage = "load"
	// StageBuild is the declaration tree building stage.
	StageBuild Stage = "build"
	// StageRender is the source rendering stage.
	StageRender Stage = "render"
	// StageWrite is the output writing stage.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the manifest is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is currently running.
	StatusWorking Status = "working"
	// StatusDone indicates the stage finished.
	StatusDone Status = "done"
	// StatusSkipped indicates the stage was bypassed (cache hit, unchanged output).
	StatusSkipped Status = "skipped"
	// StatusError indicates the stage failed.
	StatusError Status = "error"
)

// Event reports progress for a manifest (or for the overall run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink adapts a channel to ProgressSink; нулевой канал молча глотает события.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}
