package interfaces

// IMetricsRecorder receives domain counters from the use cases.
type IMetricsRecorder interface {
	RecordOperation(entity, operation string)
	RecordAuthAttempt(success bool)
	TrackCostRecompute(category string) func()
}
