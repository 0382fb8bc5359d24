package domain

// LoadedModel is the immutable serving state built once at process startup.
// It is shared read-only by all request handlers for the lifetime of the
// process; there is no hot-reload.
type LoadedModel struct {
	Forest  *Forest
	Metrics Metrics
	Info    ModelInfo
}
