package driven

// ProgressIndicator shows that a slow operation is running.
type ProgressIndicator interface {
	// Start begins displaying label. Calling Start while running is a no-op.
	Start(label string)

	// Stop ends the display and prints message once.
	// It returns only after all drawing has finished.
	Stop(message string)
}
