package service

const (
	// Version is the current version of the fastmath service.
	Version = "1.0.0"
)
