package roll

// RollError is a custom error type for roll-related errors
type RollError string

func (e RollError) Error() string {
	return string(e)
}

const (
	ErrMissingConfig  RollError = "config is required"
	ErrMissingPhysics RollError = "physics provider is required"
	ErrMissingFactory RollError = "die factory is required"
)
