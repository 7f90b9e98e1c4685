// Package errorcodes defines encode service errors using a structured type.
// ServiceError holds the two-character code and human-readable description.
package errorcodes

// Predefined service error instances.
var (
	Err00 = ServiceError{"00", "No error"}
	Err15 = ServiceError{
		"15",
		"Invalid input data (invalid format, invalid characters, or not enough data provided)",
	}
	Err68 = ServiceError{"68", "Command has been disabled"}
	Err80 = ServiceError{"80", "Data length error"}
)

// ServiceError represents a service error with its code and description.
type ServiceError struct {
	Code        string // two-character error code
	Description string // human-readable description
}

// Error implements the Go error interface: "<Code>: <Description>".
func (e ServiceError) Error() string {
	return e.Code + ": " + e.Description
}

// CodeOnly returns only the error code (e.g., "68"), for embedding in responses.
func (e ServiceError) CodeOnly() string {
	return e.Code
}
