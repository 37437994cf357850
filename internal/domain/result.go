package domain

// Result is the outcome shape for expected operational failures (repository
// full, duplicate email, not found, toggle no-ops). Unlike validation errors
// these are normal business outcomes: callers inspect Success instead of
// unwrapping an error chain.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Item    any    `json:"item,omitempty"`
}

func OK(message string, item any) Result {
	return Result{Success: true, Message: message, Item: item}
}

func Fail(message string) Result {
	return Result{Success: false, Message: message}
}
