package pricing

import "fmt"

// ValidationError reports an out-of-range prediction input.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be in [%d,%d], got %d", e.Field, e.Min, e.Max, e.Value)
}

// validateInputs rejects out-of-range inputs before any rule runs.
// 범위 밖 입력은 규칙 평가 전에 fail-fast
func validateInputs(dayOfWeek, hour, month int) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return &ValidationError{Field: "dayOfWeek", Value: dayOfWeek, Min: 0, Max: 6}
	}
	if hour < 0 || hour > 23 {
		return &ValidationError{Field: "hour", Value: hour, Min: 0, Max: 23}
	}
	if month < 1 || month > 12 {
		return &ValidationError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	return nil
}
