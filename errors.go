package wcsproj

import "fmt"

// ConfigReason is a machine-readable cause attached to a ConfigurationError,
// so tests and callers can assert on the failure mode instead of matching
// message strings.
type ConfigReason string

const (
	ReasonInvalidCode    ConfigReason = "invalid-projection-code"
	ReasonCtypeMismatch  ConfigReason = "ctype-mismatch"
	ReasonThetaRange     ConfigReason = "native-latitude-out-of-range"
	ReasonPoleUnsolvable ConfigReason = "native-pole-unsolvable"
)

// ConfigurationError reports malformed WCS keywords or an unrecognized
// projection selection. It is raised once, during construction or Init,
// and is fatal to that call. Point-by-point domain failures never produce
// it; those are signaled by the ok=false return of Direct/Inverse.
type ConfigurationError struct {
	Reason ConfigReason
	Detail string
	Inputs []float64
}

func NewConfigurationError(reason ConfigReason, detail string, inputs ...float64) *ConfigurationError {
	return &ConfigurationError{
		Reason: reason,
		Detail: detail,
		Inputs: inputs,
	}
}

func (e *ConfigurationError) Error() string {
	if len(e.Inputs) == 0 {
		return fmt.Sprintf("wcsproj: %s: %s", e.Reason, e.Detail)
	}
	return fmt.Sprintf("wcsproj: %s: %s %v", e.Reason, e.Detail, e.Inputs)
}

// UnsupportedVariantError reports a request for a projection variant that
// is intentionally not implemented, such as the slant orthographic.
type UnsupportedVariantError struct {
	Code    string
	Variant string
}

func NewUnsupportedVariantError(code string, variant string) *UnsupportedVariantError {
	return &UnsupportedVariantError{
		Code:    code,
		Variant: variant,
	}
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("wcsproj: projection %s does not support the %s variant", e.Code, e.Variant)
}
