package nucleotide

import "fmt"

// ConfigError is the base error type for configuration parsing.
type ConfigError interface {
	error
	IsConfigError()
}

// MalformedDefinitionError is returned when a nucleotide definition
// does not follow the "U=C9H13N2O9P" form.
type MalformedDefinitionError struct {
	Definition string
}

func (e *MalformedDefinitionError) Error() string {
	return fmt.Sprintf("nucleotide definition %q must use the form \"U=C9H13N2O9P\"", e.Definition)
}

func (e *MalformedDefinitionError) IsConfigError() {}

// MalformedSpecError is returned when a modification spec does not
// follow the "U:+H2O-H2O" form.
type MalformedSpecError struct {
	Spec string
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("modification spec %q must use the form \"U:+H2O-H2O\"", e.Spec)
}

func (e *MalformedSpecError) IsConfigError() {}

// MalformedRuleError is returned when a substitution rule does not
// follow the "A->G" form.
type MalformedRuleError struct {
	Rule string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("substitution rule %q must use the form \"A->G\"", e.Rule)
}

func (e *MalformedRuleError) IsConfigError() {}
