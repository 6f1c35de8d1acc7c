package diag

import "fmt"

// Rule is a diagnostic code.
type Rule int

const (
	ruleInvalid Rule = iota

	SYM000UnresolvedName
	SYM010ContractViolation
	SYM020ShadowsField
	SYM030ShadowsLocal

	ruleSentinel
)

// String returns the canonical code and short name of the rule.
func (r Rule) String() string {
	switch r {
	case SYM000UnresolvedName:
		return "SYM000: UnresolvedName"
	case SYM010ContractViolation:
		return "SYM010: ContractViolation"
	case SYM020ShadowsField:
		return "SYM020: ShadowsField"
	case SYM030ShadowsLocal:
		return "SYM030: ShadowsLocal"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Code returns the bare code, like "SYM020".
func (r Rule) Code() string {
	if r <= ruleInvalid || r >= ruleSentinel {
		return fmt.Sprintf("SYM-unknown(%d)", r)
	}

	s := r.String()
	return s[:6]
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case SYM000UnresolvedName:
		return "A name use resolves to no declaration in scope."
	case SYM010ContractViolation:
		return "The tree breaks the shape resolution relies on."
	case SYM020ShadowsField:
		return "A local declaration hides a field."
	case SYM030ShadowsLocal:
		return "A local declaration hides a variable of an enclosing scope."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

func (r Rule) MarshalText() ([]byte, error) {
	if r <= ruleInvalid || r >= ruleSentinel {
		return nil, fmt.Errorf("cannot marshal invalid Rule(%d)", r)
	}

	return []byte(r.Code()), nil
}

// Canonical constructors.

func UnresolvedName() Rule    { return SYM000UnresolvedName }
func ContractViolation() Rule { return SYM010ContractViolation }
func ShadowsField() Rule      { return SYM020ShadowsField }
func ShadowsLocal() Rule      { return SYM030ShadowsLocal }
