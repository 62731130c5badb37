// internal/anim/property/mechanism.go
package property

import "fmt"

// Mechanism is the pathway through which a property is read and written.
type Mechanism int

const (
	MechanismTransform Mechanism = iota + 1
	MechanismCSS
	MechanismAttribute
	MechanismObject
)

func (m Mechanism) String() string {
	switch m {
	case MechanismTransform:
		return "transform"
	case MechanismCSS:
		return "css"
	case MechanismAttribute:
		return "attribute"
	case MechanismObject:
		return "object"
	}
	return fmt.Sprintf("Mechanism(%d)", int(m))
}

// MarshalText renders the mechanism name for JSON output.
func (m Mechanism) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
