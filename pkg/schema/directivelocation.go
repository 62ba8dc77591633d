package schema

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidDirectiveLocation is returned for a spelling that names no DirectiveLocation
var ErrInvalidDirectiveLocation = errors.New("invalid directive location")

// DirectiveLocation is a place where a directive may be used, e.g. FIELD
type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota

	ExecutableDirectiveLocationQuery
	ExecutableDirectiveLocationMutation
	ExecutableDirectiveLocationSubscription
	ExecutableDirectiveLocationField
	ExecutableDirectiveLocationFragmentDefinition
	ExecutableDirectiveLocationFragmentSpread
	ExecutableDirectiveLocationInlineFragment

	TypeSystemDirectiveLocationSchema
	TypeSystemDirectiveLocationScalar
	TypeSystemDirectiveLocationObject
	TypeSystemDirectiveLocationFieldDefinition
	TypeSystemDirectiveLocationArgumentDefinition
	TypeSystemDirectiveLocationInterface
	TypeSystemDirectiveLocationUnion
	TypeSystemDirectiveLocationEnum
	TypeSystemDirectiveLocationEnumValue
	TypeSystemDirectiveLocationInputObject
	TypeSystemDirectiveLocationInputFieldDefinition
	TypeSystemDirectiveLocationVariableDefinition

	directiveLocationCount
)

var directiveLocationNames = [directiveLocationCount]string{
	DirectiveLocationUnknown:                        "",
	ExecutableDirectiveLocationQuery:                "QUERY",
	ExecutableDirectiveLocationMutation:             "MUTATION",
	ExecutableDirectiveLocationSubscription:         "SUBSCRIPTION",
	ExecutableDirectiveLocationField:                "FIELD",
	ExecutableDirectiveLocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	ExecutableDirectiveLocationFragmentSpread:       "FRAGMENT_SPREAD",
	ExecutableDirectiveLocationInlineFragment:       "INLINE_FRAGMENT",
	TypeSystemDirectiveLocationSchema:               "SCHEMA",
	TypeSystemDirectiveLocationScalar:               "SCALAR",
	TypeSystemDirectiveLocationObject:               "OBJECT",
	TypeSystemDirectiveLocationFieldDefinition:      "FIELD_DEFINITION",
	TypeSystemDirectiveLocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	TypeSystemDirectiveLocationInterface:            "INTERFACE",
	TypeSystemDirectiveLocationUnion:                "UNION",
	TypeSystemDirectiveLocationEnum:                 "ENUM",
	TypeSystemDirectiveLocationEnumValue:            "ENUM_VALUE",
	TypeSystemDirectiveLocationInputObject:          "INPUT_OBJECT",
	TypeSystemDirectiveLocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
	TypeSystemDirectiveLocationVariableDefinition:   "VARIABLE_DEFINITION",
}

var directiveLocationsByName = func() map[string]DirectiveLocation {
	out := make(map[string]DirectiveLocation, directiveLocationCount)
	for _, location := range AllDirectiveLocations() {
		out[directiveLocationNames[location]] = location
	}
	return out
}()

// String returns the canonical spelling, e.g. FIELD_DEFINITION
func (d DirectiveLocation) String() string {
	if !d.valid() {
		return fmt.Sprintf("DirectiveLocation(%d)", int(d))
	}
	return directiveLocationNames[d]
}

// ParseDirectiveLocation is the inverse of DirectiveLocation.String
func ParseDirectiveLocation(s string) (DirectiveLocation, error) {
	location, ok := directiveLocationsByName[s]
	if !ok {
		return DirectiveLocationUnknown, fmt.Errorf("%w: %q", ErrInvalidDirectiveLocation, s)
	}
	return location, nil
}

// IsExecutable reports whether the location is inside an executable document
func (d DirectiveLocation) IsExecutable() bool {
	return d >= ExecutableDirectiveLocationQuery && d <= ExecutableDirectiveLocationInlineFragment
}

// IsTypeSystem reports whether the location is inside a type system document
func (d DirectiveLocation) IsTypeSystem() bool {
	return d >= TypeSystemDirectiveLocationSchema && d < directiveLocationCount
}

func (d DirectiveLocation) valid() bool {
	return d > DirectiveLocationUnknown && d < directiveLocationCount
}

// AllDirectiveLocations returns every known location in declaration order
func AllDirectiveLocations() []DirectiveLocation {
	out := make([]DirectiveLocation, 0, directiveLocationCount-1)
	for location := ExecutableDirectiveLocationQuery; location < directiveLocationCount; location++ {
		out = append(out, location)
	}
	return out
}

// DirectiveLocations is a set of locations.
// Iteration follows declaration order, not the order in which locations were added.
type DirectiveLocations struct {
	storage uint32
}

// NewDirectiveLocations returns a set containing locations
func NewDirectiveLocations(locations ...DirectiveLocation) DirectiveLocations {
	var out DirectiveLocations
	for _, location := range locations {
		out.Set(location)
	}
	return out
}

// Set adds location, unknown locations are ignored
func (d *DirectiveLocations) Set(location DirectiveLocation) {
	if !location.valid() {
		return
	}
	d.storage |= 1 << uint(location)
}

func (d *DirectiveLocations) Unset(location DirectiveLocation) {
	if !location.valid() {
		return
	}
	d.storage &^= 1 << uint(location)
}

func (d DirectiveLocations) Get(location DirectiveLocation) bool {
	if !location.valid() {
		return false
	}
	return d.storage&(1<<uint(location)) != 0
}

func (d DirectiveLocations) Len() int {
	return bits.OnesCount32(d.storage)
}

// Slice returns the locations in declaration order
func (d DirectiveLocations) Slice() []DirectiveLocation {
	out := make([]DirectiveLocation, 0, d.Len())
	iter := d.Iterable()
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

func (d DirectiveLocations) Iterable() DirectiveLocationIterable {
	return DirectiveLocationIterable{
		remaining: d.storage,
	}
}

type DirectiveLocationIterable struct {
	remaining uint32
	current   DirectiveLocation
}

func (d *DirectiveLocationIterable) Next() bool {
	if d.remaining == 0 {
		return false
	}
	next := bits.TrailingZeros32(d.remaining)
	d.current = DirectiveLocation(next)
	d.remaining &^= 1 << uint(next)
	return true
}

func (d *DirectiveLocationIterable) Value() DirectiveLocation {
	return d.current
}
