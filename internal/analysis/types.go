package analysis

// Nullability of a checked type. Platform marks types imported from the
// source language without nullability information; they conform to both
// nullable and non-nullable positions.
type Nullability int

const (
	NonNull Nullability = iota
	Nullable
	Platform
)

// Type is the flat approximation of a checked type: a name plus
// nullability. It is all the post-processing rules ever need.
type Type struct {
	Name        string
	Nullability Nullability
}

// ConformsTo reports whether a value of type t can stand where other is
// expected, under the flexible-type approximation: a Platform type on
// either side matches regardless of nullability.
func (t Type) ConformsTo(other Type) bool {
	if t.Name != other.Name {
		return false
	}
	if t.Nullability == Platform || other.Nullability == Platform {
		return true
	}
	return t.Nullability == other.Nullability
}

// IsText reports whether the type is the textual type of the target
// language.
func (t Type) IsText() bool { return t.Name == "String" }
