package flower

import "strings"

// Flower is a single record in the flower table.
// Records carry no identifier; their position in the list is the only address.
type Flower struct {
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color" yaml:"color"`
	Species     string `json:"species" yaml:"species"`
	Habitat     string `json:"habitat" yaml:"habitat"`
	Description string `json:"description" yaml:"description"`
}

// Field identifies one of the five record attributes.
type Field int

const (
	FieldName Field = iota
	FieldColor
	FieldSpecies
	FieldHabitat
	FieldDescription
)

// Fields lists every record attribute in display order.
var Fields = []Field{FieldName, FieldColor, FieldSpecies, FieldHabitat, FieldDescription}

// String returns the column label for the field
func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldColor:
		return "Color"
	case FieldSpecies:
		return "Species"
	case FieldHabitat:
		return "Habitat"
	case FieldDescription:
		return "Description"
	default:
		return "Unknown"
	}
}

// Key returns the lowercase attribute name used in seed files.
func (f Field) Key() string {
	return strings.ToLower(f.String())
}

// Value returns the value of the given field.
func (r Flower) Value(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldColor:
		return r.Color
	case FieldSpecies:
		return r.Species
	case FieldHabitat:
		return r.Habitat
	case FieldDescription:
		return r.Description
	default:
		return ""
	}
}

// Values returns all five field values in display order.
func (r Flower) Values() []string {
	values := make([]string, 0, len(Fields))
	for _, f := range Fields {
		values = append(values, r.Value(f))
	}
	return values
}

// EditTarget is the index of the record the form is editing, or NoTarget.
type EditTarget int

// NoTarget means the form adds new records instead of updating one.
const NoTarget EditTarget = -1

// IsSet reports whether the target points at a record.
func (t EditTarget) IsSet() bool {
	return t >= 0
}

// Index returns the target as a plain list index.
func (t EditTarget) Index() int {
	return int(t)
}

// TargetAt returns an edit target for index i. Negative indexes map to NoTarget.
func TargetAt(i int) EditTarget {
	if i < 0 {
		return NoTarget
	}
	return EditTarget(i)
}
