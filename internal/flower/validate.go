package flower

import "strings"

// New builds a Flower from raw input values.
// Every value is trimmed. If any trimmed value is empty, New returns a
// *ValidationError of kind ErrMissingRequiredField and a zero Flower.
func New(name, color, species, habitat, description string) (Flower, error) {
	record := Flower{
		Name:        strings.TrimSpace(name),
		Color:       strings.TrimSpace(color),
		Species:     strings.TrimSpace(species),
		Habitat:     strings.TrimSpace(habitat),
		Description: strings.TrimSpace(description),
	}

	if empty := record.EmptyFields(); len(empty) > 0 {
		return Flower{}, NewMissingFieldError(empty...)
	}

	return record, nil
}

// FromValues builds a Flower from values keyed by field, as read from a form.
// Missing keys count as empty.
func FromValues(values map[Field]string) (Flower, error) {
	return New(
		values[FieldName],
		values[FieldColor],
		values[FieldSpecies],
		values[FieldHabitat],
		values[FieldDescription],
	)
}

// EmptyFields returns the fields whose trimmed value is empty, in display order.
func (r Flower) EmptyFields() []Field {
	var empty []Field
	for _, f := range Fields {
		if strings.TrimSpace(r.Value(f)) == "" {
			empty = append(empty, f)
		}
	}
	return empty
}

// Validate returns a validation error if any field is blank.
func (r Flower) Validate() error {
	if empty := r.EmptyFields(); len(empty) > 0 {
		return NewMissingFieldError(empty...)
	}
	return nil
}
