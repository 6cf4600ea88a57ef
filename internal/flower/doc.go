// Package flower holds the flower record model, its validation rules, the
// seed dataset, and the in-memory list store behind the flower table.
//
// # Records
//
// A Flower has five free-form text attributes. Nothing enforces uniqueness
// and there is no identifier; records are addressed by their position in
// the list.
//
// # Store
//
// Store owns the ordered list and exposes three mutations:
//
//	store := flower.NewStore(flower.DefaultSeed())
//	store.AppendOrUpdate(rose, flower.NoTarget)    // append
//	store.AppendOrUpdate(rose, flower.TargetAt(0)) // overwrite index 0
//	store.DeleteAt(2)                              // later records shift left
//
// Deleting shifts every later record down by one, so an edit target held
// across a delete may end up pointing at a different record.
//
// # Validation
//
// New trims every value and rejects the record if any of them ends up empty:
//
//	f, err := flower.New(name, color, species, habitat, description)
//	if flower.IsMissingRequiredField(err) {
//	    // show "All fields are required!"
//	}
//
// # Seed Data
//
// DefaultSeed decodes the embedded flowers.json. DecodeSeed and
// LoadSeedFile accept JSON or YAML and degrade to an empty list when the
// document is not a sequence of records.
package flower
