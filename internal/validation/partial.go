package validation

// FieldApplier binds one recognized request field to the mutation that
// writes it onto an entity. Handlers declare one ordered list per entity
// type instead of repeating the if-present-mutate-count dance inline.
type FieldApplier struct {
	Name  string
	Apply func(v any) error
}

// ApplyPartial runs the applier of every recognized field present in the
// body, in declaration order, and returns how many fields were applied.
// Fields in the body that no applier recognizes are silently ignored.
//
// The first applier error aborts the whole update and is returned as-is,
// so a failed lookup inside an applier (a category id that does not
// resolve, typically) can short-circuit the request before anything is
// validated or persisted. A changed count of zero means the request had
// nothing to do.
func ApplyPartial(f Fields, appliers []FieldApplier) (int, error) {
	changed := 0
	for _, fa := range appliers {
		if !f.Has(fa.Name) {
			continue
		}
		if err := fa.Apply(f[fa.Name]); err != nil {
			return 0, err
		}
		changed++
	}
	return changed, nil
}
