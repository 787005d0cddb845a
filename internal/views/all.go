package views

import "reflect"

// All turns r into a view, the first applicable rule wins:
//   - r is already a view: r is returned unchanged.
//   - r is a pointer: a borrowing view (RefView) over the pointed range is returned.
//   - otherwise r is moved into an owning view (OwningView).
//
// The order matters: a borrowable range is never copied into an owning view.
func All[T any, P Iterator[T, P], R Range[T, P]](r R) View[T, P] {
	if v, ok := any(r).(View[T, P]); ok {
		return v
	}
	if isReference(r) {
		return RefView[T, P]{rg: r}
	}
	return Own[T, P, R](r)
}

func isReference(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Pointer
}
