package catalog

import "github.com/business-start/api/internal/domain"

// Merge deep-merges patch into base and returns base. The rules match the
// admin patch precedence contract:
//
//   - arrays in the patch replace arrays in the base wholesale, never
//     element-wise or by concatenation;
//   - plain objects merge key by key, recursively;
//   - scalars in the patch overwrite the base value.
//
// Patch values are deep-copied on the way in so later mutation of the patch
// cannot alias into the merged tree.
func Merge(base domain.Messages, patch domain.Messages) domain.Messages {
	if base == nil {
		base = domain.Messages{}
	}
	for key, patchValue := range patch {
		switch typedPatch := patchValue.(type) {
		case map[string]any:
			baseChild, ok := base[key].(map[string]any)
			if !ok {
				base[key] = deepCopyValue(typedPatch)
				continue
			}
			base[key] = map[string]any(Merge(baseChild, typedPatch))
		case []any:
			base[key] = deepCopyValue(typedPatch)
		default:
			base[key] = typedPatch
		}
	}
	return base
}
