package stromboli

// MergeRoutes reconciles two versions of a route tree that diverged because
// of interleaved parameter updates, constrained to the single target key.
//
// prev and next are the top-level route lists of the two versions; each
// top-level route is itself a child navigator with its own Routes list. The
// result has prev's length and ordering. For every top-level route, the
// child whose key equals targetKey is replaced with the same-keyed child
// from next (when one exists at the matching index); every other child
// passes through from prev untouched. A next list shorter than prev means
// the missing branches were not recomputed, so those prev branches are kept
// whole.
//
// This guarantees that a parameter update aimed at one key can never clobber
// an in-flight change to a different key that was already committed into
// prev.
func MergeRoutes(targetKey string, prev, next []*Route) []*Route {
	merged := make([]*Route, len(prev))
	for i, branch := range prev {
		if i >= len(next) {
			merged[i] = branch
			continue
		}
		children := make([]*Route, len(branch.Routes))
		for j, child := range branch.Routes {
			if child.Key == targetKey {
				if replacement := FindRoute(next[i].Routes, targetKey); replacement != nil {
					children[j] = replacement
					continue
				}
			}
			children[j] = child
		}
		merged[i] = branch.WithRoutes(children, branch.Index)
	}
	return merged
}
