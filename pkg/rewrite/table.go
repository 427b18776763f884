package rewrite

import (
	"github.com/arthur-debert/shrinkwrap/pkg/conversion"
	"github.com/arthur-debert/shrinkwrap/pkg/lockfile"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

// BuildTable derives the full replacement table from the lock state in its
// final form. Rebuilding from the lock rather than from this run's decisions
// guarantees completeness: references to assets converted in earlier runs,
// whose source no longer exists under the input root, are still rewritten.
//
// Each entry yields a rule in the input-root-relative form and, when the
// recorded path differs from that form, a second rule in the
// working-directory-relative form, so references written with either
// convention are covered.
func BuildTable(lock *lockfile.Lock, inputDir string) []types.ReplacementRule {
	rules := make([]types.ReplacementRule, 0, lock.Len()*2)
	seen := make(map[types.ReplacementRule]bool)

	add := func(rule types.ReplacementRule) {
		if rule.Old == rule.New || seen[rule] {
			return
		}
		seen[rule] = true
		rules = append(rules, rule)
	}

	for _, original := range lock.Originals() {
		target, _ := lock.Get(original)

		relOld, underInput := conversion.RelToDir(original, inputDir)
		if underInput {
			relNew, _ := conversion.RelToDir(target, inputDir)
			add(types.ReplacementRule{Old: relOld, New: relNew})
			if original != relOld {
				add(types.ReplacementRule{Old: original, New: target})
			}
		} else {
			// A lock entry from an earlier run whose original never lived
			// under the current input root; only the recorded form applies.
			add(types.ReplacementRule{Old: original, New: target})
		}
	}

	return rules
}
