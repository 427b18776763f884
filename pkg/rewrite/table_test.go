// pkg/rewrite/table_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test replacement table derivation from lock state

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/shrinkwrap/pkg/lockfile"
	"github.com/arthur-debert/shrinkwrap/pkg/types"
)

func TestBuildTable(t *testing.T) {
	lock := lockfile.NewLock()
	lock.Set("assets/icons/logo.png", "assets/icons/logo.webp")
	lock.Set("assets/hero.jpg", "assets/hero.webp")

	rules := BuildTable(lock, "assets")

	assert.ElementsMatch(t, []types.ReplacementRule{
		{Old: "icons/logo.png", New: "icons/logo.webp"},
		{Old: "assets/icons/logo.png", New: "assets/icons/logo.webp"},
		{Old: "hero.jpg", New: "hero.webp"},
		{Old: "assets/hero.jpg", New: "assets/hero.webp"},
	}, rules)
}

func TestBuildTable_InputDirIsWorkDir(t *testing.T) {
	// With input "." the relative and recorded forms coincide, so each
	// entry yields exactly one rule.
	lock := lockfile.NewLock()
	lock.Set("logo.png", "logo.webp")

	rules := BuildTable(lock, ".")

	assert.Equal(t, []types.ReplacementRule{
		{Old: "logo.png", New: "logo.webp"},
	}, rules)
}

func TestBuildTable_StaleEntryOutsideInput(t *testing.T) {
	// Entries recorded under a previous input root get only the recorded
	// form.
	lock := lockfile.NewLock()
	lock.Set("old-assets/pic.png", "old-assets/pic.webp")

	rules := BuildTable(lock, "assets")

	assert.Equal(t, []types.ReplacementRule{
		{Old: "old-assets/pic.png", New: "old-assets/pic.webp"},
	}, rules)
}

func TestBuildTable_SkipsIdentityRules(t *testing.T) {
	// Converting webp to webp records an entry whose paths coincide;
	// no rule must be emitted for it.
	lock := lockfile.NewLock()
	lock.Set("assets/anim.webp", "assets/anim.webp")

	rules := BuildTable(lock, "assets")

	assert.Empty(t, rules)
}

func TestBuildTable_EmptyLock(t *testing.T) {
	rules := BuildTable(lockfile.NewLock(), "assets")
	assert.Empty(t, rules)
}
