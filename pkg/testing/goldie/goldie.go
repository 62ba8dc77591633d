// Package goldie wraps golden file assertions with the fixture layout used across this module.
// Golden files live in ./fixtures/<name>.golden next to the test, run tests with -update to rewrite them.
package goldie

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jensneuse/diffview"
	"github.com/sebdah/goldie/v2"
)

const fixtureDir = "fixtures"

func New(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir(fixtureDir),
		goldie.WithNameSuffix(".golden"),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)
}

// Assert compares actual against the fixture name and shows a diff on mismatch
func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()

	actual = normalizeLineEndings(actual)
	New(t).Assert(t, name, actual)
	DiffOnFailure(t, name, actual)
}

// DiffOnFailure opens a diff view of the fixture and actual once the test has failed
func DiffOnFailure(t *testing.T, name string, actual []byte) {
	t.Helper()

	if !t.Failed() {
		return
	}
	fixture, err := os.ReadFile(filepath.Join(fixtureDir, name+".golden"))
	if err != nil {
		t.Fatal(err)
	}
	diffview.NewGoland().DiffViewBytes(name, fixture, actual)
}
