package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCoverage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.out")
	require.NoError(t, os.WriteFile(path, []byte(`mode: set
example.com/m/a.go:1.1,3.2 3 1
example.com/m/a.go:4.1,6.2 1 0
example.com/m/b.go:1.1,2.2 4 1
`), 0o644))

	cov, err := ReadCoverage(path)
	require.NoError(t, err)
	require.Len(t, cov.Files, 2)
	assert.Equal(t, "example.com/m/a.go", cov.Files[0].File)
	assert.InDelta(t, 75.0, cov.Files[0].Percent(), 1e-9)
	assert.Equal(t, 8, cov.Statements)
	assert.Equal(t, 7, cov.Covered)
	assert.InDelta(t, 87.5, cov.Percent(), 1e-9)
}

func TestReadCoverageMissing(t *testing.T) {
	cov, err := ReadCoverage(filepath.Join(t.TempDir(), "none.out"))
	require.NoError(t, err)
	assert.Zero(t, cov.Percent())
}

func testProfile() *profile.Profile {
	compute := &profile.Function{ID: 1, Name: "lcs.compute", Filename: "engine.go"}
	safe := &profile.Function{ID: 2, Name: "lcs.SafeComputeLength", Filename: "guard.go"}
	main := &profile.Function{ID: 3, Name: "main.main", Filename: "main.go"}

	leaf := &profile.Location{ID: 1, Line: []profile.Line{{Function: compute}}}
	mid := &profile.Location{ID: 2, Line: []profile.Line{{Function: safe}}}
	root := &profile.Location{ID: 3, Line: []profile.Line{{Function: main}}}

	return &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "samples", Unit: "count"},
			{Type: "cpu", Unit: "nanoseconds"},
		},
		Sample: []*profile.Sample{
			{Location: []*profile.Location{leaf, mid, root}, Value: []int64{3, 30_000_000}},
			{Location: []*profile.Location{mid, root}, Value: []int64{1, 10_000_000}},
		},
		Location: []*profile.Location{leaf, mid, root},
		Function: []*profile.Function{compute, safe, main},
	}
}

func TestTopFunctions(t *testing.T) {
	top := topFunctions(testProfile(), 10)
	require.Len(t, top, 3)

	assert.Equal(t, "lcs.SafeComputeLength", top[0].Name)
	assert.Equal(t, 40*time.Millisecond, top[0].Cum)
	assert.Equal(t, 10*time.Millisecond, top[0].Flat)

	assert.Equal(t, "main.main", top[1].Name)
	assert.Equal(t, "lcs.compute", top[2].Name)
	assert.Equal(t, 30*time.Millisecond, top[2].Flat)

	assert.Len(t, topFunctions(testProfile(), 1), 1)
}

func TestTopFunctionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.prof")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, testProfile().Write(f))
	require.NoError(t, f.Close())

	top, err := TopFunctions(path, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "lcs.SafeComputeLength", top[0].Name)

	top, err = TopFunctions(filepath.Join(t.TempDir(), "none.prof"), 2)
	require.NoError(t, err)
	assert.Nil(t, top)
}

func TestWrite(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, Input{
		Generated:   time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
		CoverPath:   "coverage.out",
		ProfilePath: "cpu.prof",
		Coverage: Coverage{
			Files:      []FileCoverage{{File: "a.go", Statements: 4, Covered: 3}},
			Statements: 4,
			Covered:    3,
		},
		Top: topFunctions(testProfile(), 10),
	})
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "Generated: 2026-01-02 03:04")
	assert.Contains(t, out, "Total coverage: 75.0%")
	assert.Contains(t, out, "| a.go | 4 | 3 | 75.0% |")
	assert.Contains(t, out, "| 1 | lcs.SafeComputeLength | 1 | 0.010000 | 0.040000 |")
}

func TestWriteEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, Input{CoverPath: "c.out", ProfilePath: "p.prof"}))
	assert.Contains(t, sb.String(), "No coverage data")
	assert.Contains(t, sb.String(), "No profile data")
}
