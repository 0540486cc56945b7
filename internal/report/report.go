// Package report renders a Markdown project report from a Go cover profile
// and a CPU profile.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/pprof/profile"
	"golang.org/x/tools/cover"
)

// FileCoverage is statement coverage for one source file.
type FileCoverage struct {
	File       string
	Statements int
	Covered    int
}

// Percent returns covered statements as a percentage.
func (f FileCoverage) Percent() float64 {
	if f.Statements == 0 {
		return 0
	}
	return float64(f.Covered) / float64(f.Statements) * 100
}

// Coverage summarises a cover profile.
type Coverage struct {
	Files      []FileCoverage
	Statements int
	Covered    int
}

// Percent returns total statement coverage as a percentage.
func (c Coverage) Percent() float64 {
	return FileCoverage{Statements: c.Statements, Covered: c.Covered}.Percent()
}

// ReadCoverage parses a profile written by `go test -coverprofile`. A missing
// file yields an empty Coverage and no error.
func ReadCoverage(path string) (Coverage, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Coverage{}, nil
	}
	profiles, err := cover.ParseProfiles(path)
	if err != nil {
		return Coverage{}, fmt.Errorf("parse cover profile: %w", err)
	}

	var cov Coverage
	for _, p := range profiles {
		fc := FileCoverage{File: p.FileName}
		for _, b := range p.Blocks {
			fc.Statements += b.NumStmt
			if b.Count > 0 {
				fc.Covered += b.NumStmt
			}
		}
		cov.Statements += fc.Statements
		cov.Covered += fc.Covered
		cov.Files = append(cov.Files, fc)
	}
	sort.Slice(cov.Files, func(i, j int) bool { return cov.Files[i].File < cov.Files[j].File })
	return cov, nil
}

// FuncStat is CPU time attributed to one function.
type FuncStat struct {
	Name string
	File string
	// Flat is time spent in the function itself, Cum includes callees.
	Flat    time.Duration
	Cum     time.Duration
	Samples int64
}

// TopFunctions returns the n functions with the highest cumulative time in a
// CPU profile. A missing file yields nil and no error.
func TopFunctions(path string, n int) ([]FuncStat, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := profile.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse cpu profile: %w", err)
	}
	return topFunctions(p, n), nil
}

func topFunctions(p *profile.Profile, n int) []FuncStat {
	valueIdx := len(p.SampleType) - 1
	for i, st := range p.SampleType {
		if st.Unit == "nanoseconds" {
			valueIdx = i
		}
	}
	if valueIdx < 0 {
		return nil
	}

	stats := map[string]*FuncStat{}
	get := func(fn *profile.Function) *FuncStat {
		s, ok := stats[fn.Name]
		if !ok {
			s = &FuncStat{Name: fn.Name, File: fn.Filename}
			stats[fn.Name] = s
		}
		return s
	}

	for _, sample := range p.Sample {
		v := time.Duration(sample.Value[valueIdx])
		seen := map[string]bool{}
		for li, loc := range sample.Location {
			for k, line := range loc.Line {
				if line.Function == nil {
					continue
				}
				s := get(line.Function)
				// The first line of the first location is the leaf frame.
				if li == 0 && k == 0 {
					s.Flat += v
					s.Samples++
				}
				if !seen[s.Name] {
					seen[s.Name] = true
					s.Cum += v
				}
			}
		}
	}

	out := make([]FuncStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cum != out[j].Cum {
			return out[i].Cum > out[j].Cum
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Input collects everything a report shows.
type Input struct {
	Generated   time.Time
	CoverPath   string
	ProfilePath string
	Coverage    Coverage
	Top         []FuncStat
}

// Write renders the report as Markdown.
func Write(w io.Writer, in Input) error {
	var sb strings.Builder
	sb.WriteString("# Project report (LCS similarity)\n\n")
	sb.WriteString("## Overview\n")
	fmt.Fprintf(&sb, "- Generated: %s\n", in.Generated.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "- Total coverage: %.1f%%\n", in.Coverage.Percent())
	fmt.Fprintf(&sb, "- Cover profile: %s\n", in.CoverPath)
	fmt.Fprintf(&sb, "- CPU profile: %s\n\n", in.ProfilePath)

	sb.WriteString("## Coverage by file\n")
	if len(in.Coverage.Files) == 0 {
		sb.WriteString("No coverage data, generate the cover profile first.\n\n")
	} else {
		sb.WriteString("| File | Statements | Covered | Coverage |\n")
		sb.WriteString("|------|-----------:|--------:|---------:|\n")
		for _, f := range in.Coverage.Files {
			fmt.Fprintf(&sb, "| %s | %d | %d | %.1f%% |\n", f.File, f.Statements, f.Covered, f.Percent())
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "## Hottest functions (top %d by cumulative time)\n", len(in.Top))
	if len(in.Top) == 0 {
		sb.WriteString("No profile data, generate the CPU profile first.\n\n")
	} else {
		sb.WriteString("| # | Function | Samples | flat(s) | cum(s) |\n")
		sb.WriteString("|---:|------|------:|----------:|----------:|\n")
		for i, f := range in.Top {
			fmt.Fprintf(&sb, "| %d | %s | %d | %.6f | %.6f |\n", i+1, f.Name, f.Samples, f.Flat.Seconds(), f.Cum.Seconds())
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Reproducing\n")
	sb.WriteString("```bash\n")
	fmt.Fprintf(&sb, "go test -coverprofile=%s ./...\n", in.CoverPath)
	fmt.Fprintf(&sb, "go test -run=NONE -bench=. -cpuprofile=%s ./benchmark\n", in.ProfilePath)
	fmt.Fprintf(&sb, "go tool pprof -top %s\n", in.ProfilePath)
	sb.WriteString("```\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
