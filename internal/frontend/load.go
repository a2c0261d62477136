package frontend

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/leapstack-labs/lintpass/pkg/syntax"
)

// Config controls how the host frontend loads a program.
type Config struct {
	// Path is a Go source file or a directory. A directory is loaded
	// recursively (./...).
	Path string

	// Tests includes _test.go files.
	Tests bool

	// BuildTags are passed to the build system as -tags.
	BuildTags []string

	// Env is appended to the current process environment, e.g. the
	// GOROOT selected by toolchain discovery.
	Env []string

	Logger *slog.Logger
}

// Program is a loaded, type-checked and lowered input.
type Program struct {
	Root     string
	Packages []string
	Files    []*syntax.File
}

// Roots returns the files as traversal roots.
func (p *Program) Roots() []syntax.Node {
	out := make([]syntax.Node, len(p.Files))
	for i, f := range p.Files {
		out[i] = f
	}
	return out
}

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Load parses and type-checks the Go code at cfg.Path and lowers it. Any
// host diagnostic aborts the load with an *Error; no partial program is
// returned.
func Load(ctx context.Context, cfg Config) (*Program, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, &Error{Path: cfg.Path, Errors: []string{err.Error()}}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, &Error{Path: cfg.Path, Errors: []string{err.Error()}}
	}

	pcfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Tests:   cfg.Tests,
		Env:     append(os.Environ(), cfg.Env...),
	}
	if len(cfg.BuildTags) > 0 {
		pcfg.BuildFlags = []string{"-tags=" + strings.Join(cfg.BuildTags, ",")}
	}

	pattern := "./..."
	if info.IsDir() {
		pcfg.Dir = abs
	} else {
		pcfg.Dir = filepath.Dir(abs)
		pattern = "file=" + abs
	}

	logger.Debug("loading packages", "dir", pcfg.Dir, "pattern", pattern, "tests", cfg.Tests)

	pkgs, err := packages.Load(pcfg, pattern)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &Error{Path: cfg.Path, Errors: []string{err.Error()}}
	}

	var errs []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e.Error())
		}
	})
	if len(errs) > 0 {
		return nil, &Error{Path: cfg.Path, Errors: errs}
	}
	if len(pkgs) == 0 {
		return nil, &Error{Path: cfg.Path, Errors: []string{"no Go packages found"}}
	}

	prog := lowerPackages(abs, pkgs, logger)
	if !info.IsDir() {
		prog.Files = onlyFile(prog.Files, abs)
	}
	return prog, nil
}

// onlyFile keeps the lowered file for path. Loading a single file still
// type-checks its whole package.
func onlyFile(files []*syntax.File, path string) []*syntax.File {
	want, err := os.Stat(path)
	if err != nil {
		return files
	}
	for _, f := range files {
		if got, err := os.Stat(f.Name); err == nil && os.SameFile(want, got) {
			return []*syntax.File{f}
		}
	}
	return nil
}

// lowerPackages lowers every file once. With tests enabled the same file can
// appear in several package variants; the first variant by ID wins. The
// synthesized test main package is skipped.
func lowerPackages(root string, pkgs []*packages.Package, logger *slog.Logger) *Program {
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].ID < pkgs[j].ID })

	prog := &Program{Root: root}
	seen := make(map[string]bool)
	for _, p := range pkgs {
		if strings.HasSuffix(p.ID, ".test") {
			continue
		}
		prog.Packages = append(prog.Packages, p.ID)
		for _, f := range Lower(p.Fset, p.Syntax, p.Types, p.TypesInfo) {
			if seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			prog.Files = append(prog.Files, f)
		}
	}
	sort.SliceStable(prog.Files, func(i, j int) bool { return prog.Files[i].Name < prog.Files[j].Name })

	logger.Debug("lowered program", "packages", len(prog.Packages), "files", len(prog.Files))
	return prog
}

// String implements fmt.Stringer for log output.
func (p *Program) String() string {
	return fmt.Sprintf("%s (%d packages, %d files)", p.Root, len(p.Packages), len(p.Files))
}
