package frontend

import (
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/scanner"
	gotoken "go/token"
	"go/types"

	"github.com/leapstack-labs/lintpass/pkg/syntax"
)

// ParseSource parses and type-checks a single self-contained Go file and
// lowers it. Imports are resolved against the standard library. It is the
// in-memory counterpart of Load, used for snippets and tests.
func ParseSource(filename, src string) (*syntax.File, error) {
	fset := gotoken.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.AllErrors)
	if err != nil {
		return nil, &Error{Path: filename, Errors: scannerErrors(err)}
	}

	var errs []string
	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(err error) { errs = append(errs, err.Error()) },
	}
	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}
	pkg, _ := conf.Check(file.Name.Name, fset, []*ast.File{file}, info)
	if len(errs) > 0 {
		return nil, &Error{Path: filename, Errors: errs}
	}
	return LowerFile(fset, file, pkg, info), nil
}

func scannerErrors(err error) []string {
	var list scanner.ErrorList
	if errors.As(err, &list) {
		out := make([]string, len(list))
		for i, e := range list {
			out[i] = e.Error()
		}
		return out
	}
	return []string{err.Error()}
}
