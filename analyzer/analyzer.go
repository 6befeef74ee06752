package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// continuationMethods are the registration points whose function arguments
// run on a dispatcher turn.
var continuationMethods = map[string]bool{
	"OnComplete": true,
	"OnData":     true,
	"Defer":      true,
}

var Analyzer = New()

func New() *analysis.Analyzer {
	c := &checker{}

	a := &analysis.Analyzer{
		Name:     "gofutures",
		Doc:      "Checks for common errors in future continuations",
		Run:      c.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	a.Flags.BoolVar(&c.checkSleep, "checksleep", true, "report time.Sleep calls inside continuations")

	return a
}

type checker struct {
	checkSleep bool
}

func (c *checker) run(pass *analysis.Pass) (interface{}, error) {
	inspector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}

	inspector.Preorder(nodeFilter, func(node ast.Node) {
		call := node.(*ast.CallExpr)

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}

		if !continuationMethods[sel.Sel.Name] {
			return
		}

		for _, arg := range call.Args {
			fn, ok := arg.(*ast.FuncLit)
			if !ok {
				continue
			}

			c.checkContinuation(pass, fn)
		}
	})

	return nil, nil
}

func (c *checker) checkContinuation(pass *analysis.Pass, fn *ast.FuncLit) {
	ast.Inspect(fn.Body, func(node ast.Node) bool {
		switch node := node.(type) {
		// Check for `go` statements
		case *ast.GoStmt:
			pass.Reportf(node.Pos(), "use Defer instead of `go` in continuations")
			return false

		// Check for blocking channel operations
		case *ast.SendStmt:
			pass.Reportf(node.Pos(), "blocking channel send is not allowed in continuations")

		case *ast.UnaryExpr:
			if node.Op == token.ARROW {
				pass.Reportf(node.Pos(), "blocking channel receive is not allowed in continuations")
			}

		case *ast.SelectStmt:
			for _, clause := range node.Body.List {
				if comm, ok := clause.(*ast.CommClause); ok && comm.Comm == nil {
					// A default case makes the select non-blocking
					return false
				}
			}

			pass.Reportf(node.Pos(), "blocking select is not allowed in continuations")
			return false

		case *ast.RangeStmt:
			t := pass.TypesInfo.TypeOf(node.X)
			if t == nil {
				return true
			}

			if _, ok := t.(*types.Chan); !ok {
				return true
			}

			pass.Reportf(node.Pos(), "ranging over a channel is not allowed in continuations")

		case *ast.CallExpr:
			if !c.checkSleep {
				return true
			}

			sel, ok := node.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			if x, ok := sel.X.(*ast.Ident); ok && x.Name == "time" && sel.Sel.Name == "Sleep" {
				pass.Reportf(node.Pos(), "use Delay instead of `time.Sleep` in continuations")
			}
		}

		return true
	})
}
