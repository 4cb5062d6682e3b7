package cmd

import (
	"fmt"
	"io"
	"strings"

	jww "github.com/spf13/jwalterweatherman"

	"github.com/notargets/symfem/InputParameters"
	"github.com/notargets/symfem/poly"
	"github.com/notargets/symfem/shape"
	"github.com/notargets/symfem/utils"
)

// workspace holds the named polynomials and matrices of a running problem.
type workspace struct {
	ip    *InputParameters.Problem
	polys map[string]poly.Polynomial
	mats  map[string]poly.Matrix
	pt    poly.Point
	opts  []poly.EvalOption
	el    *shape.Element
	w     io.Writer
	// Names produced by operations; these hide file definitions of either
	// kind.
	results map[string]bool
}

// RunProblem executes the operations of a problem file in order, writing
// every printed result to w.
func RunProblem(ip *InputParameters.Problem, w io.Writer) (err error) {
	ws := &workspace{
		ip:      ip,
		polys:   make(map[string]poly.Polynomial),
		mats:    make(map[string]poly.Matrix),
		opts:    ip.EvalOptions(),
		w:       w,
		results: make(map[string]bool),
	}
	if ws.pt, err = ip.EvalPoint(); err != nil {
		return
	}
	if len(ip.Element) != 0 {
		var et shape.ElementType
		if et, err = shape.NewElementType(ip.Element); err != nil {
			return
		}
		if ws.el, err = shape.NewElement(et); err != nil {
			return
		}
	}
	for i, op := range ip.Operations {
		jww.INFO.Printf("operation %d: %s %v\n", i, op.Op, op.Args)
		if err = ws.run(op); err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op.Op, err)
		}
	}
	return
}

func (ws *workspace) run(op InputParameters.Operation) (err error) {
	var (
		c rune
	)
	if len(op.Var) != 0 {
		if c, err = InputParameters.ToVar(op.Var); err != nil {
			return
		}
	}
	switch strings.ToLower(op.Op) {
	case "add", "subtract", "mult":
		var p, q poly.Polynomial
		if p, q, err = ws.twoPolys(op); err != nil {
			return
		}
		switch strings.ToLower(op.Op) {
		case "add":
			p = p.Add(q)
		case "subtract":
			p = p.Subtract(q)
		default:
			p = p.Mult(q)
		}
		return ws.storePoly(op, p)
	case "negate", "canonical", "prune", "scale", "partial", "definite":
		var p poly.Polynomial
		if p, err = ws.onePoly(op); err != nil {
			return
		}
		switch strings.ToLower(op.Op) {
		case "negate":
			p = p.Negate()
		case "canonical":
			p = p.Canonical()
		case "prune":
			p = p.Prune()
		case "scale":
			p = p.Scale(op.Value)
		case "partial":
			p = p.EvaluatePartial(ws.pt)
		default:
			if c == 0 {
				return fmt.Errorf("missing Var")
			}
			p = p.DefiniteIntegral(c, op.Lower, op.Upper)
		}
		return ws.storePoly(op, p)
	case "differentiate", "integrate":
		if c == 0 {
			return fmt.Errorf("missing Var")
		}
		return ws.calculus(op, c)
	case "multmat":
		if len(op.Args) != 2 {
			return fmt.Errorf("want 2 arguments, got %d", len(op.Args))
		}
		var A, B, R poly.Matrix
		if A, err = ws.matrix(op.Args[0]); err != nil {
			return
		}
		if B, err = ws.matrix(op.Args[1]); err != nil {
			return
		}
		if R, err = poly.MultMat(A, B); err != nil {
			return
		}
		return ws.storeMat(op, R)
	case "transpose":
		var A poly.Matrix
		if A, err = ws.oneMatrix(op); err != nil {
			return
		}
		return ws.storeMat(op, A.Transpose())
	case "evaluate":
		return ws.evaluate(op)
	case "shape", "gradient":
		if ws.el == nil {
			return fmt.Errorf("no Element in problem file")
		}
		if strings.ToLower(op.Op) == "shape" {
			return ws.storeMat(op, ws.el.ShapeMatrix())
		}
		return ws.storeMat(op, ws.el.GradientMatrix())
	case "exact", "quadrature":
		if ws.el == nil {
			return fmt.Errorf("no Element in problem file")
		}
		var (
			A poly.Matrix
			R utils.Matrix
		)
		if A, err = ws.oneMatrix(op); err != nil {
			return
		}
		if strings.ToLower(op.Op) == "exact" {
			R, err = ws.el.IntegrateExact(A)
		} else {
			R, err = ws.el.IntegrateQuadrature(A)
		}
		if err != nil {
			return
		}
		fmt.Fprintf(ws.w, "%s(%s) =\n%v\n", op.Op, op.Args[0], R)
	case "print":
		for _, name := range op.Args {
			if p, ok := ws.lookupPoly(name); ok {
				fmt.Fprintf(ws.w, "%s = %v\n", name, p)
				continue
			}
			var A poly.Matrix
			if A, err = ws.matrix(name); err != nil {
				return
			}
			fmt.Fprintf(ws.w, "%s =\n%s", name, formatMatrix(A))
		}
	default:
		return fmt.Errorf("unknown operation %q", op.Op)
	}
	return
}

// calculus applies differentiate/integrate to a polynomial or, elementwise,
// to a matrix.
func (ws *workspace) calculus(op InputParameters.Operation, c rune) (err error) {
	if len(op.Args) != 1 {
		return fmt.Errorf("want 1 argument, got %d", len(op.Args))
	}
	integrate := strings.ToLower(op.Op) == "integrate"
	if p, ok := ws.lookupPoly(op.Args[0]); ok {
		if integrate {
			return ws.storePoly(op, p.Integrate(c))
		}
		return ws.storePoly(op, p.Differentiate(c))
	}
	var A poly.Matrix
	if A, err = ws.matrix(op.Args[0]); err != nil {
		return
	}
	if integrate {
		return ws.storeMat(op, A.Integrate(c))
	}
	return ws.storeMat(op, A.Differentiate(c))
}

func (ws *workspace) evaluate(op InputParameters.Operation) (err error) {
	for _, name := range op.Args {
		if p, ok := ws.lookupPoly(name); ok {
			var v float64
			if v, err = p.Evaluate(ws.pt, ws.opts...); err != nil {
				return
			}
			fmt.Fprintf(ws.w, "evaluate(%s) = %v\n", name, v)
			continue
		}
		var (
			A poly.Matrix
			R utils.Matrix
		)
		if A, err = ws.matrix(name); err != nil {
			return
		}
		if R, err = poly.EvaluateMat(A, ws.pt, ws.opts...); err != nil {
			return
		}
		fmt.Fprintf(ws.w, "evaluate(%s) =\n%v\n", name, R)
	}
	return
}

func (ws *workspace) lookupPoly(name string) (p poly.Polynomial, ok bool) {
	if p, ok = ws.polys[name]; ok || ws.results[name] {
		return
	}
	if _, ok = ws.ip.Polynomials[name]; ok {
		p, _ = ws.ip.Polynomial(name)
		ws.polys[name] = p
	}
	return
}

func (ws *workspace) getPoly(name string) (p poly.Polynomial, err error) {
	var ok bool
	if p, ok = ws.lookupPoly(name); !ok {
		err = fmt.Errorf("polynomial %s is not defined", name)
	}
	return
}

func (ws *workspace) onePoly(op InputParameters.Operation) (p poly.Polynomial, err error) {
	if len(op.Args) != 1 {
		err = fmt.Errorf("want 1 argument, got %d", len(op.Args))
		return
	}
	return ws.getPoly(op.Args[0])
}

func (ws *workspace) twoPolys(op InputParameters.Operation) (p, q poly.Polynomial, err error) {
	if len(op.Args) != 2 {
		err = fmt.Errorf("want 2 arguments, got %d", len(op.Args))
		return
	}
	if p, err = ws.getPoly(op.Args[0]); err != nil {
		return
	}
	q, err = ws.getPoly(op.Args[1])
	return
}

// matrix resolves a matrix by name, building file-defined matrices from
// their polynomial names on first use.
func (ws *workspace) matrix(name string) (A poly.Matrix, err error) {
	var ok bool
	if A, ok = ws.mats[name]; ok {
		return
	}
	rows, ok := ws.ip.Matrices[name]
	if !ok || ws.results[name] {
		err = fmt.Errorf("matrix %s is not defined", name)
		return
	}
	prows := make([][]poly.Polynomial, len(rows))
	for i, row := range rows {
		prows[i] = make([]poly.Polynomial, len(row))
		for j, pname := range row {
			if prows[i][j], err = ws.getPoly(pname); err != nil {
				return nil, fmt.Errorf("matrix %s: %w", name, err)
			}
		}
	}
	if A, err = poly.NewMatrix(prows...); err != nil {
		return nil, fmt.Errorf("matrix %s: %w", name, err)
	}
	ws.mats[name] = A
	return
}

func (ws *workspace) oneMatrix(op InputParameters.Operation) (A poly.Matrix, err error) {
	if len(op.Args) != 1 {
		err = fmt.Errorf("want 1 argument, got %d", len(op.Args))
		return
	}
	return ws.matrix(op.Args[0])
}

func (ws *workspace) storePoly(op InputParameters.Operation, p poly.Polynomial) error {
	if len(op.Result) == 0 {
		fmt.Fprintf(ws.w, "%s(%s) = %v\n", op.Op, strings.Join(op.Args, ", "), p)
		return nil
	}
	ws.polys[op.Result] = p
	ws.results[op.Result] = true
	delete(ws.mats, op.Result)
	jww.INFO.Printf("%s = %v\n", op.Result, p)
	return nil
}

func (ws *workspace) storeMat(op InputParameters.Operation, A poly.Matrix) error {
	if len(op.Result) == 0 {
		fmt.Fprintf(ws.w, "%s(%s) =\n%s", op.Op, strings.Join(op.Args, ", "), formatMatrix(A))
		return nil
	}
	ws.mats[op.Result] = A
	ws.results[op.Result] = true
	delete(ws.polys, op.Result)
	return nil
}

func formatMatrix(A poly.Matrix) string {
	var b strings.Builder
	for _, row := range A {
		parts := make([]string, len(row))
		for j, p := range row {
			parts[j] = p.String()
		}
		fmt.Fprintf(&b, "  [ %s ]\n", strings.Join(parts, " | "))
	}
	return b.String()
}
