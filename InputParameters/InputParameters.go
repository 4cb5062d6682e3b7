package InputParameters

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/ghodss/yaml"

	"github.com/notargets/symfem/poly"
)

// Operation is one step of a problem file. Args name polynomials or
// matrices defined earlier in the file or produced by earlier steps.
type Operation struct {
	Op     string   `json:"Op"`
	Args   []string `json:"Args"`
	Var    string   `json:"Var"`
	Value  float64  `json:"Value"`
	Lower  float64  `json:"Lower"`
	Upper  float64  `json:"Upper"`
	Result string   `json:"Result"`
}

// Parameters obtained from the YAML problem file. The YAML is converted to
// JSON before decoding, so the tags are json tags. Single letter keys such as
// y and n must be quoted or YAML reads them as booleans.
type Problem struct {
	Title       string                        `json:"Title"`
	Polynomials map[string]map[string]float64 `json:"Polynomials"` // Name -> monomial key -> coefficient
	Matrices    map[string][][]string         `json:"Matrices"`    // Name -> rows of polynomial names
	Point       map[string]float64            `json:"Point"`
	Strict      bool                          `json:"Strict"`
	Element     string                        `json:"Element"`
	Operations  []Operation                   `json:"Operations"`
}

func (ip *Problem) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.Validate()
}

// Validate checks the parts of the file that can be checked without running
// the operations.
func (ip *Problem) Validate() error {
	for name, rows := range ip.Matrices {
		for i, row := range rows {
			if len(row) != len(rows[0]) {
				return fmt.Errorf("matrix %s: row %d has %d entries, want %d: %w",
					name, i, len(row), len(rows[0]), poly.ErrDimensionMismatch)
			}
		}
	}
	if _, err := ip.EvalPoint(); err != nil {
		return err
	}
	for i, op := range ip.Operations {
		if len(op.Op) == 0 {
			return fmt.Errorf("operation %d: missing Op", i)
		}
		if len(op.Var) != 0 {
			if _, err := ToVar(op.Var); err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
		}
	}
	return nil
}

// ToVar converts a single character variable name into its identifier.
func ToVar(name string) (c rune, err error) {
	if utf8.RuneCountInString(name) != 1 {
		err = fmt.Errorf("variable %q must be a single character", name)
		return
	}
	c, _ = utf8.DecodeRuneInString(name)
	return
}

// Polynomial builds the named polynomial from its term list.
func (ip *Problem) Polynomial(name string) (p poly.Polynomial, err error) {
	terms, ok := ip.Polynomials[name]
	if !ok {
		err = fmt.Errorf("polynomial %s is not defined", name)
		return
	}
	var ts []poly.Term
	for key, coeff := range terms {
		ts = append(ts, poly.Term{Key: poly.Key(key), Coeff: coeff})
	}
	p = poly.New(ts...)
	return
}

// EvalPoint converts the Point section into an evaluation point.
func (ip *Problem) EvalPoint() (pt poly.Point, err error) {
	pt = make(poly.Point, len(ip.Point))
	for name, val := range ip.Point {
		var c rune
		if c, err = ToVar(name); err != nil {
			return nil, fmt.Errorf("point: %w", err)
		}
		pt[c] = val
	}
	return
}

func (ip *Problem) EvalOptions() (opts []poly.EvalOption) {
	if ip.Strict {
		opts = append(opts, poly.WithStrict())
	}
	return
}

func (ip *Problem) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%v]\t\t\t= Strict\n", ip.Strict)
	if len(ip.Element) != 0 {
		fmt.Fprintf(w, "[%s]\t\t\t= Element\n", ip.Element)
	}
	for _, name := range sortedKeys(ip.Polynomials) {
		p, _ := ip.Polynomial(name)
		fmt.Fprintf(w, "Polynomials[%s] = %v\n", name, p)
	}
	for _, name := range sortedKeys(ip.Matrices) {
		fmt.Fprintf(w, "Matrices[%s] = %v\n", name, ip.Matrices[name])
	}
	for _, name := range sortedKeys(ip.Point) {
		fmt.Fprintf(w, "Point[%s] = %v\n", name, ip.Point[name])
	}
	fmt.Fprintf(w, "[%d]\t\t\t\t= Operations\n", len(ip.Operations))
}

func sortedKeys[T any](m map[string]T) (keys []string) {
	keys = make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
