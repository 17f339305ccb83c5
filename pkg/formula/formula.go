// Package formula avalia expressões aritméticas fechadas sobre um conjunto fixo de variáveis.
// As expressões são árvores serializáveis em JSON; não há avaliação de código arbitrário.
package formula

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Kind identifica o tipo do nó da expressão
type Kind string

const (
	KindNumber   Kind = "num"
	KindVariable Kind = "var"
	KindAdd      Kind = "add"
	KindSub      Kind = "sub"
	KindMul      Kind = "mul"
	KindDiv      Kind = "div"
	KindNeg      Kind = "neg"
)

// Variáveis conhecidas pelo formulário de pedidos manuais
const (
	VarOrderValue  = "orderValue"
	VarGrossMargin = "grossMargin"
	VarGrossProfit = "grossProfit"
)

// OrderVariables é o conjunto de variáveis aceito nas fórmulas de pedido
var OrderVariables = []string{VarOrderValue, VarGrossMargin, VarGrossProfit}

// MaxDepth limita o aninhamento da árvore
const MaxDepth = 32

var (
	ErrUnknownKind     = errors.New("tipo de nó desconhecido")
	ErrUnknownVariable = errors.New("variável desconhecida")
	ErrInvalidArity    = errors.New("quantidade de argumentos inválida")
	ErrTooDeep         = errors.New("expressão muito aninhada")
)

// Expr é um nó da expressão
type Expr struct {
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value,omitempty"`
	Name  string  `json:"name,omitempty"`
	Args  []Expr  `json:"args,omitempty"`
}

func Num(v float64) Expr { return Expr{Kind: KindNumber, Value: v} }
func Var(name string) Expr { return Expr{Kind: KindVariable, Name: name} }
func Add(args ...Expr) Expr { return Expr{Kind: KindAdd, Args: args} }
func Sub(a, b Expr) Expr { return Expr{Kind: KindSub, Args: []Expr{a, b}} }
func Mul(args ...Expr) Expr { return Expr{Kind: KindMul, Args: args} }
func Div(a, b Expr) Expr { return Expr{Kind: KindDiv, Args: []Expr{a, b}} }
func Neg(a Expr) Expr { return Expr{Kind: KindNeg, Args: []Expr{a}} }

// GrossProfit é a fórmula do lucro bruto de um pedido: valor * margem / 100
var GrossProfit = Div(Mul(Var(VarOrderValue), Var(VarGrossMargin)), Num(100))

// Validate confere tipos, aridade, profundidade e variáveis permitidas
func (e Expr) Validate(allowed []string) error {
	set := make(map[string]bool, len(allowed))
	for _, name := range allowed {
		set[name] = true
	}

	return e.validate(set, 0)
}

func (e Expr) validate(allowed map[string]bool, depth int) error {
	if depth > MaxDepth {
		return ErrTooDeep
	}

	switch e.Kind {
	case KindNumber:
		return nil
	case KindVariable:
		if !allowed[e.Name] {
			return errors.Wrapf(ErrUnknownVariable, "%q", e.Name)
		}
		return nil
	case KindAdd, KindMul:
		if len(e.Args) < 1 {
			return errors.Wrapf(ErrInvalidArity, "%s", e.Kind)
		}
	case KindSub, KindDiv:
		if len(e.Args) != 2 {
			return errors.Wrapf(ErrInvalidArity, "%s", e.Kind)
		}
	case KindNeg:
		if len(e.Args) != 1 {
			return errors.Wrapf(ErrInvalidArity, "%s", e.Kind)
		}
	default:
		return errors.Wrapf(ErrUnknownKind, "%q", e.Kind)
	}

	for _, arg := range e.Args {
		if err := arg.validate(allowed, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Eval calcula a expressão com aritmética decimal. Divisão por zero resulta em zero
// e variáveis ausentes valem zero; a expressão deve ser validada antes.
func (e Expr) Eval(vars map[string]decimal.Decimal) decimal.Decimal {
	switch e.Kind {
	case KindNumber:
		return decimal.NewFromFloat(e.Value)
	case KindVariable:
		return vars[e.Name]
	case KindAdd:
		total := decimal.Zero
		for _, arg := range e.Args {
			total = total.Add(arg.Eval(vars))
		}
		return total
	case KindMul:
		if len(e.Args) == 0 {
			return decimal.Zero
		}
		total := decimal.NewFromInt(1)
		for _, arg := range e.Args {
			total = total.Mul(arg.Eval(vars))
		}
		return total
	case KindSub:
		if len(e.Args) != 2 {
			return decimal.Zero
		}
		return e.Args[0].Eval(vars).Sub(e.Args[1].Eval(vars))
	case KindDiv:
		if len(e.Args) != 2 {
			return decimal.Zero
		}
		divisor := e.Args[1].Eval(vars)
		if divisor.IsZero() {
			return decimal.Zero
		}
		return e.Args[0].Eval(vars).Div(divisor)
	case KindNeg:
		if len(e.Args) != 1 {
			return decimal.Zero
		}
		return e.Args[0].Eval(vars).Neg()
	default:
		return decimal.Zero
	}
}

// Evaluate valida a expressão contra as variáveis informadas e devolve o resultado em float64
func Evaluate(e Expr, vars map[string]float64) (float64, error) {
	allowed := make([]string, 0, len(vars))
	values := make(map[string]decimal.Decimal, len(vars))
	for name, value := range vars {
		allowed = append(allowed, name)
		values[name] = decimal.NewFromFloat(value)
	}

	if err := e.Validate(allowed); err != nil {
		return 0, err
	}

	return e.Eval(values).InexactFloat64(), nil
}

// String devolve a expressão em notação infixa, usada em logs e respostas
func (e Expr) String() string {
	switch e.Kind {
	case KindNumber:
		return decimal.NewFromFloat(e.Value).String()
	case KindVariable:
		return e.Name
	case KindNeg:
		if len(e.Args) == 1 {
			return "-" + e.Args[0].String()
		}
	case KindAdd, KindSub, KindMul, KindDiv:
		op := map[Kind]string{KindAdd: " + ", KindSub: " - ", KindMul: " * ", KindDiv: " / "}[e.Kind]
		out := ""
		for i, arg := range e.Args {
			if i > 0 {
				out += op
			}
			out += arg.String()
		}
		return "(" + out + ")"
	}

	return fmt.Sprintf("<%s>", e.Kind)
}
