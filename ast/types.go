package ast

type ConditionType string

const (
	And                  ConditionType = "and"
	Or                   ConditionType = "or"
	Equals               ConditionType = "equals"
	NotEquals            ConditionType = "not_equals"
	LessThan             ConditionType = "less_than"
	GreaterThan          ConditionType = "greater_than"
	LessThanEquals       ConditionType = "less_than_equals"
	GreaterThanEquals    ConditionType = "greater_than_equals"
	Nand                 ConditionType = "nand"
	Nor                  ConditionType = "nor"
	NotLessThan          ConditionType = "not_less_than"
	NotGreaterThan       ConditionType = "not_greater_than"
	NotLessThanEquals    ConditionType = "not_less_than_equals"
	NotGreaterThanEquals ConditionType = "not_greater_than_equals"
)

var conditionSigns = map[string]ConditionType{
	"&&":  And,
	"||":  Or,
	"<":   LessThan,
	">":   GreaterThan,
	"<=":  LessThanEquals,
	">=":  GreaterThanEquals,
	"==":  Equals,
	"!&&": Nand,
	"!||": Nor,
	"!<":  NotLessThan,
	"!>":  NotGreaterThan,
	"!<=": NotLessThanEquals,
	"!>=": NotGreaterThanEquals,
	"!==": NotEquals,
}

// ConditionTypeOf maps a condition sign such as "<=" or "!&&" to its type.
func ConditionTypeOf(sign string) (ConditionType, bool) {
	t, ok := conditionSigns[sign]
	return t, ok
}

func (t ConditionType) Sign() string {
	for sign, ct := range conditionSigns {
		if ct == t {
			return sign
		}
	}
	return string(t)
}

type ArithmeticType string

const (
	Addition       ArithmeticType = "addition"
	Subtraction    ArithmeticType = "subtraction"
	Multiplication ArithmeticType = "multiplication"
	Division       ArithmeticType = "division"
	Exponent       ArithmeticType = "exponent"
	Root           ArithmeticType = "root"
	Modulus        ArithmeticType = "modulus"
	Log10          ArithmeticType = "log10"
)

func (t ArithmeticType) Operator() string {
	switch t {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "*"
	case Division:
		return "/"
	case Exponent:
		return "^"
	case Root:
		return "'"
	case Modulus:
		return "%"
	case Log10:
		return "log"
	}
	return string(t)
}

type QuantityType string

const (
	Increment QuantityType = "increment"
	Decrement QuantityType = "decrement"
	Add       QuantityType = "add"
	Subtract  QuantityType = "subtract"
	Multiply  QuantityType = "multiply"
	Divide    QuantityType = "divide"
)

func (t QuantityType) Operator() string {
	switch t {
	case Increment:
		return "++"
	case Decrement:
		return "--"
	case Add:
		return "+="
	case Subtract:
		return "-="
	case Multiply:
		return "*="
	case Divide:
		return "/="
	}
	return string(t)
}

type DeclarationKind string

const (
	Const DeclarationKind = "const"
	Let   DeclarationKind = "let"
)
