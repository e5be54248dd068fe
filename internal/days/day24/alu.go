package day24

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Op is an ALU instruction mnemonic.
type Op string

const (
	Inp Op = "inp"
	Add Op = "add"
	Mul Op = "mul"
	Div Op = "div"
	Mod Op = "mod"
	Eql Op = "eql"
)

// Operand is either a register (w, x, y, z) or an immediate.
type Operand struct {
	Reg int // -1 for an immediate
	Imm int
}

func (o Operand) String() string {
	if o.Reg < 0 {
		return strconv.Itoa(o.Imm)
	}
	return string(rune('w' + o.Reg))
}

type Instr struct {
	Op Op
	A  int // register
	B  Operand
}

func (in Instr) String() string {
	if in.Op == Inp {
		return fmt.Sprintf("%s %c", in.Op, 'w'+in.A)
	}
	return fmt.Sprintf("%s %c %s", in.Op, 'w'+in.A, in.B)
}

func register(s string) (int, bool) {
	if len(s) == 1 && s[0] >= 'w' && s[0] <= 'z' {
		return int(s[0] - 'w'), true
	}
	return 0, false
}

func ParseInstr(l string) (Instr, error) {
	f := strings.Fields(l)
	if len(f) < 2 {
		return Instr{}, errors.New("too few fields")
	}
	in := Instr{Op: Op(f[0])}
	a, ok := register(f[1])
	if !ok {
		return Instr{}, fmt.Errorf("bad register %q", f[1])
	}
	in.A = a
	switch in.Op {
	case Inp:
		if len(f) != 2 {
			return Instr{}, errors.New("inp takes one operand")
		}
		return in, nil
	case Add, Mul, Div, Mod, Eql:
	default:
		return Instr{}, fmt.Errorf("unknown op %q", f[0])
	}
	if len(f) != 3 {
		return Instr{}, fmt.Errorf("%s takes two operands", in.Op)
	}
	if r, ok := register(f[2]); ok {
		in.B = Operand{Reg: r}
		return in, nil
	}
	n, err := strconv.Atoi(f[2])
	if err != nil {
		return Instr{}, fmt.Errorf("bad operand %q", f[2])
	}
	in.B = Operand{Reg: -1, Imm: n}
	return in, nil
}

// Run executes prog reading digits from input and returns the final
// registers w, x, y, z.
func Run(prog []Instr, input []int) ([4]int, error) {
	var reg [4]int
	for pc, in := range prog {
		if in.Op == Inp {
			if len(input) == 0 {
				return reg, fmt.Errorf("pc %d: input exhausted", pc)
			}
			reg[in.A], input = input[0], input[1:]
			continue
		}
		b := in.B.Imm
		if in.B.Reg >= 0 {
			b = reg[in.B.Reg]
		}
		a := &reg[in.A]
		switch in.Op {
		case Add:
			*a += b
		case Mul:
			*a *= b
		case Div:
			if b == 0 {
				return reg, fmt.Errorf("pc %d: division by zero", pc)
			}
			*a /= b
		case Mod:
			if *a < 0 || b <= 0 {
				return reg, fmt.Errorf("pc %d: mod %d %d", pc, *a, b)
			}
			*a %= b
		case Eql:
			if *a == b {
				*a = 1
			} else {
				*a = 0
			}
		}
	}
	return reg, nil
}
