package combinator

import "github.com/ncellar/autumn4/parse"

type leftAssoc struct {
	left             parse.Parser
	operator         parse.Parser
	right            parse.Parser
	operatorRequired bool
	step             Action
}

// LeftAssoc matches a left-associative binary expression:
// left (operator right)*.
//
// After each successful right-hand side, step is invoked with the
// stack values pushed beyond the stack size recorded at entry (drained
// from the stack) plus the entry position and stack size. The step
// typically folds those values into one and pushes it back, building a
// left-associative result without right recursion. A nil step takes no
// action.
//
// If operatorRequired is set, at least one operator must match;
// otherwise a lone left-hand side is admissible. An operator whose
// right-hand side fails is not consumed.
func LeftAssoc(left, operator, right parse.Parser, operatorRequired bool, step Action) parse.Parser {
	return &leftAssoc{
		left:             left,
		operator:         operator,
		right:            right,
		operatorRequired: operatorRequired,
		step:             step,
	}
}

func (la *leftAssoc) Parse(p *parse.Parse) bool {
	return parse.Attempt(p, func() bool {
		pos0 := p.Pos
		size0 := p.StackSize()
		count := 0

		if !la.left.Parse(p) {
			return false
		}

		for {
			pos1 := p.Pos
			log1 := p.LogSize()
			if !la.operator.Parse(p) {
				break
			}
			if !la.right.Parse(p) {
				p.Pos = pos1
				p.Rollback(log1)
				break
			}
			count++
			if la.step != nil {
				la.step(p, p.PopFrom(size0), pos0, size0)
			}
		}

		return count > 0 || !la.operatorRequired
	})
}

// Children returns left, operator, right in that order.
func (la *leftAssoc) Children() []parse.Parser {
	return []parse.Parser{la.left, la.operator, la.right}
}

func (la *leftAssoc) String() string {
	if la.operatorRequired {
		return "left_assoc(operator_required)"
	}
	return "left_assoc"
}
