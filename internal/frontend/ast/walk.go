package ast

// Children returns the direct child nodes of n in source order.
// Annotation slots are not followed.
func Children(n Node) []Node {
	var out []Node
	add := func(children ...Node) {
		for _, c := range children {
			if c != nil && !isNilNode(c) {
				out = append(out, c)
			}
		}
	}

	switch n := n.(type) {
	case *Program:
		add(n.Command)
	case *SequentialCommand:
		for _, c := range n.Commands {
			add(c)
		}
	case *AssignCommand:
		add(n.Identifier, n.Expression)
	case *CallCommand:
		add(n.Identifier, n.Parameter)
	case *QuickIfCommand:
		add(n.Guard, n.Command)
	case *IfCommand:
		add(n.Guard, n.Then, n.Else)
	case *WhileCommand:
		add(n.Guard, n.Body)
	case *LoopCommand:
		add(n.Pre, n.Guard, n.Post)
	case *LetCommand:
		add(n.Declaration, n.Body)
	case *ConstDecl:
		add(n.Identifier, n.Expression)
	case *VarDecl:
		add(n.Identifier, n.TypeDenoter)
	case *SequentialDecl:
		for _, d := range n.Declarations {
			add(d)
		}
	case *TypeDenoter:
		add(n.Identifier)
	case *IdentifierExpr:
		add(n.Identifier)
	case *CallExpr:
		add(n.Identifier, n.Parameter)
	case *UnaryExpr:
		add(n.Operator, n.Operand)
	case *BinaryExpr:
		add(n.Left, n.Operator, n.Right)
	case *ValueParam:
		add(n.Expression)
	case *VarParam:
		add(n.Identifier)
	}
	return out
}

// isNilNode catches typed nil pointers stored in interface fields.
func isNilNode(n Node) bool {
	switch n := n.(type) {
	case *Identifier:
		return n == nil
	case *Operator:
		return n == nil
	case *TypeDenoter:
		return n == nil
	}
	return false
}

// Inspect traverses the tree depth-first in source order, calling f for each node.
// If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// CountInvalid returns how many Invalid placeholders the tree contains.
func CountInvalid(n Node) int {
	count := 0
	Inspect(n, func(node Node) bool {
		if _, ok := node.(*Invalid); ok {
			count++
		}
		return true
	})
	return count
}
