package syntax

// StrippedDeclarator unwraps any parenthesized wrappers around d
func StrippedDeclarator(d Declarator) Declarator {
	for {
		p, ok := d.(*ParenthesizedDeclarator)
		if !ok || p.InnerDecltor == nil {
			return d
		}
		d = p.InnerDecltor
	}
}

// InnermostDeclarator walks the inner-declarator chain of d down to the
// identifier or abstract declarator at its core
func InnermostDeclarator(d Declarator) Declarator {
	for {
		switch dd := d.(type) {
		case *PointerDeclarator:
			if dd.InnerDecltor == nil {
				return d
			}
			d = dd.InnerDecltor
		case *ParenthesizedDeclarator:
			if dd.InnerDecltor == nil {
				return d
			}
			d = dd.InnerDecltor
		case *ArrayOrFunctionDeclarator:
			if dd.InnerDecltor == nil {
				return d
			}
			d = dd.InnerDecltor
		case *BitfieldDeclarator:
			if dd.InnerDecltor == nil {
				return d
			}
			d = dd.InnerDecltor
		default:
			return d
		}
	}
}

// DeclaratorName returns the token index of the identifier named by d, or
// InvalidTokenIndex for abstract declarators
func DeclaratorName(d Declarator) TokenIndex {
	if d == nil {
		return InvalidTokenIndex
	}
	if id, ok := InnermostDeclarator(d).(*IdentifierDeclarator); ok {
		return id.IdentIdx
	}
	return InvalidTokenIndex
}
