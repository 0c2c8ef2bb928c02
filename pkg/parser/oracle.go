package parser

import "github.com/quillc/quill-cc/pkg/lexer"

// identifierRole is the oracle's verdict on an identifier appearing in
// a declaration-specifier context
type identifierRole int

const (
	roleTypedefName identifierRole = iota
	roleDeclarator
)

// determineIdentifierRole decides whether the current identifier token
// names a type or names the entity being declared. It scans forward
// from the token after the candidate, tracking parenthesis depth and
// whether a type specifier has been seen on the scanned path. The
// cursor is never moved.
func (p *Parser) determineIdentifierRole() identifierRole {
	parenCnt := 0
	seenType := false
	for la := 2; ; la++ {
		switch tok := p.cur.peek(la); tok.Kind {
		case lexer.TokenIdent:
			if seenType {
				return roleDeclarator
			}
			if parenCnt == 0 {
				return roleTypedefName
			}
			seenType = true
		case lexer.TokenVoid, lexer.TokenChar_, lexer.TokenShort, lexer.TokenInt_,
			lexer.TokenLong, lexer.TokenFloat_, lexer.TokenDouble, lexer.TokenSigned,
			lexer.TokenUnsigned, lexer.TokenBool, lexer.TokenComplex, lexer.TokenImaginary,
			lexer.TokenStruct, lexer.TokenUnion, lexer.TokenEnum,
			lexer.TokenWCharT, lexer.TokenChar16T, lexer.TokenChar32T:
			if seenType {
				return roleDeclarator
			}
			seenType = true
		case lexer.TokenTypedef, lexer.TokenExtern, lexer.TokenStatic, lexer.TokenAuto,
			lexer.TokenRegister, lexer.TokenThreadLocal, lexer.TokenGNUThread,
			lexer.TokenConst, lexer.TokenVolatile, lexer.TokenRestrict, lexer.TokenAtomic,
			lexer.TokenInline, lexer.TokenNoreturn, lexer.TokenAlignas:
			// storage classes, qualifiers, function and alignment specifiers
		case lexer.TokenGNUAttribute:
			if parenCnt == 0 {
				return roleTypedefName
			}
		case lexer.TokenStar:
			// pointer declarator chains are transparent
		case lexer.TokenLParen:
			parenCnt++
		case lexer.TokenRParen:
			parenCnt--
			if parenCnt == 0 {
				if seenType {
					return roleTypedefName
				}
				return roleDeclarator
			}
		default:
			return roleDeclarator
		}
	}
}
