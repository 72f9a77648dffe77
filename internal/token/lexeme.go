package token

var punctLexemes = map[Kind]string{
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
	EqEq: "==", BangEq: "!=", EqEqEq: "===", BangEqEq: "!==",
	Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
	AndAnd: "&&", OrOr: "||", Bang: "!", PlusPlus: "++", MinusMinus: "--",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	Comma: ",", Dot: ".", Semicolon: ";", Colon: ":", Question: "?", FatArrow: "=>",
}

var keywordLexemes = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for word, k := range keywords {
		m[k] = word
	}
	return m
}()

// Lexeme returns the fixed spelling of a keyword, operator or punctuation
// kind, and "" for kinds whose text varies (identifiers, literals, sentinels).
func (k Kind) Lexeme() string {
	if s, ok := punctLexemes[k]; ok {
		return s
	}
	return keywordLexemes[k]
}

var punctByText = func() map[string]Kind {
	m := make(map[string]Kind, len(punctLexemes))
	for k, s := range punctLexemes {
		m[s] = k
	}
	return m
}()

// MaxPunctLen is the length of the longest operator ("===", "!==").
const MaxPunctLen = 3

// LookupPunct maps operator or punctuation text to its kind.
func LookupPunct(s string) (Kind, bool) {
	k, ok := punctByText[s]
	return k, ok
}
