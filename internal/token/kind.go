package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline is tracked for completeness; the lexer does not emit it.
	Newline

	// Number represents a numeric literal.
	Number
	// String represents a string literal (quotes included in Text).
	String
	// Ident represents an identifier token.
	Ident

	KwVar        // var
	KwFunction   // function
	KwIf         // if
	KwElse       // else
	KwWhile      // while
	KwFor        // for
	KwDo         // do
	KwReturn     // return
	KwBreak      // break
	KwContinue   // continue
	KwTrue       // true
	KwFalse      // false
	KwNull       // null
	KwThis       // this
	KwSuper      // super
	KwNew        // new
	KwClass      // class
	KwExtends    // extends
	KwTry        // try
	KwCatch      // catch
	KwFinally    // finally
	KwThrow      // throw
	KwImport     // import
	KwExport     // export
	KwFrom       // from
	KwAs         // as
	KwSwitch     // switch
	KwCase       // case
	KwDefault    // default
	KwTypeof     // typeof
	KwInstanceof // instanceof
	KwIn         // in
	KwOf         // of
	KwStatic     // static

	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	Percent     // %
	Assign      // =
	PlusAssign  // +=
	MinusAssign // -=
	StarAssign  // *=
	SlashAssign // /=
	EqEq        // ==
	BangEq      // !=
	EqEqEq      // ===
	BangEqEq    // !==
	Lt          // <
	LtEq        // <=
	Gt          // >
	GtEq        // >=
	AndAnd      // &&
	OrOr        // ||
	Bang        // !
	PlusPlus    // ++
	MinusMinus  // --
	LParen      // (
	RParen      // )
	LBrace      // {
	RBrace      // }
	LBracket    // [
	RBracket    // ]
	Comma       // ,
	Dot         // .
	Semicolon   // ;
	Colon       // :
	Question    // ?
	FatArrow    // =>

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Newline:      "Newline",
	Number:       "Number",
	String:       "String",
	Ident:        "Ident",
	KwVar:        "KwVar",
	KwFunction:   "KwFunction",
	KwIf:         "KwIf",
	KwElse:       "KwElse",
	KwWhile:      "KwWhile",
	KwFor:        "KwFor",
	KwDo:         "KwDo",
	KwReturn:     "KwReturn",
	KwBreak:      "KwBreak",
	KwContinue:   "KwContinue",
	KwTrue:       "KwTrue",
	KwFalse:      "KwFalse",
	KwNull:       "KwNull",
	KwThis:       "KwThis",
	KwSuper:      "KwSuper",
	KwNew:        "KwNew",
	KwClass:      "KwClass",
	KwExtends:    "KwExtends",
	KwTry:        "KwTry",
	KwCatch:      "KwCatch",
	KwFinally:    "KwFinally",
	KwThrow:      "KwThrow",
	KwImport:     "KwImport",
	KwExport:     "KwExport",
	KwFrom:       "KwFrom",
	KwAs:         "KwAs",
	KwSwitch:     "KwSwitch",
	KwCase:       "KwCase",
	KwDefault:    "KwDefault",
	KwTypeof:     "KwTypeof",
	KwInstanceof: "KwInstanceof",
	KwIn:         "KwIn",
	KwOf:         "KwOf",
	KwStatic:     "KwStatic",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Percent:      "Percent",
	Assign:       "Assign",
	PlusAssign:   "PlusAssign",
	MinusAssign:  "MinusAssign",
	StarAssign:   "StarAssign",
	SlashAssign:  "SlashAssign",
	EqEq:         "EqEq",
	BangEq:       "BangEq",
	EqEqEq:       "EqEqEq",
	BangEqEq:     "BangEqEq",
	Lt:           "Lt",
	LtEq:         "LtEq",
	Gt:           "Gt",
	GtEq:         "GtEq",
	AndAnd:       "AndAnd",
	OrOr:         "OrOr",
	Bang:         "Bang",
	PlusPlus:     "PlusPlus",
	MinusMinus:   "MinusMinus",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	Comma:        "Comma",
	Dot:          "Dot",
	Semicolon:    "Semicolon",
	Colon:        "Colon",
	Question:     "Question",
	FatArrow:     "FatArrow",
}

// String returns the stable name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}
