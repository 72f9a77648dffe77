package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"function":   KwFunction,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"do":         KwDo,
	"return":     KwReturn,
	"break":      KwBreak,
	"continue":   KwContinue,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"this":       KwThis,
	"super":      KwSuper,
	"new":        KwNew,
	"class":      KwClass,
	"extends":    KwExtends,
	"try":        KwTry,
	"catch":      KwCatch,
	"finally":    KwFinally,
	"throw":      KwThrow,
	"import":     KwImport,
	"export":     KwExport,
	"from":       KwFrom,
	"as":         KwAs,
	"switch":     KwSwitch,
	"case":       KwCase,
	"default":    KwDefault,
	"typeof":     KwTypeof,
	"instanceof": KwInstanceof,
	"in":         KwIn,
	"of":         KwOf,
	"static":     KwStatic,
}

// LookupKeyword reports the keyword kind for ident, if any.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
