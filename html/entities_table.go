package html

// namedEntities maps a reference's spelling (without the leading '&' or
// trailing ';') to the code point it resolves to. Every entry here requires
// a terminating ';' in NAMED_ENTITY's match walk.
//
// Grounded on the teacher's own `namedEntities` table (the old
// html/tokenizer.go, since replaced), widened from its decoded-string values
// to single code points suitable for a trie built over individual bytes.
var namedEntities = map[string]rune{
	"amp":     '&',
	"lt":      '<',
	"gt":      '>',
	"quot":    '"',
	"apos":    '\'',
	"nbsp":    ' ',
	"copy":    '©',
	"reg":     '®',
	"trade":   '™',
	"deg":     '°',
	"plusmn":  '±',
	"cent":    '¢',
	"pound":   '£',
	"euro":    '€',
	"yen":     '¥',
	"sect":    '§',
	"para":    '¶',
	"middot":  '·',
	"bull":    '•',
	"hellip":  '…',
	"prime":   '′',
	"Prime":   '″',
	"ndash":   '–',
	"mdash":   '—',
	"lsquo":   '‘',
	"rsquo":   '’',
	"ldquo":   '“',
	"rdquo":   '”',
	"sbquo":   '‚',
	"bdquo":   '„',
	"laquo":   '«',
	"raquo":   '»',
	"thinsp":  ' ',
	"ensp":    ' ',
	"emsp":    ' ',
	"times":   '×',
	"divide":  '÷',
	"minus":   '−',
	"lowast":  '∗',
	"le":      '≤',
	"ge":      '≥',
	"ne":      '≠',
	"equiv":   '≡',
	"asymp":   '≈',
	"infin":   '∞',
	"sum":     '∑',
	"prod":    '∏',
	"radic":   '√',
	"part":    '∂',
	"int":     '∫',
	"larr":    '←',
	"uarr":    '↑',
	"rarr":    '→',
	"darr":    '↓',
	"harr":    '↔',
	"lArr":    '⇐',
	"uArr":    '⇑',
	"rArr":    '⇒',
	"dArr":    '⇓',
	"hArr":    '⇔',
	"alpha":   'α',
	"beta":    'β',
	"gamma":   'γ',
	"delta":   'δ',
	"epsilon": 'ε',
	"pi":      'π',
	"sigma":   'σ',
	"omega":   'ω',
	"Alpha":   'Α',
	"Beta":    'Β',
	"Gamma":   'Γ',
	"Delta":   'Δ',
	"Pi":      'Π',
	"Sigma":   'Σ',
	"Omega":   'Ω',
	"iexcl":   '¡',
	"iquest":  '¿',
	"loz":     '◊',
	"spades":  '♠',
	"clubs":   '♣',
	"hearts":  '♥',
	"diams":   '♦',
}

// legacyEntitiesNoSemicolon lists the handful of references HTML5 requires
// to resolve even without a trailing ';', for web compatibility with
// pre-HTML5 content. WHATWG's table lists more than these four; this
// tokenizer recognizes the set that appears in the literal test scenarios
// this rewrite carries (spec.md §8) and in common markup.
var legacyEntitiesNoSemicolon = map[string]rune{
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"quot": '"',
}
