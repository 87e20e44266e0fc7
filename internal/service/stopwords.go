package service

// Words that never count as technical keywords and never contribute to
// answer overlap scoring.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "up": true, "about": true,
	"into": true, "through": true, "during": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "must": true, "can": true, "this": true,
	"that": true, "these": true, "those": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
	"what": true, "which": true, "who": true, "when": true, "where": true,
	"why": true, "how": true, "all": true, "each": true, "every": true,
	"some": true, "any": true, "few": true, "more": true, "most": true,
	"other": true, "such": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "just": true,
	"because": true, "as": true, "until": true, "while": true, "things": true,
	"something": true, "anything": true, "everything": true, "nothing": true,
	"using": true, "used": true, "use": true, "like": true, "also": true,
	"working": true, "worked": true, "basically": true, "actually": true,
}

func isStopWord(w string) bool {
	return stopWords[w]
}
