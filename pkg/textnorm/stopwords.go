package textnorm

// defaultStopWords is the built-in closed list of English words that carry no
// intent signal on their own. Besides the usual grammatical words it includes
// the conversational carriers ("help", "tell", "want") that dominate short
// support utterances without distinguishing one intent from another.
var defaultStopWords = map[string]bool{
	// articles and determiners
	"a": true, "an": true, "the": true, "this": true, "that": true,
	"these": true, "those": true, "some": true, "any": true, "each": true,
	"every": true, "either": true, "neither": true, "both": true, "all": true,
	"few": true, "more": true, "most": true, "much": true, "many": true,
	"other": true, "another": true, "such": true, "same": true, "own": true,

	// pronouns
	"i": true, "me": true, "my": true, "mine": true, "myself": true,
	"we": true, "us": true, "our": true, "ours": true, "ourselves": true,
	"you": true, "your": true, "yours": true, "yourself": true, "yourselves": true,
	"he": true, "him": true, "his": true, "himself": true,
	"she": true, "her": true, "hers": true, "herself": true,
	"it": true, "its": true, "itself": true,
	"they": true, "them": true, "their": true, "theirs": true, "themselves": true,
	"who": true, "whom": true, "whose": true, "which": true, "what": true,
	"someone": true, "something": true, "anyone": true, "anything": true,
	"everyone": true, "everything": true, "nothing": true, "one": true,

	// auxiliaries and modals
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"do": true, "does": true, "did": true, "doing": true, "done": true,
	"have": true, "has": true, "had": true, "having": true,
	"will": true, "would": true, "can": true, "could": true,
	"shall": true, "should": true, "may": true, "might": true,
	"must": true, "ought": true,

	// prepositions and conjunctions
	"and": true, "or": true, "but": true, "nor": true, "if": true,
	"then": true, "else": true, "because": true, "as": true, "so": true,
	"than": true, "of": true, "to": true, "in": true, "on": true, "at": true,
	"by": true, "for": true, "with": true, "from": true, "about": true,
	"into": true, "onto": true, "over": true, "under": true, "after": true,
	"before": true, "between": true, "through": true, "during": true,
	"without": true, "within": true, "against": true, "among": true,
	"around": true, "across": true, "behind": true, "beyond": true,
	"near": true, "toward": true, "towards": true, "upon": true, "via": true,
	"per": true, "until": true, "while": true, "since": true,
	"out": true, "off": true, "up": true, "down": true,

	// adverbs of degree, time, and place
	"how": true, "when": true, "where": true, "why": true,
	"here": true, "there": true, "now": true, "again": true, "already": true,
	"also": true, "just": true, "only": true, "very": true, "too": true,
	"still": true, "yet": true, "even": true, "ever": true, "never": true,
	"always": true, "often": true, "sometimes": true, "really": true,
	"quite": true, "rather": true, "almost": true, "back": true,

	// negation and affirmation
	"no": true, "not": true, "yes": true, "ok": true, "okay": true,

	// conversational carriers common in support intents
	"help": true, "tell": true, "get": true, "got": true, "want": true,
	"wants": true, "need": true, "needs": true, "know": true, "let": true,
	"like": true, "make": true, "give": true, "take": true, "go": true,
	"going": true, "please": true, "thanks": true, "thank": true,
	"hi": true, "hello": true, "hey": true,

	// contractions surviving UAX#29 segmentation as single tokens
	"i'm": true, "i've": true, "i'll": true, "i'd": true,
	"you're": true, "you've": true, "you'll": true, "you'd": true,
	"he's": true, "he'll": true, "he'd": true,
	"she's": true, "she'll": true, "she'd": true,
	"it's": true, "it'll": true, "it'd": true,
	"we're": true, "we've": true, "we'll": true, "we'd": true,
	"they're": true, "they've": true, "they'll": true, "they'd": true,
	"that's": true, "what's": true, "who's": true, "where's": true,
	"when's": true, "how's": true, "there's": true, "here's": true,
	"let's": true, "don't": true, "doesn't": true, "didn't": true,
	"isn't": true, "aren't": true, "wasn't": true, "weren't": true,
	"won't": true, "wouldn't": true, "can't": true, "cannot": true,
	"couldn't": true, "shouldn't": true, "mustn't": true,
	"haven't": true, "hasn't": true, "hadn't": true,
}
