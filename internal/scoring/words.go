package scoring

var examplePhrases = []string{
	"for example",
	"for instance",
	"such as",
}

// Phrases are matched on whole tokens, so "like" never matches "likely".
var fillerWords = []string{
	"um", "umm", "uh", "uhm", "er", "erm",
	"like", "basically", "literally",
	"you know", "kind of", "sort of", "i mean",
}

var structureMarkers = []string{
	"first", "firstly", "second", "secondly", "then", "next",
	"finally", "because", "therefore", "consequently",
	"as a result", "in summary",
}

var starTerms = []string{"situation", "task", "action", "result"}

var stopWords = map[string]bool{
	"about": true, "after": true, "also": true, "been": true, "before": true,
	"being": true, "could": true, "describe": true, "does": true, "each": true,
	"explain": true, "from": true, "have": true, "into": true, "just": true,
	"more": true, "most": true, "only": true, "other": true, "over": true,
	"should": true, "some": true, "such": true, "tell": true, "than": true,
	"that": true, "their": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "those": true, "time": true,
	"very": true, "walk": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "with": true, "would": true,
	"your": true, "you're": true,
}
