package linguistic

import "strings"

// Reply classifies a confirmation answer.
type Reply int

const (
	ReplyUnknown Reply = iota
	ReplyYes
	ReplyNo
)

// ClassifyReply is the lightweight yes/no classifier used to resolve a
// pending confirmation. Denials are checked first so that "no, mejor no"
// never reads as an affirmation, then affirmations; anything else is
// treated as an unrelated message.
func ClassifyReply(text string) Reply {
	normalized := strings.TrimSpace(Normalize(text))
	normalized = strings.Trim(normalized, ".,!¡")
	if normalized == "" {
		return ReplyUnknown
	}

	first := normalized
	if i := strings.IndexByte(first, ' '); i > 0 {
		first = first[:i]
	}
	first = strings.Trim(first, ".,!¡")

	for _, d := range denials {
		if normalized == d || first == d {
			return ReplyNo
		}
	}
	for _, a := range affirmations {
		if normalized == a || first == a {
			return ReplyYes
		}
	}
	return ReplyUnknown
}
