package assets

import (
	_ "embed"
)

// DefaultKnowledgeYAML contains the embedded default rule tables.
//
//go:embed defaults/knowledge.yaml
var DefaultKnowledgeYAML []byte

// DefaultPhrasesYAML contains the embedded default persona phrases.
//
//go:embed defaults/phrases.yaml
var DefaultPhrasesYAML []byte
