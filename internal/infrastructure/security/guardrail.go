// Package security provides the shell guardrail: a last line of defense that
// blocks catastrophic commands at the executor, independent of what the
// decision stage concluded. Confirmation gates ask; the guardrail refuses.
package security

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/jarvis-go/internal/pkg/filesystem"
)

// Verdict is the guardrail's answer for one shell command.
type Verdict struct {
	Blocked bool
	Reasons []string
}

// Rule is one regex-based danger pattern.
type Rule struct {
	Pattern string `yaml:"pattern"`
	Message string `yaml:"message"`
}

// RulesFile is the YAML schema root for ~/.jarvis/guardrail.yaml.
type RulesFile struct {
	Rules struct {
		DangerPatterns []Rule `yaml:"danger_patterns"`
	} `yaml:"rules"`
}

type compiledRule struct {
	re   *regexp.Regexp
	rule Rule
}

// Guardrail holds the compiled danger patterns.
type Guardrail struct {
	rules []compiledRule
}

// NewGuardrail loads guardrail rules from disk, falling back to the built-in
// set when the file is missing or empty. A pattern that does not compile is a
// construction error.
func NewGuardrail(path string) (*Guardrail, error) {
	rules, err := loadRules(path)
	if err != nil {
		return nil, err
	}

	g := &Guardrail{}
	for _, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("guardrail pattern %q: %w", rule.Pattern, err)
		}
		g.rules = append(g.rules, compiledRule{re: re, rule: rule})
	}
	return g, nil
}

// Evaluate checks a shell command against every danger pattern. All matching
// rules contribute their message; one match is enough to block.
func (g *Guardrail) Evaluate(command string) Verdict {
	if g == nil {
		return Verdict{}
	}
	verdict := Verdict{}
	command = strings.TrimSpace(command)
	for _, rule := range g.rules {
		if rule.re.MatchString(command) {
			verdict.Blocked = true
			verdict.Reasons = append(verdict.Reasons, rule.rule.Message)
		}
	}
	return verdict
}

func loadRules(path string) ([]Rule, error) {
	path = expandPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultRules(), nil
	}
	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse guardrail rules: %w", err)
	}
	if len(file.Rules.DangerPatterns) == 0 {
		return defaultRules(), nil
	}
	return file.Rules.DangerPatterns, nil
}

func expandPath(path string) string {
	if path == "" {
		if custom := os.Getenv("JARVIS_GUARDRAIL"); custom != "" {
			path = custom
		} else {
			return filepath.Join(filesystem.UserHomeDir(), ".jarvis", "guardrail.yaml")
		}
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return path
}

// defaultRules covers the commands no conversational agent should ever run,
// confirmed or not.
func defaultRules() []Rule {
	return []Rule{
		{Pattern: `rm\s+-rf?\s+/(\s|$)`, Message: "borrar el directorio raíz"},
		{Pattern: `rm\s+-rf?\s+\*`, Message: "borrado recursivo sin ruta"},
		{Pattern: `dd\s+if=`, Message: "escritura directa a disco"},
		{Pattern: `mkfs\.`, Message: "formatear un sistema de archivos"},
		{Pattern: `>\s*/dev/(sd[a-z]|nvme)`, Message: "escribir en un dispositivo de bloques"},
		{Pattern: `curl[^|]*\|\s*(sudo\s+)?(ba)?sh`, Message: "ejecutar un script remoto sin revisarlo"},
		{Pattern: `:\(\)\{\s*:\|:&\s*\};:`, Message: "fork bomb"},
	}
}
