package decision

import (
	"regexp"

	"github.com/doeshing/jarvis-go/internal/domain"
)

var (
	// destructiveTypeRe marks action types that are destructive by name.
	destructiveTypeRe = regexp.MustCompile(`delete|drop|kill|force_push`)
	// dangerousShellRe marks literal shell text that must never run without
	// confirmation.
	dangerousShellRe = regexp.MustCompile(`\b(rm|del|drop|kill)\b`)
	// mediumTypeRe marks mutating but non-destructive action types.
	mediumTypeRe = regexp.MustCompile(`create|update|modify`)
	// destructiveVerbRe is the confirmation lexicon applied to the chosen
	// action regardless of computed confidence. Spanish entries are verb
	// stems so both infinitive and imperative command slugs match.
	destructiveVerbRe = regexp.MustCompile(`elimina|borra|quita|delete|drop|remove|force|kill|reset`)
)

// classifyRisk scores one candidate. run_command escalates to high when the
// literal shell-command entity text contains a dangerous token; otherwise it
// stays medium because arbitrary execution is never low risk.
func classifyRisk(t domain.ActionType, analysis domain.LinguisticAnalysis) domain.RiskLevel {
	name := string(t)
	if destructiveTypeRe.MatchString(name) {
		return domain.RiskHigh
	}
	if t == domain.ActionRunCommand {
		for _, e := range analysis.EntitiesOfKind(domain.EntityShellCommand) {
			if dangerousShellRe.MatchString(e.Text) {
				return domain.RiskHigh
			}
		}
		return domain.RiskMedium
	}
	if mediumTypeRe.MatchString(name) {
		return domain.RiskMedium
	}
	return domain.RiskLow
}

func isDestructiveType(t domain.ActionType) bool {
	return destructiveVerbRe.MatchString(string(t))
}
