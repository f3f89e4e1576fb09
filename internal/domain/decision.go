package domain

import "time"

// RiskLevel enumerates decision risk outcomes.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Rank orders risk levels for sorting (low < medium < high).
func (r RiskLevel) Rank() int {
	switch r {
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return 0
	}
}

// ActionType identifies an executable action. The catalog below covers every
// action the static tables can produce; NLP-extracted commands additionally
// yield dynamic "verb_object" types, which fall back to default feasibility
// and keyword-based risk classification.
type ActionType string

const (
	ActionAskClarification ActionType = "ask_clarification"
	ActionRespondGreeting  ActionType = "respond_greeting"
	ActionAnswerQuestion   ActionType = "answer_question"
	ActionExplainTopic     ActionType = "explain_topic"
	ActionOfferHelp        ActionType = "offer_help"

	ActionSearchFiles    ActionType = "search_files"
	ActionSearchCode     ActionType = "search_code"
	ActionCreateFile     ActionType = "create_file"
	ActionCreateProject  ActionType = "create_project"
	ActionUpdateFile     ActionType = "update_file"
	ActionDeleteFile     ActionType = "delete_file"
	ActionAnalyzeCode    ActionType = "analyze_code"
	ActionAnalyzeProject ActionType = "analyze_project"
	ActionRunCommand     ActionType = "run_command"
	ActionRunTests       ActionType = "run_tests"
	ActionDiagnoseError  ActionType = "diagnose_error"
	ActionGitStatus      ActionType = "git_status"
	ActionGitCommit      ActionType = "git_commit"
	ActionDBQuery        ActionType = "db_query"
	ActionCheckDeploy    ActionType = "check_deploy"
	ActionInstallPackage ActionType = "install_package"
	ActionQueryMemory    ActionType = "query_memory"
)

// Catalog lists every statically known action type, in a stable order.
var Catalog = []ActionType{
	ActionAskClarification,
	ActionRespondGreeting,
	ActionAnswerQuestion,
	ActionExplainTopic,
	ActionOfferHelp,
	ActionSearchFiles,
	ActionSearchCode,
	ActionCreateFile,
	ActionCreateProject,
	ActionUpdateFile,
	ActionDeleteFile,
	ActionAnalyzeCode,
	ActionAnalyzeProject,
	ActionRunCommand,
	ActionRunTests,
	ActionDiagnoseError,
	ActionGitStatus,
	ActionGitCommit,
	ActionDBQuery,
	ActionCheckDeploy,
	ActionInstallPackage,
	ActionQueryMemory,
}

// Action is one fully scored candidate (or chosen) action.
type Action struct {
	Type                 ActionType
	Source               ActionSource
	Origin               string
	Priority             int
	Risk                 RiskLevel
	Feasibility          float64
	RequiresConfirmation bool
	Negated              bool
	Params               map[string]any
}

// Decision is the final output of the decision stage for one turn.
// The chosen-action set is never empty: a fallback ask_clarification
// candidate is always generated.
type Decision struct {
	Timestamp     time.Time
	Chosen        Action
	Alternatives  []Action
	Justification []string
	Confidence    float64
	ShouldAsk     bool
	ShouldExecute bool
	Risk          RiskLevel
}

// ExecutionOutcome is the result reported by an action executor.
type ExecutionOutcome struct {
	Success bool
	Summary string
	Message string
	Error   string
}
