// Package executor provides the local, shell-backed ActionExecutor adapter.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/infrastructure/security"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// LocalExecutor translates chosen actions into host shell commands. Only a
// closed set of action types maps to real commands; everything else reports
// an unsupported outcome instead of guessing.
type LocalExecutor struct {
	shell string
	guard *security.Guardrail
}

// NewLocalExecutor builds a new executor; shell defaults to $SHELL or
// /bin/sh. guard may be nil, in which case no command is refused.
func NewLocalExecutor(shell string, guard *security.Guardrail) *LocalExecutor {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell, guard: guard}
}

// Execute implements ports.ActionExecutor.
func (e *LocalExecutor) Execute(ctx context.Context, action domain.Action) (domain.ExecutionOutcome, error) {
	command, ok := e.commandFor(action)
	if !ok {
		return domain.ExecutionOutcome{
			Success: false,
			Message: fmt.Sprintf("la acción '%s' no tiene ejecutor local", action.Type),
		}, nil
	}
	if verdict := e.guard.Evaluate(command); verdict.Blocked {
		return domain.ExecutionOutcome{
			Success: false,
			Message: fmt.Sprintf("me niego a ejecutar eso: %s", strings.Join(verdict.Reasons, "; ")),
		}, nil
	}

	c := exec.CommandContext(ctx, e.shell, "-c", command)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if ctx.Err() != nil {
			return domain.ExecutionOutcome{Success: false, Error: "la ejecución superó el tiempo límite"}, ctx.Err()
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return domain.ExecutionOutcome{Success: false, Error: detail}, err
	}

	return domain.ExecutionOutcome{
		Success: true,
		Summary: summarize(stdout.String()),
	}, nil
}

func (e *LocalExecutor) commandFor(action domain.Action) (string, bool) {
	query, _ := action.Params["query"].(string)
	switch action.Type {
	case domain.ActionRunCommand:
		command, _ := action.Params["command"].(string)
		return command, command != ""
	case domain.ActionSearchFiles:
		if query == "" {
			return "", false
		}
		return fmt.Sprintf("find . -iname %q -not -path './.git/*' | head -n 20", "*"+query+"*"), true
	case domain.ActionSearchCode:
		if query == "" {
			return "", false
		}
		return fmt.Sprintf("grep -rili %q . | head -n 20", query), true
	case domain.ActionGitStatus:
		return "git status --short --branch", true
	case domain.ActionGitCommit:
		return "git status --short", true
	case domain.ActionRunTests:
		return "go test ./...", true
	default:
		return "", false
	}
}

// summarize keeps the first few output lines so the rendered response stays
// one message.
func summarize(out string) string {
	out = strings.TrimSpace(out)
	if out == "" {
		return "sin salida"
	}
	lines := strings.Split(out, "\n")
	if len(lines) > 5 {
		lines = append(lines[:5], fmt.Sprintf("(+%d líneas)", len(lines)-5))
	}
	return strings.Join(lines, " | ")
}

var _ ports.ActionExecutor = (*LocalExecutor)(nil)
