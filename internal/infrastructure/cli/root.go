// Package cli wires the cobra command tree.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/jarvis-go/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	var (
		preview       bool
		knowledgePath string
		guardrailPath string
	)

	root := &cobra.Command{
		Use:   "jarvis [mensaje]",
		Short: "JARVIS - asistente de comandos en lenguaje natural",
		Long:  "JARVIS analiza mensajes en español, razona sobre la intención y decide la siguiente acción con una puerta de confirmación para operaciones de riesgo.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			container, err := buildContainer(cmd.Context(), opts, preview, knowledgePath, guardrailPath)
			if err != nil {
				return err
			}
			defer container.Close()
			return runOnce(cmd, container, strings.Join(args, " "))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&preview, "preview", false, "decidir sin ejecutar acciones externas")
	root.PersistentFlags().StringVar(&knowledgePath, "knowledge", "", "ruta a un knowledge.yaml alternativo")
	root.PersistentFlags().StringVar(&guardrailPath, "guardrail", "", "ruta a un guardrail.yaml alternativo")

	root.AddCommand(newChatCommand(opts, &preview, &knowledgePath, &guardrailPath))
	root.AddCommand(newHistoryCommand(opts, &knowledgePath))
	root.AddCommand(newVersionCommand())
	return root, nil
}

func buildContainer(ctx context.Context, opts Options, preview bool, knowledgePath, guardrailPath string) (*app.Container, error) {
	return app.BuildContainer(ctx, app.Options{
		Verbose:       opts.Verbose,
		Preview:       preview,
		KnowledgePath: knowledgePath,
		GuardrailPath: guardrailPath,
	})
}

func runOnce(cmd *cobra.Command, container *app.Container, message string) error {
	result, err := container.Pipeline.HandleTurn(cmd.Context(), message)
	if err != nil {
		return err
	}
	if !result.Handled {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Response)
	return nil
}
