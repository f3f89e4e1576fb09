package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var exitWords = map[string]bool{"salir": true, "exit": true, "quit": true, "adios": true}

func newChatCommand(opts Options, preview *bool, knowledgePath, guardrailPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Conversación interactiva",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(cmd.Context(), opts, *preview, *knowledgePath, *guardrailPath)
			if err != nil {
				return err
			}
			defer container.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "JARVIS listo. Escribe 'salir' para terminar.")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if exitWords[strings.ToLower(line)] {
					fmt.Fprintln(out, "Hasta luego.")
					return nil
				}
				if line == "/reflect" {
					printReflection(out, container.Pipeline.Decider.SelfReflect())
					continue
				}
				result, err := container.Pipeline.HandleTurn(cmd.Context(), line)
				if err != nil {
					fmt.Fprintln(out, "error:", err)
					continue
				}
				if result.Handled {
					fmt.Fprintln(out, result.Response)
				}
			}
		},
	}
}
