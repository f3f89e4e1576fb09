package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/jarvis-go/internal/domain"
)

const version = "0.1.0"

func newHistoryCommand(opts Options, knowledgePath *string) *cobra.Command {
	var (
		limit  int
		search string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Memorias de conversación guardadas",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(cmd.Context(), opts, true, *knowledgePath, "")
			if err != nil {
				return err
			}
			defer container.Close()
			if container.MemoryStore == nil {
				return fmt.Errorf("memoria no disponible")
			}

			records, err := container.MemoryStore.Search(search, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range records {
				fmt.Fprintf(out, "%s  [%s]  %s\n", r.Timestamp.Format("2006-01-02 15:04"), r.Intent, r.Message)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "sin registros")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "máximo de registros")
	cmd.Flags().StringVar(&search, "search", "", "filtrar por texto")
	return cmd
}

// printReflection renders the in-session decision statistics; used by the
// chat REPL's /reflect command since the history ring lives per session.
func printReflection(out io.Writer, reflection domain.Reflection) {
	fmt.Fprintf(out, "decisiones: %d\n", reflection.Total)
	fmt.Fprintf(out, "tasa de éxito: %.2f\n", reflection.SuccessRate)
	for _, p := range reflection.CommonPatterns {
		fmt.Fprintf(out, "  %s: %d\n", p.Type, p.Count)
	}
	for _, a := range reflection.AreasOfImprovement {
		fmt.Fprintln(out, "mejorar:", a)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Versión de JARVIS",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "jarvis", version)
		},
	}
}
