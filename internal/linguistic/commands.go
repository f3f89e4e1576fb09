package linguistic

import (
	"regexp"
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// commandVerbRe captures (verb, trailing free-text object) pairs from a fixed
// imperative verb lexicon. Applied per sentence over the normalized text.
var commandVerbRe = regexp.MustCompile(`\b(crea|crear|busca|buscar|encuentra|muestra|mostrar|lista|listar|elimina|eliminar|borra|borrar|ejecuta|ejecutar|corre|correr|abre|abrir|instala|instalar|analiza|analizar|revisa|revisar|guarda|guardar|recuerda|recordar|actualiza|actualizar|genera|generar|explica|explicar|sube|subir|descarga|descargar)\b[\s:,]*(.*)`)

// ExtractCommands returns zero or more (verb, object) pairs, one per sentence
// that opens with a lexicon verb.
func ExtractCommands(sentences []string) []domain.CommandPhrase {
	var commands []domain.CommandPhrase
	for _, sentence := range sentences {
		m := commandVerbRe.FindStringSubmatch(Normalize(sentence))
		if m == nil {
			continue
		}
		commands = append(commands, domain.CommandPhrase{
			Verb:   m[1],
			Object: strings.TrimSpace(m[2]),
		})
	}
	return commands
}

// CommandSlug builds the dynamic "verb_object" action type name for an
// NLP-extracted command.
func CommandSlug(cmd domain.CommandPhrase) string {
	object := cmd.Object
	if i := strings.IndexByte(object, ' '); i > 0 {
		object = object[:i]
	}
	object = strings.Trim(object, ".,;:!?")
	if object == "" {
		return cmd.Verb
	}
	return cmd.Verb + "_" + object
}
