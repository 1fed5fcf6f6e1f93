package console

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Palabras clave aceptadas en los prompts.
const (
	keywordExit     = "exit"
	keywordYes      = "yes"
	keywordCash     = "cash"
	keywordCard     = "card"
	keywordContinue = "continue"
)

// ErrTooManyAttempts se agotaron los reintentos permitidos por RetryPolicy.
var ErrTooManyAttempts = errors.New("console: demasiados intentos inválidos")

// RetryPolicy acota los reintentos ante entradas inválidas. MaxAttempts <= 0 = sin límite.
type RetryPolicy struct {
	MaxAttempts int
}

// Exhausted indica si failures fallos consecutivos agotan la política.
func (p RetryPolicy) Exhausted(failures int) bool {
	return p.MaxAttempts > 0 && failures >= p.MaxAttempts
}

// keyword normaliza una respuesta libre para compararla con las palabras clave.
func keyword(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

func isYes(s string) bool { return keyword(s) == keywordYes }
