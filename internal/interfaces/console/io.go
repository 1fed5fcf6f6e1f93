// Package console es la interfaz de texto de la máquina: muestra el catálogo, pide códigos,
// conduce la recarga de saldo y emite el recibo final sobre un IO abstracto.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// IO colaborador externo de entrada/salida por líneas.
// ReadLine devuelve io.EOF cuando la entrada se cierra; se trata como pedido de salida.
type IO interface {
	ReadLine(prompt string) (string, error)
	Printf(format string, args ...any)
}

// StreamIO implementación de IO sobre un lector y un escritor (stdin/stdout en producción).
type StreamIO struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStreamIO construye el IO.
func NewStreamIO(r io.Reader, w io.Writer) *StreamIO {
	return &StreamIO{in: bufio.NewReader(r), out: w}
}

// ReadLine imprime el prompt y lee una línea sin el salto final.
// No hay límite de longitud: una línea enorme llega entera y la rechaza quien la parsea.
// Una última línea sin salto se devuelve igual; io.EOF solo cuando no queda nada.
func (s *StreamIO) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console: leer entrada: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Printf escribe en la salida.
func (s *StreamIO) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
