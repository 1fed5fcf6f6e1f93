package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vending-machine/internal/application/vending"
	"github.com/jhoicas/vending-machine/internal/domain/catalog"
	"github.com/jhoicas/vending-machine/internal/infrastructure/memory"
	"github.com/jhoicas/vending-machine/internal/interfaces/console"
)

func TestDisplay_ColumnaAjustadaAlNombreMasLargo(t *testing.T) {
	seed := catalog.Default()
	cat, err := catalog.New(seed.Categories)
	require.NoError(t, err)
	stock, err := memory.ForCatalog(cat, seed.Stock)
	require.NoError(t, err)
	s := vending.NewSession(cat, stock, nil, nil)

	out := &bytes.Buffer{}
	console.Display(console.NewStreamIO(strings.NewReader(""), out), s)
	text := out.String()

	assert.Contains(t, text, "💰 Current Balance: $0.00")
	assert.Contains(t, text, "--- Snacks ---")
	assert.Contains(t, text, "--- Drinks ---")
	// Snacks: "chocolate bar" (13) es el más largo.
	assert.Contains(t, text, "Code\tProduct      \tPrice\tQuantity\n")
	assert.Contains(t, text, "LOLL2\tlollipop     \t$0.50\t22\n")
	assert.Contains(t, text, "BRC8\tchocolate bar\t$1.25\t18\n")
	// Drinks: "orange juice" y "energy drink" (12).
	assert.Contains(t, text, "Code\tProduct     \tPrice\tQuantity\n")
	assert.Contains(t, text, "C2\tCoke        \t$2.58\t9\n")
	assert.Less(t, strings.Index(text, "--- Snacks ---"), strings.Index(text, "--- Drinks ---"))
}

func TestDisplay_NombresCortosNoRecortanEncabezado(t *testing.T) {
	cat, err := catalog.New(catalog.Default().Categories[:1])
	require.NoError(t, err)
	stock, err := memory.ForCatalog(cat, nil)
	require.NoError(t, err)
	s := vending.NewSession(cat, stock, nil, nil)

	out := &bytes.Buffer{}
	console.Display(console.NewStreamIO(strings.NewReader(""), out), s)
	assert.Contains(t, out.String(), "ORO4\toreo         \t$1.00\t0\n")
}

func TestRetryPolicy_Exhausted(t *testing.T) {
	assert.False(t, console.RetryPolicy{}.Exhausted(1000), "0 = sin límite")
	assert.False(t, console.RetryPolicy{MaxAttempts: 3}.Exhausted(2))
	assert.True(t, console.RetryPolicy{MaxAttempts: 3}.Exhausted(3))
}
