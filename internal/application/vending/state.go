package vending

// State estado de la máquina de compra de una sesión.
type State int

const (
	StateBrowsing      State = iota // viendo el catálogo, esperando un código
	StateAwaitingFunds              // recargando saldo
	StateDispensing                 // entregando un producto (transitorio dentro de Purchase)
	StateFinished                   // terminal: solo por salida explícita
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateAwaitingFunds:
		return "awaiting_funds"
	case StateDispensing:
		return "dispensing"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
