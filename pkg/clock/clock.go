package clock

import "time"

// Clock abstrae la hora actual para poder fijarla en tests.
type Clock interface {
	Now() time.Time
}

// RealClock hora local del sistema (el recibo se imprime en hora local).
type RealClock struct{}

// Now devuelve la hora actual.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock reloj controlable para tests.
type FakeClock struct {
	now time.Time
}

// NewFake crea un FakeClock fijado en t.
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now devuelve la hora simulada.
func (f *FakeClock) Now() time.Time {
	return f.now
}

// Advance avanza el reloj d.
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
