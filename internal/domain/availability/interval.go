// Package availability calcula os horários livres de um profissional a partir
// do expediente do dia e do conjunto de intervalos ocupados.
package availability

import "time"

// Interval é semiaberto: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Overlaps segue [a,b) ∩ [c,d) ≠ ∅ ⇔ a < d && b > c.
// Intervalos que apenas se encostam não se sobrepõem.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// Valid: intervalo vazio ou invertido não é válido.
func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}
