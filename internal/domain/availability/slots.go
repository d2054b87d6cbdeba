package availability

import (
	"iter"
	"time"
)

const SlotLayout = "15:04"

// Slots percorre a janela em passos de step e devolve o início de cada
// candidato [c, c+step) que não colide com nenhum intervalo ocupado.
//
// A sequência é preguiçosa e pode ser percorrida quantas vezes for preciso:
// não guarda estado entre iterações. step <= 0 não gera nada.
func Slots(window Interval, step time.Duration, occupied []Interval) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if step <= 0 {
			return
		}

		for cur := window.Start; !cur.Add(step).After(window.End); cur = cur.Add(step) {
			if isFree(NewInterval(cur, step), occupied) {
				if !yield(cur) {
					return
				}
			}
		}
	}
}

func isFree(candidate Interval, occupied []Interval) bool {
	for _, o := range occupied {
		if Overlaps(candidate, o) {
			return false
		}
	}
	return true
}

// Format materializa a sequência como HH:MM. Nunca devolve nil.
func Format(seq iter.Seq[time.Time]) []string {
	out := []string{}
	for t := range seq {
		out = append(out, t.Format(SlotLayout))
	}
	return out
}

// IsFree diz se o intervalo inteiro está livre e contido na janela.
func IsFree(window, candidate Interval, occupied []Interval) bool {
	if candidate.Start.Before(window.Start) || candidate.End.After(window.End) {
		return false
	}
	return isFree(candidate, occupied)
}
