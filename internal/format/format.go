// Package format holds the pure presentation helpers shared by the cache
// transforms: BRL currency strings, pt-BR relative dates and text truncation.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Moeda renders a value in BRL with a thousands separator and no decimal
// places, e.g. 3000 -> "R$ 3.000".
func Moeda(valor float64) string {
	n := int64(valor + 0.5)
	negative := n < 0
	if negative {
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "R$ -" + b.String()
	}
	return "R$ " + b.String()
}

// FaixaSalarial renders a salary range, e.g. (3000, 5000) -> "R$ 3.000 - R$ 5.000".
// A zero bound collapses the range to the known side; both zero yields
// "A combinar" (the jobs board omits salaries on many postings).
func FaixaSalarial(min, max float64) string {
	switch {
	case min <= 0 && max <= 0:
		return "A combinar"
	case min <= 0:
		return "Até " + Moeda(max)
	case max <= 0:
		return "A partir de " + Moeda(min)
	case min == max:
		return Moeda(min)
	default:
		return Moeda(min) + " - " + Moeda(max)
	}
}

// TempoRelativo renders how long ago t happened, in pt-BR, relative to now.
func TempoRelativo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "agora"
	case d < time.Hour:
		m := int(d.Minutes())
		if m == 1 {
			return "há 1 minuto"
		}
		return fmt.Sprintf("há %d minutos", m)
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "há 1 hora"
		}
		return fmt.Sprintf("há %d horas", h)
	case d < 30*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "há 1 dia"
		}
		return fmt.Sprintf("há %d dias", days)
	case d < 365*24*time.Hour:
		months := int(d.Hours() / 24 / 30)
		if months == 1 {
			return "há 1 mês"
		}
		return fmt.Sprintf("há %d meses", months)
	default:
		years := int(d.Hours() / 24 / 365)
		if years == 1 {
			return "há 1 ano"
		}
		return fmt.Sprintf("há %d anos", years)
	}
}

// Truncar cuts s to at most max runes, appending "..." when shortened.
// Used as the fallback headline when AI enrichment is unavailable.
func Truncar(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

// Periodo renders (ano, mes) as "MM/YYYY".
func Periodo(ano, mes int) string {
	return fmt.Sprintf("%02d/%04d", mes, ano)
}
