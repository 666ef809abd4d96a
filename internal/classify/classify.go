// Package classify centralizes the substring heuristics the handlers used to
// inline: job-type inference from posting titles and streaming-platform
// inference from homepage URLs. Both are pure functions.
package classify

import "strings"

// Job types recognized by TipoVaga, in precedence order.
const (
	TipoEstagio  = "Estágio"
	TipoJunior   = "Júnior"
	TipoAdvogado = "Advogado"
)

// TipoVaga infers the job category from a posting title and description.
// Matching is case-insensitive; precedence is internship keyword, then
// junior keyword, then the default "Advogado".
func TipoVaga(titulo, descricao string) string {
	text := strings.ToLower(titulo + " " + descricao)

	for _, kw := range []string{"estágio", "estagio", "estagiário", "estagiario"} {
		if strings.Contains(text, kw) {
			return TipoEstagio
		}
	}
	for _, kw := range []string{"júnior", "junior", "jr."} {
		if strings.Contains(text, kw) {
			return TipoJunior
		}
	}
	return TipoAdvogado
}

// Plataforma infers the streaming platform from a title's homepage URL.
// Unknown or empty hosts map to "Outros".
func Plataforma(homepageURL string) string {
	u := strings.ToLower(homepageURL)
	switch {
	case strings.Contains(u, "netflix."):
		return "Netflix"
	case strings.Contains(u, "primevideo.") || strings.Contains(u, "amazon."):
		return "Prime Video"
	case strings.Contains(u, "hbomax.") || strings.Contains(u, "max.com"):
		return "Max"
	case strings.Contains(u, "disneyplus."):
		return "Disney+"
	case strings.Contains(u, "globoplay."):
		return "Globoplay"
	case strings.Contains(u, "youtube."):
		return "YouTube"
	default:
		return "Outros"
	}
}
