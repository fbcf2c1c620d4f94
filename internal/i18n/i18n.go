// Package i18n holds the label tables and default category seeds for the
// two supported display languages.
package i18n

import "golang.org/x/text/language"

const (
	LangEN = "en"
	LangPT = "pt"
)

// Tag resolves a configured language code to its x/text tag.
func Tag(lang string) language.Tag {
	if lang == LangEN {
		return language.AmericanEnglish
	}
	return language.BrazilianPortuguese
}

var labels = map[string]map[string]string{
	LangEN: {
		"summary.title":      "Performance summary",
		"summary.trades":     "Trades",
		"summary.win_rate":   "Win rate",
		"summary.net_result": "Net result",
		"summary.points":     "Total points",
		"summary.lots":       "Total lots",
		"breakdown.trigger":  "By trigger",
		"breakdown.region":   "By region",
		"breakdown.side":     "By side",
		"side.buy":           "Buy",
		"side.sell":          "Sell",
		"status.gain":        "Gain",
		"status.loss":        "Loss",
		"status.break_even":  "Break-even",
		"window.all":         "All time",
		"window.today":       "Today",
		"window.week":        "This week",
		"window.month":       "This month",
		"chart.no_data":      "No data",
		"coach.fallback":     "Could not generate a comment for this trade.",
		"coach.system": "You are a trading performance coach. Reply with one " +
			"concise, actionable comment of at most 70 words, in English.",
	},
	LangPT: {
		"summary.title":      "Resumo de desempenho",
		"summary.trades":     "Operações",
		"summary.win_rate":   "Taxa de acerto",
		"summary.net_result": "Resultado líquido",
		"summary.points":     "Total de pontos",
		"summary.lots":       "Total de lotes",
		"breakdown.trigger":  "Por gatilho",
		"breakdown.region":   "Por região",
		"breakdown.side":     "Por lado",
		"side.buy":           "Compra",
		"side.sell":          "Venda",
		"status.gain":        "Ganho",
		"status.loss":        "Perda",
		"status.break_even":  "Empate",
		"window.all":         "Todo o período",
		"window.today":       "Hoje",
		"window.week":        "Esta semana",
		"window.month":       "Este mês",
		"chart.no_data":      "Sem dados",
		"coach.fallback":     "Não foi possível gerar um comentário para esta operação.",
		"coach.system": "Você é um coach de desempenho em trading. Responda com um " +
			"comentário conciso e acionável de no máximo 70 palavras, em português.",
	},
}

// T returns the label for key in the given language, falling back to the
// key itself when no label exists.
func T(lang, key string) string {
	if m, ok := labels[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := labels[LangPT][key]; ok {
		return v
	}
	return key
}

// DefaultRegions returns the locale's seed list for the region tag set.
func DefaultRegions(lang string) []string {
	if lang == LangEN {
		return []string{"Support", "Resistance", "Mid range", "Top", "Bottom"}
	}
	return []string{"Suporte", "Resistência", "Meio do range", "Topo", "Fundo"}
}

// DefaultTriggers returns the locale's seed list for the trigger tag set.
func DefaultTriggers(lang string) []string {
	if lang == LangEN {
		return []string{"Pullback", "Breakout", "Reversal", "Range fade", "Retest"}
	}
	return []string{"Pullback", "Rompimento", "Reversão", "Violinada", "Reteste"}
}
