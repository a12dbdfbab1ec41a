package i18n

var translations = map[Language]map[string]string{
	Spanish: {
		// Game UI
		"title":       "Blackjack",
		"bet":         "Apuesta",
		"deal":        "Repartir",
		"hit":         "Pedir",
		"stand":       "Plantarse",
		"double":      "Doblar",
		"new-game":    "Nuevo Juego",
		"player":      "Jugador",
		"dealer":      "Crupier",
		"balance":     "Saldo",
		"win":         "¡Ganaste!",
		"lose":        "Perdiste",
		"push":        "Empate",
		"blackjack":   "¡Blackjack!",
		"bust":        "Te pasaste",
		"dealer-bust": "Crupier se pasó",

		// Settings
		"settings":          "Configuración",
		"language":          "Idioma",
		"sound":             "Sonido",
		"on":                "Activado",
		"off":               "Desactivado",
		"soft":              "suave",
		"spanish":           "Español",
		"english":           "Inglés",
		"save":              "Guardar",
		"cancel":            "Cancelar",
		"sound-unavailable": "Sonidos no disponibles",

		// Statistics
		"statistics":   "Estadísticas",
		"session":      "Sesión",
		"lifetime":     "Total",
		"games":        "Partidas",
		"wins":         "Victorias",
		"losses":       "Derrotas",
		"pushes":       "Empates",
		"busts":        "Pasadas",
		"double-downs": "Dobladas",
		"net":          "Neto",
		"win-rate":     "Porcentaje de victorias",
		"streak":       "Racha",
	},
	English: {
		// Game UI
		"title":       "Blackjack",
		"bet":         "Bet",
		"deal":        "Deal",
		"hit":         "Hit",
		"stand":       "Stand",
		"double":      "Double",
		"new-game":    "New Game",
		"player":      "Player",
		"dealer":      "Dealer",
		"balance":     "Balance",
		"win":         "You Win!",
		"lose":        "You Lose",
		"push":        "Push",
		"blackjack":   "Blackjack!",
		"bust":        "Bust",
		"dealer-bust": "Dealer Bust",

		// Settings
		"settings":          "Settings",
		"language":          "Language",
		"sound":             "Sound",
		"on":                "On",
		"off":               "Off",
		"soft":              "soft",
		"spanish":           "Spanish",
		"english":           "English",
		"save":              "Save",
		"cancel":            "Cancel",
		"sound-unavailable": "Sounds unavailable",

		// Statistics
		"statistics":   "Statistics",
		"session":      "Session",
		"lifetime":     "Lifetime",
		"games":        "Games",
		"wins":         "Wins",
		"losses":       "Losses",
		"pushes":       "Pushes",
		"busts":        "Busts",
		"double-downs": "Double Downs",
		"net":          "Net",
		"win-rate":     "Win Rate",
		"streak":       "Streak",
	},
}
