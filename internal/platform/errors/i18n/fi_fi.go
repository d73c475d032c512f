package i18n

var fiFICatalog = &Catalog{
	locale: "fi-FI",
	messages: map[Code]string{
		CodeUnknown: "Jokin meni pieleen",

		// Dice notation errors
		CodeDiceMalformedExpression: "Tuo ei ole kelvollinen noppamerkintä, kokeile esimerkiksi 2d6+3",
		CodeDiceInvalidCount:        "Noppien määrän pitää olla positiivinen luku",
		CodeDiceInvalidSides:        "Nopassa pitää olla vähintään kaksi sivua",
		CodeDiceLimitExceeded:       "Enintään {{.MaxDice}} noppaa ja {{.MaxSides}} sivua per noppa",

		// Roll evaluation errors
		CodeRollInvalidAttempts:  "Yritysrajan pitää olla vähintään yksi",
		CodeRollConditionInvalid: "En ymmärtänyt ehtoa {{.Condition}}, kokeile esimerkiksi >=18",
		CodeRollRangeInvalid:     "Ylärajan pitää olla positiivinen luku",
		CodeRollStatsUnavailable: "Heittotilastot eivät ole juuri nyt saatavilla",

		// Stock lookup errors
		CodeStockUnsupportedCurrency: "Valuuttaa ei tueta: {{.Currency}}",
		CodeStockMissingTicker:       "Osake puuttuu, esimerkiksi: stock NOK",
		CodeStockQuoteUnavailable:    "Osakkeelle {{.Symbol}} ei löytynyt hintaa",

		// Image resource errors
		CodeImageMissing: "Tämän komennon kuva on hukassa",
	},
}
