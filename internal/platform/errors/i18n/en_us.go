package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown = "UNKNOWN"

	CodeDiceMalformedExpression = "DICE_MALFORMED_EXPRESSION"
	CodeDiceInvalidCount        = "DICE_INVALID_COUNT"
	CodeDiceInvalidSides        = "DICE_INVALID_SIDES"
	CodeDiceLimitExceeded       = "DICE_LIMIT_EXCEEDED"

	CodeRollInvalidAttempts  = "ROLL_INVALID_ATTEMPTS"
	CodeRollConditionInvalid = "ROLL_CONDITION_INVALID"
	CodeRollRangeInvalid     = "ROLL_RANGE_INVALID"
	CodeRollStatsUnavailable = "ROLL_STATS_UNAVAILABLE"

	CodeStockUnsupportedCurrency = "STOCK_UNSUPPORTED_CURRENCY"
	CodeStockMissingTicker       = "STOCK_MISSING_TICKER"
	CodeStockQuoteUnavailable    = "STOCK_QUOTE_UNAVAILABLE"

	CodeImageMissing = "IMAGE_MISSING"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeUnknown: "Something went wrong",

		// Dice notation errors
		CodeDiceMalformedExpression: "That is not valid dice notation, try something like 2d6+3",
		CodeDiceInvalidCount:        "Dice count must be a positive number",
		CodeDiceInvalidSides:        "Dice need at least two sides",
		CodeDiceLimitExceeded:       "At most {{.MaxDice}} dice with {{.MaxSides}} sides each",

		// Roll evaluation errors
		CodeRollInvalidAttempts:  "Attempt limit must be at least one",
		CodeRollConditionInvalid: "Could not understand the condition {{.Condition}}, try something like >=18",
		CodeRollRangeInvalid:     "The upper bound must be a positive number",
		CodeRollStatsUnavailable: "Roll statistics are not available right now",

		// Stock lookup errors
		CodeStockUnsupportedCurrency: "Unsupported currency: {{.Currency}}",
		CodeStockMissingTicker:       "No stock specified, for example: stock NOK",
		CodeStockQuoteUnavailable:    "Could not find a price for {{.Symbol}}",

		// Image resource errors
		CodeImageMissing: "The image for this command is missing",
	},
}
