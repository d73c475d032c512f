// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice notation errors
	CodeDiceMalformedExpression Code = "DICE_MALFORMED_EXPRESSION"
	CodeDiceInvalidCount        Code = "DICE_INVALID_COUNT"
	CodeDiceInvalidSides        Code = "DICE_INVALID_SIDES"
	CodeDiceLimitExceeded       Code = "DICE_LIMIT_EXCEEDED"

	// Roll evaluation errors
	CodeRollInvalidAttempts  Code = "ROLL_INVALID_ATTEMPTS"
	CodeRollConditionInvalid Code = "ROLL_CONDITION_INVALID"
	CodeRollRangeInvalid     Code = "ROLL_RANGE_INVALID"
	CodeRollStatsUnavailable Code = "ROLL_STATS_UNAVAILABLE"

	// Stock lookup errors
	CodeStockUnsupportedCurrency Code = "STOCK_UNSUPPORTED_CURRENCY"
	CodeStockMissingTicker       Code = "STOCK_MISSING_TICKER"
	CodeStockQuoteUnavailable    Code = "STOCK_QUOTE_UNAVAILABLE"

	// Image resource errors
	CodeImageMissing Code = "IMAGE_MISSING"
)
