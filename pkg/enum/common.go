package enum

// DateFormat and other time format constants
const (
	ISOFormat  = "2006-01-02T15:04:05Z"
	TimeFormat = "2006-01-02 15:04:05"
	DateFormat = "2006-01-02"
)
