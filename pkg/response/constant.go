package response

const (
	MessageSuccess = "Success"

	// DateTimeFormat keeps millisecond precision so error timestamps are
	// useful when correlating with logs.
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)
