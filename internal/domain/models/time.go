package models

// Persisted date formats. Calendar dates (birth dates, due dates, maintenance
// dates) use DateLayout; transaction and creation timestamps use
// TimestampLayout. Both match the flat files written by earlier versions of
// the record keeper, so existing data loads unchanged.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)
