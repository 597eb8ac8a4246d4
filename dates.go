package finsync

// DateLayout is the canonical day-granularity format used in persisted keys.
const DateLayout = "2006-01-02"

// DateTimeLayout is the canonical format for keys carrying a time of day,
// as returned by the news and social-sentiment endpoints.
const DateTimeLayout = "2006-01-02 15:04:05"
