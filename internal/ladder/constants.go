package ladder

const (
	// DaysPerCycle is the length of the daily ladder before it wraps
	DaysPerCycle = 7

	// ClaimKeyDailyFormat keys a daily slot within one streak cycle
	ClaimKeyDailyFormat = "cycle%d-day%d"
)
