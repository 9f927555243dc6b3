package session

import "time"

const dayFormat = "2006-01-02"

// onTaskChecked advances the streak for a task completion at now. The streak
// is a ratchet: same calendar day is a no-op, exactly one day after the last
// active date extends the run, anything else restarts it at 1. Longest never
// decreases.
func (st StreakState) onTaskChecked(now time.Time) StreakState {
	today := now.UTC().Format(dayFormat)

	if st.LastActiveDate == today {
		return st
	}

	current := 1
	if st.LastActiveDate != "" {
		if prev, err := time.Parse(dayFormat, st.LastActiveDate); err == nil {
			days := int(now.UTC().Truncate(24*time.Hour).Sub(prev) / (24 * time.Hour))
			if days == 1 {
				current = st.Current + 1
			}
		}
	}

	longest := st.Longest
	if current > longest {
		longest = current
	}

	return StreakState{
		Current:        current,
		Longest:        longest,
		LastActiveDate: today,
	}
}
