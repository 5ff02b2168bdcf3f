package valueobject

// SemaphoreState is a traffic-light state as rendered to the user.
type SemaphoreState string

const (
	SemaphoreGreen  SemaphoreState = "verde"
	SemaphoreYellow SemaphoreState = "amarillo"
	SemaphoreRed    SemaphoreState = "rojo"
)

var semaphoreSeverity = map[SemaphoreState]int{
	SemaphoreGreen:  0,
	SemaphoreYellow: 1,
	SemaphoreRed:    2,
}

// WorseThan reports whether s is a worse state than other (red > yellow > green).
func (s SemaphoreState) WorseThan(other SemaphoreState) bool {
	return semaphoreSeverity[s] > semaphoreSeverity[other]
}

// Worst returns the worst of the given states, green when none are given.
func Worst(states ...SemaphoreState) SemaphoreState {
	worst := SemaphoreGreen
	for _, state := range states {
		if state.WorseThan(worst) {
			worst = state
		}
	}
	return worst
}
