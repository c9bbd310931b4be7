package mocks

// CallLog records the order of mock invocations. Share one instance across
// several mocks to assert cross-store call ordering in deletion-flow tests.
type CallLog struct {
	Calls []string
}

// Record appends a call name to the log.
func (l *CallLog) Record(name string) {
	if l == nil {
		return
	}
	l.Calls = append(l.Calls, name)
}

// Index returns the position of the first call with the given name, or -1.
func (l *CallLog) Index(name string) int {
	for i, c := range l.Calls {
		if c == name {
			return i
		}
	}
	return -1
}
