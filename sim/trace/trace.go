package trace

// Level controls the verbosity of tick tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelFull captures every device action of every tick.
	LevelFull Level = "full"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone: true,
	LevelFull: true,
	"":        true, // empty defaults to full
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Trace collects device-action records during a simulation run.
type Trace struct {
	Level   Level
	Records []Record
}

// New creates a Trace ready for recording at the given level.
func New(level Level) *Trace {
	if level == "" {
		level = LevelFull
	}
	return &Trace{
		Level:   level,
		Records: make([]Record, 0),
	}
}

// Append records one device action. Safe on a nil Trace and a no-op when
// the level disables collection, so the engine never guards its call sites.
func (t *Trace) Append(r Record) {
	if t == nil || t.Level == LevelNone {
		return
	}
	t.Records = append(t.Records, r)
}

// ForProcess returns the records naming the given process, in tick order.
func (t *Trace) ForProcess(name string) []Record {
	if t == nil {
		return nil
	}
	var out []Record
	for _, r := range t.Records {
		if r.Process == name {
			out = append(out, r)
		}
	}
	return out
}
