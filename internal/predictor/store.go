package predictor

import "log/slog"

// State is the load outcome of a slot.
type State int

const (
	Absent State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "absent"
}

// Slot holds one optional predictor.
type Slot struct {
	Name      string // slot name, "heart" or "cholesterol"
	Path      string
	State     State
	Model     string // artifact name, when Loaded
	Predictor Predictor
	Err       error // load failure, when Absent
}

// NewSlot returns a Loaded slot wrapping p, or an Absent one when p is nil.
func NewSlot(name string, p Predictor) Slot {
	if p == nil {
		return Slot{Name: name, State: Absent}
	}
	return Slot{Name: name, State: Loaded, Predictor: p}
}

// Store holds the heart and cholesterol slots. It is filled once at
// startup and read-only afterwards.
type Store struct {
	Heart       Slot
	Cholesterol Slot
}

// Artifact names a slot, the file to load it from and the expected
// feature order.
type Artifact struct {
	Slot     string
	Path     string
	Features []string
}

// Load fills a store from the heart and cholesterol artifacts. A failed
// load is logged and leaves its slot Absent; it never fails the caller.
func Load(logger *slog.Logger, heart, cholesterol Artifact) *Store {
	return &Store{
		Heart:       loadSlot(logger, heart),
		Cholesterol: loadSlot(logger, cholesterol),
	}
}

func loadSlot(logger *slog.Logger, a Artifact) Slot {
	slot := Slot{Name: a.Slot, Path: a.Path, State: Absent}

	m, err := LoadLinearModel(a.Path, a.Features)
	if err != nil {
		logger.Error("failed to load model", "slot", a.Slot, "path", a.Path, "error", err)
		slot.Err = err
		return slot
	}

	logger.Info("model loaded", "slot", a.Slot, "path", a.Path, "name", m.Name, "kind", m.Kind)
	slot.State = Loaded
	slot.Model = m.Name
	slot.Predictor = m
	return slot
}

// Slots returns both slots in a stable order.
func (s *Store) Slots() []Slot {
	return []Slot{s.Heart, s.Cholesterol}
}
