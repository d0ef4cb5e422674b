package core

// Action is a semantic input, abstracted from the physical key.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionToggle      // flip the cell under the cursor
	ActionPause       // pause or resume the simulation
	ActionStep        // advance exactly one generation
	ActionClear       // replace the board with a blank one
	ActionRandomize   // re-roll every cell
	ActionWider       // grow width (and height when linked)
	ActionNarrower    // shrink width
	ActionTaller      // grow height
	ActionShorter     // shrink height
	ActionLink        // toggle linked dimensions
	ActionStamp       // place the selected pattern at the cursor
	ActionNextPattern // cycle the selected pattern
	ActionFaster      // shorten the generation interval
	ActionSlower      // lengthen the generation interval
	ActionSave        // persist the board
	ActionRestart
	ActionBack
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionToggle:      "Toggle",
	ActionPause:       "Pause",
	ActionStep:        "Step",
	ActionClear:       "Clear",
	ActionRandomize:   "Randomize",
	ActionWider:       "Wider",
	ActionNarrower:    "Narrower",
	ActionTaller:      "Taller",
	ActionShorter:     "Shorter",
	ActionLink:        "Link",
	ActionStamp:       "Stamp",
	ActionNextPattern: "NextPattern",
	ActionFaster:      "Faster",
	ActionSlower:      "Slower",
	ActionSave:        "Save",
	ActionRestart:     "Restart",
	ActionBack:        "Back",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// PointerKind distinguishes the phases of a pointer gesture.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerDrag
	PointerRelease
)

// PointerEvent is a mouse event in screen cell coordinates. Paint marks
// a gesture that sets cells alive instead of toggling them.
type PointerEvent struct {
	X, Y  int
	Kind  PointerKind
	Paint bool
}

// InputFrame collects the input for one platform tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerEvent // in arrival order
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}
