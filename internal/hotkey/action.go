// ABOUTME: Fixed hotkey table mapping chords to pure overlay actions
// ABOUTME: Each Action carries its move/resize effect so dispatch has no hidden state

package hotkey

import "sort"

// Action is a high-level overlay edit intent.
type Action int

const (
	ActionNone Action = iota
	ActionToggleEditMode
	ActionGrow
	ActionShrink
	ActionMoveDown
	ActionMoveUp
	ActionMoveRight
	ActionMoveLeft
	ActionMoveDownFast
	ActionMoveUpFast
	ActionMoveRightFast
	ActionMoveLeftFast
)

// Step sizes for nudging the label.
const (
	FineStep   = 1
	CoarseStep = 10
)

// Effect is the geometry change an action applies.
type Effect struct {
	DX, DY int
	DSize  int
}

var effects = map[Action]Effect{
	ActionGrow:          {DSize: 1},
	ActionShrink:        {DSize: -1},
	ActionMoveDown:      {DY: FineStep},
	ActionMoveUp:        {DY: -FineStep},
	ActionMoveRight:     {DX: FineStep},
	ActionMoveLeft:      {DX: -FineStep},
	ActionMoveDownFast:  {DY: CoarseStep},
	ActionMoveUpFast:    {DY: -CoarseStep},
	ActionMoveRightFast: {DX: CoarseStep},
	ActionMoveLeftFast:  {DX: -CoarseStep},
}

// Effect returns the geometry change of a; zero for toggles and ActionNone.
func (a Action) Effect() Effect {
	return effects[a]
}

// String returns a human-friendly name for the action.
func (a Action) String() string {
	switch a {
	case ActionToggleEditMode:
		return "Toggle edit mode"
	case ActionGrow:
		return "Grow text"
	case ActionShrink:
		return "Shrink text"
	case ActionMoveDown:
		return "Move down"
	case ActionMoveUp:
		return "Move up"
	case ActionMoveRight:
		return "Move right"
	case ActionMoveLeft:
		return "Move left"
	case ActionMoveDownFast:
		return "Move down x10"
	case ActionMoveUpFast:
		return "Move up x10"
	case ActionMoveRightFast:
		return "Move right x10"
	case ActionMoveLeftFast:
		return "Move left x10"
	default:
		return "None"
	}
}

var defaultBindings = map[Chord]Action{
	{ModAlt, KeyM}:               ActionToggleEditMode,
	{ModNone, KeyNumpadAdd}:      ActionGrow,
	{ModNone, KeyNumpadSubtract}: ActionShrink,
	{ModNone, KeyNumpad2}:        ActionMoveDown,
	{ModNone, KeyNumpad8}:        ActionMoveUp,
	{ModAlt, KeyNumpad2}:         ActionMoveDownFast,
	{ModAlt, KeyNumpad8}:         ActionMoveUpFast,
	{ModNone, KeyNumpad6}:        ActionMoveRight,
	{ModNone, KeyNumpad4}:        ActionMoveLeft,
	{ModAlt, KeyNumpad6}:         ActionMoveRightFast,
	{ModAlt, KeyNumpad4}:         ActionMoveLeftFast,
}

// Lookup returns the action bound to c, or ActionNone.
func Lookup(c Chord) Action {
	return defaultBindings[c]
}

// Binding pairs a chord with its action.
type Binding struct {
	Chord  Chord
	Action Action
}

// Bindings returns the table ordered by action, then chord name.
func Bindings() []Binding {
	out := make([]Binding, 0, len(defaultBindings))
	for c, a := range defaultBindings {
		out = append(out, Binding{Chord: c, Action: a})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Chord.String() < out[j].Chord.String()
	})
	return out
}
