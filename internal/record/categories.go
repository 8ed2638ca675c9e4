// Package record provides the dataset recording workflow: the gesture
// catalog, recording plans, output naming, quality scoring, and the
// session manifest.
package record

// Gesture is one catalog entry: the name used in filenames and
// metadata, plus the instruction shown to the signer.
type Gesture struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category groups related gestures for batch recording.
type Category struct {
	Name     string    `json:"name"`
	Gestures []Gesture `json:"gestures"`
}

// Catalog is the predefined gesture list for dataset creation,
// recorded in order.
var Catalog = []Category{
	{
		Name: "Static Handshapes",
		Gestures: []Gesture{
			{"point", "Index finger extended, others closed"},
			{"fist", "All fingers closed"},
			{"open_hand", "All fingers extended and spread"},
			{"thumbs_up", "Thumb extended upward, others closed"},
			{"peace", "Index and middle extended (V-sign)"},
		},
	},
	{
		Name: "Dynamic Movements",
		Gestures: []Gesture{
			{"wave", "Open hand moving side-to-side"},
			{"circle", "Hand making circular motion in air"},
			{"swipe_right", "Hand moving smoothly left to right"},
		},
	},
	{
		Name: "Transitions",
		Gestures: []Gesture{
			{"open_close", "Hand opening and closing repeatedly"},
			{"point_fist", "Alternating between point and fist"},
		},
	},
	{
		Name: "Directional",
		Gestures: []Gesture{
			{"push_forward", "Hand moving away from body"},
			{"pull_back", "Hand moving toward body"},
			{"point_up", "Index finger pointing upward"},
		},
	},
	{
		Name: "Complex",
		Gestures: []Gesture{
			{"ok_sign", "Thumb and index forming circle, others extended"},
			{"pinch_release", "Thumb and index pinching together and releasing"},
		},
	},
}

// TotalGestures returns the number of unique gestures in the catalog.
func TotalGestures() int {
	n := 0
	for _, c := range Catalog {
		n += len(c.Gestures)
	}
	return n
}

// FindGesture looks a gesture up by name and returns its category.
func FindGesture(name string) (Gesture, string, bool) {
	for _, c := range Catalog {
		for _, g := range c.Gestures {
			if g.Name == name {
				return g, c.Name, true
			}
		}
	}
	return Gesture{}, "", false
}
