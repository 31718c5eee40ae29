package lookup

var positionTable = []synonymSet{
	{"left-center", []string{"left_center", "center_left", "centre_left", "left_centre", "mid_left", "middle_left", "left_middle", "leftcenter", "centerleft", "left_of_center", "inner_left"}},
	{"right-center", []string{"right_center", "center_right", "centre_right", "right_centre", "mid_right", "middle_right", "right_middle", "rightcenter", "centerright", "right_of_center", "inner_right"}},
	{"left", []string{"l", "left_side", "leftside", "stage_left", "far_left", "screen_left", "on_the_left", "to_the_left"}},
	{"right", []string{"r", "right_side", "rightside", "stage_right", "far_right", "screen_right", "on_the_right", "to_the_right"}},
	{"center", []string{"centre", "middle", "mid", "c", "center_stage", "centre_stage", "centered", "centred", "front", "front_center", "in_the_middle"}},
}

var positionIndex = reverseIndex(positionTable)

// Position resolves a position variant to one of the canonical positions.
func Position(word string) (string, bool) {
	canonical, ok := positionIndex[Key(word)]
	return canonical, ok
}

var actionTable = []synonymSet{
	{"enters", []string{"enter", "entering", "entered", "entrance", "arrive", "arrives", "arriving", "arrived", "appear", "appears", "appearing", "join", "joins", "comes_in", "walks_in", "steps_in", "fade_in", "fades_in", "show", "shows_up"}},
	{"exits", []string{"exit", "exiting", "exited", "leave", "leaves", "leaving", "left_scene", "depart", "departs", "departing", "disappear", "disappears", "goes", "walks_out", "steps_out", "fade_out", "fades_out", "hide", "hides"}},
	{"speaks", []string{"speak", "speaking", "spoke", "talk", "talks", "talking", "say", "says", "saying", "said", "reply", "replies", "answer", "answers", "dialogue", "dialog", "whisper", "whispers", "shout", "shouts"}},
	{"moves", []string{"move", "moving", "moved", "walk", "walks", "walking", "approach", "approaches", "approaching", "step", "steps", "shift", "shifts", "turn", "turns", "run", "runs", "slide", "slides"}},
}

var actionIndex = reverseIndex(actionTable)

// Action resolves an action variant to one of the canonical actions.
func Action(word string) (string, bool) {
	canonical, ok := actionIndex[Key(word)]
	return canonical, ok
}
