// Package extract finds JSON-like spans ("candidates") in preprocessed LLM
// output. A fixed, priority-tagged table of patterns is run in full over the
// text; every match is deduplicated by its exact text, parsed, judged for
// whether it looks like scene data, and scored. [Best] ranks the candidates
// by priority and then confidence and picks the first one that both parses
// and looks like a scene, falling back to the top-ranked candidate so that
// syntax repair still gets a chance at it.
package extract
