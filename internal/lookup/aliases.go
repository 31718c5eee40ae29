package lookup

// FieldAliases maps a canonical field name to the alternative names LLMs use
// for it, in the order they are tried. The canonical name comes first.
type FieldAliases struct {
	Canonical string
	Aliases   []string
}

// Envelope keys that wrap the real payload.
var EnvelopeKeys = []string{"data", "result", "vn_scene", "vnScene", "vn-scene", "sceneData", "scene_data"}

// SceneKeys are tried in order when looking for the scene object.
var SceneKeys = []string{"scene", "setting", "environment", "location", "stage", "backdrop", "scenery"}

// SceneFields lists the aliases of each scene field.
var SceneFields = []FieldAliases{
	{"background", []string{"background", "bg", "backdrop", "background_image", "backgroundImage", "bg_image", "location", "setting", "place", "environment", "scenery", "image", "scene_background"}},
	{"music", []string{"music", "bgm", "soundtrack", "track", "song", "background_music", "backgroundMusic", "bg_music", "theme", "audio"}},
	{"sfx", []string{"sfx", "sound", "sound_effect", "soundEffect", "sound_effects", "soundEffects", "effect", "sounds", "se", "fx"}},
}

// CharacterKeys are tried in order when looking for the characters array.
var CharacterKeys = []string{"characters", "chars", "sprites", "actors", "npcs", "people", "cast", "speakers"}

// SingleCharacterKeys hold a lone character object.
var SingleCharacterKeys = []string{"character", "char", "speaker", "actor", "npc"}

// CharacterFields lists the aliases of each character field.
var CharacterFields = []FieldAliases{
	{"name", []string{"name", "character", "char", "who", "speaker", "character_name", "characterName", "charName", "actor", "sprite", "id"}},
	{"expression", []string{"expression", "emotion", "mood", "face", "feeling", "expr", "emote", "sprite_expression", "facial_expression", "state"}},
	{"outfit", []string{"outfit", "costume", "clothes", "clothing", "attire", "wardrobe", "skin", "dress"}},
	{"position", []string{"position", "pos", "placement", "location", "side", "slot", "stage_position"}},
	{"action", []string{"action", "movement", "act", "motion", "entrance", "animation"}},
}

// ChoiceKeys are tried in order when looking for the choices array.
var ChoiceKeys = []string{"choices", "options", "decisions", "responses", "buttons", "actions", "menu"}

// ChoiceFields lists the aliases of the two choice fields.
var ChoiceFields = []FieldAliases{
	{"label", []string{"label", "text", "title", "name", "option", "choice", "short", "button", "caption", "display"}},
	{"prompt", []string{"prompt", "description", "response", "message", "value", "content", "full_text", "fullText", "action", "detail", "reply", "input", "desc"}},
}

// KnownTopLevelKeys are never reported as unknown.
var KnownTopLevelKeys = []string{"scene", "characters", "choices", "data", "result", "vn_scene"}

// Contains reports whether key is in list.
func Contains(list []string, key string) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}

// First returns the first key from keys present in obj.
func First(obj map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		if _, ok := obj[k]; ok {
			return k, true
		}
	}
	return "", false
}
