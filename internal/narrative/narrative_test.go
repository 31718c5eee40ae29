package narrative

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/core/scene"
	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

func TestExtract_ProseWithList(t *testing.T) {
	text := "Alice smiles and walks into the kitchen. \n1. Say hi\n2. Leave"

	out := Extract(text, scene.Vocabulary{})

	want := &scene.Result{
		Scene: &scene.Scene{Background: utils.Ptr("kitchen")},
		Characters: []scene.Character{{
			Name:       "Alice",
			Expression: utils.Ptr("happy"),
			Action:     utils.Ptr(scene.ActionEnters),
		}},
		Choices: []scene.Choice{
			{Label: "Say hi", Prompt: "Say hi"},
			{Label: "Leave", Prompt: "Leave"},
		},
	}
	if diff := cmp.Diff(want, out.Result); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
	if out.Confidence != 45 {
		t.Errorf("Confidence = %d, want 45", out.Confidence)
	}
	if len(out.Extractions) != 3 {
		t.Errorf("Extractions = %v, want 3 entries", out.Extractions)
	}
}

func TestExtract_NothingFound(t *testing.T) {
	for _, text := range []string{"", "   ", "ok."} {
		out := Extract(text, scene.Vocabulary{})
		if out.Result != nil || out.Confidence != 0 {
			t.Errorf("Extract(%q) = %+v, want nil result and zero confidence", text, out)
		}
	}
}

func TestExtract_Background(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid []string
		want  string
	}{
		{name: "explicit phrase against vocabulary", text: "They met at the Old Lighthouse, as promised.", valid: []string{"old_lighthouse", "beach"}, want: "old_lighthouse"},
		{name: "keyword table", text: "The classroom is empty after the bell.", want: "classroom"},
		{name: "keyword mapped to vocabulary", text: "Rain drums on the café window.", valid: []string{"Cafe_Interior"}, want: "Cafe_Interior"},
		{name: "time of day suffix when valid", text: "The park is quiet at night.", valid: []string{"park", "park_night"}, want: "park_night"},
		{name: "time of day ignored when unknown", text: "The park is quiet at night.", want: "park"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Extract(tt.text, scene.Vocabulary{Backgrounds: tt.valid})
			if out.Result == nil || out.Result.Scene == nil {
				t.Fatalf("Extract() found no background, extractions %v", out.Extractions)
			}
			if got := utils.Deref(out.Result.Scene.Background); got != tt.want {
				t.Errorf("background = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_CharacterPasses(t *testing.T) {
	text := "Mira glances at the door.\n" +
		"Kai: Ha! I can't stop laughing, this is great.\n" +
		"*Rowan trembles and backs away*\n" +
		"Then Kai grins again."

	out := Extract(text, scene.Vocabulary{Characters: []string{"Mira"}})
	if out.Result == nil {
		t.Fatalf("Extract() found nothing")
	}

	want := []scene.Character{
		{Name: "Mira"},
		{Name: "Kai", Expression: utils.Ptr("happy"), Action: utils.Ptr(scene.ActionSpeaks)},
		{Name: "Rowan", Expression: utils.Ptr("scared")},
	}
	if diff := cmp.Diff(want, out.Result.Characters); diff != "" {
		t.Errorf("characters mismatch (-want +got):\n%s", diff)
	}
	if out.Confidence != 30 {
		t.Errorf("Confidence = %d, want 30 (three characters)", out.Confidence)
	}
}

func TestExtract_CharacterNamesUseVocabularySpelling(t *testing.T) {
	out := Extract("ALICE waves at you.", scene.Vocabulary{Characters: []string{"Alice"}, Expressions: []string{"Smiling"}})
	if out.Result == nil || len(out.Result.Characters) != 1 {
		t.Fatalf("Extract() characters = %+v", out.Result)
	}
	if got := out.Result.Characters[0].Name; got != "Alice" {
		t.Errorf("name = %q, want Alice", got)
	}
}

func TestExtract_NonNamesIgnored(t *testing.T) {
	out := Extract("She smiles. The door opens. Suddenly everything goes quiet.", scene.Vocabulary{})
	if out.Result != nil && len(out.Result.Characters) > 0 {
		t.Errorf("characters = %+v, want none", out.Result.Characters)
	}
}

func TestFindChoices(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantLabels []string
		wantMethod string
	}{
		{
			name:       "numbered",
			text:       "What now?\n1) Open the box\n2) Walk away\n3) Call for help",
			wantLabels: []string{"Open the box", "Walk away", "Call for help"},
			wantMethod: "numbered list",
		},
		{
			name:       "bullets after question",
			text:       "- intro bullet\nWhat will you do?\n- Fight back\n- Run",
			wantLabels: []string{"Fight back", "Run"},
			wantMethod: "bullets after a question",
		},
		{
			name:       "lettered",
			text:       "Pick one:\nA. Trust him\nB. Refuse",
			wantLabels: []string{"Trust him", "Refuse"},
			wantMethod: "lettered list",
		},
		{
			name:       "arrows",
			text:       "Options\n-> Knock twice\n-> Wait outside",
			wantLabels: []string{"Knock twice", "Wait outside"},
			wantMethod: "marker lines",
		},
		{
			name:       "single entry is not a list",
			text:       "1. Only option",
			wantLabels: nil,
		},
		{
			name:       "too short labels are skipped",
			text:       "1. Go\n2. No\n3. Yes please",
			wantLabels: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choices, method := findChoices(tt.text)
			var labels []string
			for _, c := range choices {
				labels = append(labels, c.Label)
				if c.Prompt != c.Label {
					t.Errorf("prompt %q should mirror label %q", c.Prompt, c.Label)
				}
			}
			if diff := cmp.Diff(tt.wantLabels, labels); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
			if method != tt.wantMethod {
				t.Errorf("method = %q, want %q", method, tt.wantMethod)
			}
		})
	}
}

func TestScoreEmotion(t *testing.T) {
	tests := []struct {
		text  string
		valid []string
		want  string
		ok    bool
	}{
		{text: "She laughs and grins.", want: "happy", ok: true},
		{text: "He sighs, then frowns and laughs.", want: "sad", ok: true},
		{text: "She smiles, then sobs.", want: "happy", ok: true},
		{text: "He glares.", valid: []string{"Angry_Red"}, want: "Angry_Red", ok: true},
		{text: "He glares.", valid: []string{"angry"}, want: "angry", ok: true},
		{text: "The wind moves the curtains.", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ScoreEmotion(tt.text, tt.valid)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ScoreEmotion(%q) = %q, %v, want %q, %v", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}
