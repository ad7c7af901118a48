package formdef_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynforms/pkg/formdef"
	"github.com/goliatone/go-dynforms/pkg/forms"
	"github.com/goliatone/go-dynforms/pkg/model"
)

const settingsYAML = `
forms:
  settings:
    type: custom_form
    title: "<b>Settings</b>"
    fields:
      - type: label
        text: Audio &amp; video
      - type: toggle
        id: music
        text: Music
        default: true
      - type: slider
        id: volume
        text: Volume
        min: 0
        max: 10
        step: 1
        default: 5
      - type: step_slider
        text: Quality
        steps: [low, high]
        default: 1
      - type: dropdown
        text: Map
        options: ["<i>north</i>", south]
      - type: input
        id: name
        text: Name
        placeholder: Steve
`

const menusJSON = `{
  "forms": {
    "menu": {
      "type": "form",
      "title": "Menu",
      "content": "Pick one",
      "buttons": [
        {"id": "shop", "text": "Shop", "image": {"type": "url", "data": "https://example.com/shop.png"}},
        {"text": "Quit"}
      ]
    },
    "confirm": {
      "type": "modal",
      "title": "Confirm",
      "content": "Sure?",
      "button1": "Yes",
      "button2": "No"
    }
  }
}`

func loadStore(t *testing.T, files fstest.MapFS) *formdef.Store {
	t.Helper()
	store, err := formdef.LoadFS(files)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func TestLoadFS_MixedFormats(t *testing.T) {
	store := loadStore(t, fstest.MapFS{
		"defs/settings.yaml": {Data: []byte(settingsYAML)},
		"defs/menus.json":    {Data: []byte(menusJSON)},
		"defs/README.md":     {Data: []byte("ignored")},
	})

	if diff := cmp.Diff([]string{"confirm", "menu", "settings"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	def, ok := store.Definition("menu")
	if !ok || def.Source != "defs/menus.json" {
		t.Fatalf("menu definition source mismatch: %#v", def)
	}
}

func TestStore_BuildCustomForm(t *testing.T) {
	store := loadStore(t, fstest.MapFS{"settings.yml": {Data: []byte(settingsYAML)}})

	form, err := store.Form("settings")
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	custom, ok := form.(*forms.CustomForm)
	if !ok {
		t.Fatalf("expected custom form, got %T", form)
	}
	if custom.Title() != "Settings" {
		t.Fatalf("title not sanitized: %q", custom.Title())
	}

	fields := custom.Fields()
	if len(fields) != 6 {
		t.Fatalf("expected 6 fields, got %d", len(fields))
	}
	if fields[0].Text != "Audio & video" {
		t.Fatalf("label text mismatch: %q", fields[0].Text)
	}
	if diff := cmp.Diff([]string{"north", "south"}, fields[4].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if fields[2].Step == nil || *fields[2].Step != 1 {
		t.Fatalf("slider step not applied: %#v", fields[2])
	}

	result, err := custom.Decode([]any{nil, false, 3, 0, 1, "Alex"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	res := result.(*forms.Result)
	want := []string{"0", "music", "volume", "3", "4", "name"}
	if diff := cmp.Diff(want, res.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_BuildSimpleAndModal(t *testing.T) {
	store := loadStore(t, fstest.MapFS{"menus.json": {Data: []byte(menusJSON)}})

	form, err := store.Form("menu")
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	simple := form.(*forms.SimpleForm)
	buttons := simple.Buttons()
	if len(buttons) != 2 || buttons[0].Image == nil || buttons[0].Image.Type != model.ImageTypeURL {
		t.Fatalf("buttons mismatch: %#v", buttons)
	}
	key, err := simple.Decode(0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if key.(model.Key).String() != "shop" {
		t.Fatalf("expected shop key, got %v", key)
	}

	form, err = store.Form("confirm")
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	modal := form.(*forms.ModalForm)
	if modal.TrueButtonLabel() != "Yes" || modal.FalseButtonLabel() != "No" {
		t.Fatalf("modal labels mismatch: %q/%q", modal.TrueButtonLabel(), modal.FalseButtonLabel())
	}
}

func TestStore_FormReturnsFreshInstances(t *testing.T) {
	store := loadStore(t, fstest.MapFS{"menus.json": {Data: []byte(menusJSON)}})

	first, _ := store.Form("menu")
	first.(*forms.SimpleForm).AddButton("Extra")

	second, err := store.Form("menu")
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if got := second.(*forms.SimpleForm).Len(); got != 2 {
		t.Fatalf("expected untouched definition, got %d buttons", got)
	}
}

func TestStore_UnknownForm(t *testing.T) {
	store := loadStore(t, fstest.MapFS{})
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
	if _, err := store.Form("nope"); !errors.Is(err, formdef.ErrFormNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name    string
		files   fstest.MapFS
		wantErr string
	}{
		{
			name: "duplicate id across files",
			files: fstest.MapFS{
				"a.json": {Data: []byte(`{"forms":{"x":{"type":"modal","title":"A"}}}`)},
				"b.json": {Data: []byte(`{"forms":{"x":{"type":"modal","title":"B"}}}`)},
			},
			wantErr: `duplicate form "x"`,
		},
		{
			name:    "empty id",
			files:   fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  \" \":\n    type: modal\n")}},
			wantErr: "empty form id",
		},
		{
			name:    "empty file",
			files:   fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
			wantErr: "is empty",
		},
		{
			name:    "invalid syntax",
			files:   fstest.MapFS{"a.yaml": {Data: []byte("forms: [unterminated")}},
			wantErr: "invalid JSON or YAML",
		},
		{
			name:    "unknown form type",
			files:   fstest.MapFS{"a.json": {Data: []byte(`{"forms":{"x":{"type":"wizard"}}}`)}},
			wantErr: `unknown type "wizard"`,
		},
		{
			name:    "slider without range",
			files:   fstest.MapFS{"a.json": {Data: []byte(`{"forms":{"x":{"type":"custom_form","fields":[{"type":"slider","text":"V"}]}}}`)}},
			wantErr: "slider requires min and max",
		},
		{
			name:    "unknown field kind",
			files:   fstest.MapFS{"a.json": {Data: []byte(`{"forms":{"x":{"type":"custom_form","fields":[{"type":"color","text":"C"}]}}}`)}},
			wantErr: "invalid field",
		},
		{
			name:    "default rejected by field",
			files:   fstest.MapFS{"a.json": {Data: []byte(`{"forms":{"x":{"type":"custom_form","fields":[{"type":"dropdown","text":"D","options":["a"],"default":4}]}}}`)}},
			wantErr: "invalid definition",
		},
		{
			name:    "duplicate field id",
			files:   fstest.MapFS{"a.json": {Data: []byte(`{"forms":{"x":{"type":"custom_form","fields":[{"type":"input","id":"n","text":"A"},{"type":"input","id":"n","text":"B"}]}}}`)}},
			wantErr: "invalid definition",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := formdef.LoadFS(tc.files)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := formdef.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}
