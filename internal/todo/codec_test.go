package todo

import (
	"testing"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestEncodeListMatchesBrowserFormat(t *testing.T) {
	raw, err := EncodeList([]model.Item{{ID: 7, Text: "a", IsComplete: true}})
	if err != nil {
		t.Fatalf("EncodeList: %v", err)
	}
	want := `[{"id":7,"text":"a","isComplete":true}]`
	if raw != want {
		t.Errorf("EncodeList = %s, want %s", raw, want)
	}

	empty, _ := EncodeList(nil)
	if empty != "[]" {
		t.Errorf("EncodeList(nil) = %s, want []", empty)
	}
}

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{"empty array", `[]`, 0, false},
		{"two items", `[{"id":1,"text":"a","isComplete":false},{"id":2,"text":"b","isComplete":true}]`, 2, false},
		{"missing isComplete", `[{"id":1,"text":"a"}]`, 1, false},
		{"null", `null`, 0, true},
		{"object", `{}`, 0, true},
		{"missing text", `[{"id":1}]`, 0, true},
		{"float id", `[{"id":1.5,"text":"a"}]`, 0, true},
		{"empty text", `[{"id":1,"text":""}]`, 0, true},
		{"ascii blank text", `[{"id":1,"text":" \t"}]`, 0, true},
		{"unicode blank text", `[{"id":1,"text":"\u00a0\u3000"}]`, 0, true},
		{"trailing garbage", `[] []`, 0, true},
		{"truncated", `[{"id":1,`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := DecodeList(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeList err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(items) != tt.wantLen {
				t.Errorf("got %d items, want %d", len(items), tt.wantLen)
			}
		})
	}
}

func TestDecodeTheme(t *testing.T) {
	tests := []struct {
		raw     string
		want    model.ThemeMode
		wantErr bool
	}{
		{"true", model.ThemeDark, false},
		{"false", model.ThemeLight, false},
		{"null", model.ThemeLight, false},
		{`"dark"`, model.ThemeLight, true},
		{"", model.ThemeLight, true},
	}
	for _, tt := range tests {
		got, err := DecodeTheme(tt.raw)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("DecodeTheme(%q) = %s, %v", tt.raw, got, err)
		}
	}
	if EncodeTheme(model.ThemeDark) != "true" || EncodeTheme(model.ThemeLight) != "false" {
		t.Error("EncodeTheme mismatch")
	}
}

func TestDedupe(t *testing.T) {
	in := []model.Item{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}, {ID: 1, Text: "c"}}
	out, dropped := dedupe(in)
	if len(out) != 2 || out[0].Text != "a" || out[1].Text != "b" {
		t.Errorf("dedupe kept %+v", out)
	}
	if len(dropped) != 1 || dropped[0] != 1 {
		t.Errorf("dropped = %v", dropped)
	}
}
