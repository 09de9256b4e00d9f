package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/model"
)

var sample = []model.Item{
	{ID: 1718000000000, Text: "water plants", IsComplete: true},
	{ID: 1718000000500, Text: "call mom"},
}

func decode(t *testing.T, format string, b []byte) document {
	t.Helper()
	var doc document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(b, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(b, &doc)
	case FormatTOML:
		_, err = toml.Decode(string(b), &doc)
	}
	if err != nil {
		t.Fatalf("decode %s: %v\n%s", format, err, b)
	}
	return doc
}

func TestWriteEachFormatKeepsOrderAndFields(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, sample, format); err != nil {
				t.Fatalf("Write: %v", err)
			}
			doc := decode(t, format, buf.Bytes())
			if len(doc.Todos) != len(sample) {
				t.Fatalf("got %d todos, want %d", len(doc.Todos), len(sample))
			}
			for i := range sample {
				if doc.Todos[i] != sample[i] {
					t.Errorf("todo %d = %+v, want %+v", i, doc.Todos[i], sample[i])
				}
			}
		})
	}
}

func TestWriteJSONUsesBrowserKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample[:1], FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"isComplete": true`)) {
		t.Errorf("expected isComplete key:\n%s", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, sample, "csv"); err == nil {
		t.Fatal("expected error for csv")
	}
}
