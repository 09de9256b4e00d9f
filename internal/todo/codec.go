package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Makepad-fr/tada/internal/model"
)

// Persistence keys. The values are JSON text so data written by the browser
// version of the app loads unchanged.
const (
	KeyTodos    = "todos"
	KeyDarkMode = "darkMode"
)

const todosSchemaURL = "https://makepad.fr/tada/todos.schema.json"

//go:embed todos.schema.json
var todosSchema []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func listSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(todosSchemaURL, bytes.NewReader(todosSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(todosSchemaURL)
	})
	return compiledSchema, schemaErr
}

// EncodeList serializes the list in display order.
func EncodeList(items []model.Item) (string, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// DecodeList parses a persisted list. Anything that is not an array of
// {id:int, text:non-blank string, isComplete:bool} objects is rejected.
func DecodeList(raw string) ([]model.Item, error) {
	schema, err := listSchema()
	if err != nil {
		return nil, err
	}
	var doc any
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("json parse: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	for _, it := range items {
		// the schema pattern only knows ASCII whitespace
		if strings.TrimSpace(it.Text) == "" {
			return nil, fmt.Errorf("item %d: blank text", it.ID)
		}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// EncodeTheme stores the theme as the JSON boolean "is dark".
func EncodeTheme(mode model.ThemeMode) string {
	if mode.IsDark() {
		return "true"
	}
	return "false"
}

// DecodeTheme parses a persisted darkMode value. JSON null reads as light.
func DecodeTheme(raw string) (model.ThemeMode, error) {
	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		return model.ThemeLight, fmt.Errorf("json unmarshal: %w", err)
	}
	return model.ThemeFromDark(dark), nil
}

// dedupe keeps the first item for each id and reports the ids it dropped.
func dedupe(items []model.Item) ([]model.Item, []int64) {
	seen := make(map[int64]struct{}, len(items))
	out := items[:0]
	var dropped []int64
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			dropped = append(dropped, it.ID)
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out, dropped
}
