package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLEditor provides structured editing of the YAML config file using
// the yaml.v3 Node API, preserving comments and formatting.
type YAMLEditor struct {
	path string
}

// NewYAMLEditor creates a new editor for the given config file path.
func NewYAMLEditor(path string) *YAMLEditor {
	return &YAMLEditor{path: path}
}

// gridKeys are the grid settings SetGridValue accepts.
var gridKeys = map[string]bool{
	"cols":           true,
	"default_width":  true,
	"default_height": true,
	"max_scan_rows":  true,
}

// SetGridValue sets one grid setting (cols, default_width, default_height,
// or max_scan_rows) in the config file.
func (e *YAMLEditor) SetGridValue(key string, value int) error {
	if !gridKeys[key] {
		return fmt.Errorf("unknown grid setting '%s'", key)
	}
	if value < 1 {
		return fmt.Errorf("grid.%s must be positive, got %d", key, value)
	}

	doc, root, err := e.load()
	if err != nil {
		return err
	}

	gridNode := findMappingKey(root, "grid")
	if gridNode == nil {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "grid"},
			&yaml.Node{Kind: yaml.MappingNode},
		)
		gridNode = root.Content[len(root.Content)-1]
	}

	setIntKey(gridNode, key, value)
	return e.save(doc)
}

// SetBreakpoint adds or updates a named breakpoint entry.
func (e *YAMLEditor) SetBreakpoint(name string, def BreakpointDef) error {
	if name == "" {
		return fmt.Errorf("breakpoint name must not be empty")
	}
	if def.Cols < 1 {
		return fmt.Errorf("breakpoint '%s': cols must be positive, got %d", name, def.Cols)
	}
	if def.MinWidth < 0 {
		return fmt.Errorf("breakpoint '%s': min_width must be >= 0, got %d", name, def.MinWidth)
	}

	doc, root, err := e.load()
	if err != nil {
		return err
	}

	bpNode := findMappingKey(root, "breakpoints")
	if bpNode == nil {
		// No breakpoints section — create one
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "breakpoints"},
			&yaml.Node{Kind: yaml.MappingNode},
		)
		bpNode = root.Content[len(root.Content)-1]
	}

	entry := findMappingKey(bpNode, name)
	if entry == nil {
		bpNode.Content = append(bpNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&yaml.Node{Kind: yaml.MappingNode},
		)
		entry = bpNode.Content[len(bpNode.Content)-1]
	}

	setIntKey(entry, "min_width", def.MinWidth)
	setIntKey(entry, "cols", def.Cols)
	return e.save(doc)
}

// DeleteBreakpoint removes a named breakpoint entry.
func (e *YAMLEditor) DeleteBreakpoint(name string) error {
	doc, root, err := e.load()
	if err != nil {
		return err
	}

	bpNode := findMappingKey(root, "breakpoints")
	if bpNode == nil {
		return fmt.Errorf("no breakpoints section in config")
	}
	idx := findMappingKeyIndex(bpNode, name)
	if idx < 0 {
		return fmt.Errorf("breakpoint '%s' not found", name)
	}
	bpNode.Content = append(bpNode.Content[:idx], bpNode.Content[idx+2:]...)
	return e.save(doc)
}

func (e *YAMLEditor) load() (*yaml.Node, *yaml.Node, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, fmt.Errorf("invalid YAML document")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("root is not a mapping")
	}

	return &doc, root, nil
}

func (e *YAMLEditor) save(doc *yaml.Node) error {
	out, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("opening config for write: %w", err)
	}
	defer out.Close()

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// setIntKey updates or appends an integer scalar in a MappingNode.
func setIntKey(mapping *yaml.Node, key string, value int) {
	s := strconv.Itoa(value)
	if node := findMappingKey(mapping, key); node != nil {
		node.Value = s
		node.Tag = "!!int"
		return
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: s, Tag: "!!int"},
	)
}

// findMappingKey finds the value node for a key in a MappingNode.
func findMappingKey(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// findMappingKeyIndex returns the index of a key in a MappingNode's Content, or -1.
func findMappingKeyIndex(mapping *yaml.Node, key string) int {
	if mapping.Kind != yaml.MappingNode {
		return -1
	}
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			return i
		}
	}
	return -1
}
