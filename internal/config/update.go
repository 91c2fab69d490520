package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/chartkit/internal/errors"
)

// Write saves cfg as YAML at path. Existing files are overwritten.
func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	buf.WriteString("# chartkit configuration\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	if err := encoder.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check the directory exists and is writable")
	}
	return nil
}

// SetValue sets a dotted key such as "charts.bar.variant" to value in the
// config file at configPath. The existing YAML structure and comments are
// kept and missing parent mappings are created. The edited file must still
// load; otherwise it is restored and the validation error is returned.
func SetValue(configPath, key, value string) error {
	original, err := os.ReadFile(configPath)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read "+configPath,
			"Run 'chartkit init' to create a config file")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(original, &root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse "+configPath,
			"Check the YAML syntax")
	}
	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"Expected a mapping at the top of "+configPath,
			"Check the YAML structure")
	}

	parts := strings.Split(key, ".")
	for _, p := range parts {
		if p == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Invalid key '%s'", key),
				"Use a dotted key like defaults.color or charts.bar.variant")
		}
	}

	node := root.Content[0]
	for _, p := range parts[:len(parts)-1] {
		next := findMapValue(node, p)
		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, scalar(p), next)
		}
		if next.Kind != yaml.MappingNode {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' is not a section in %s", p, configPath),
				"Pick a key below a mapping")
		}
		node = next
	}

	last := parts[len(parts)-1]
	if existing := findMapValue(node, last); existing != nil {
		*existing = yaml.Node{Kind: yaml.ScalarNode, Value: value, LineComment: existing.LineComment}
	} else {
		node.Content = append(node.Content, scalar(last), &yaml.Node{Kind: yaml.ScalarNode, Value: value})
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	encoder.Close()

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+configPath,
			"Check file permissions")
	}

	if _, err := Load(configPath); err != nil {
		_ = os.WriteFile(configPath, original, 0644)
		return err
	}
	return nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
