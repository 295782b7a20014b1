package entity

import "fmt"

// SourceKind discriminates the origin of a scanned entity.
// Adding a new origin means adding a constant here and extending every
// switch over SourceKind; the switches are written exhaustively on purpose.
type SourceKind string

const (
	// SourceFrameworkComponent is a component implemented in a UI framework
	SourceFrameworkComponent SourceKind = "framework-component"
	// SourceDesignToolNode is a component defined in a design tool document
	SourceDesignToolNode SourceKind = "design-tool-node"
	// SourceStoryEntry is a component described by a story-format entry
	SourceStoryEntry SourceKind = "story-entry"
	// SourceTokenFile is a design token defined in a token/stylesheet file
	SourceTokenFile SourceKind = "token-file"
	// SourceTokenDesignTool is a design token defined in a design tool
	SourceTokenDesignTool SourceKind = "token-design-tool"
)

// ComponentSource locates where a component was scanned from.
// Kind selects which locator fields are meaningful.
type ComponentSource struct {
	Kind SourceKind `json:"kind" yaml:"kind"`

	// framework-component and story-entry
	Framework string `json:"framework,omitempty" yaml:"framework,omitempty"`
	FilePath  string `json:"filePath,omitempty" yaml:"filePath,omitempty"`
	Line      int    `json:"line,omitempty" yaml:"line,omitempty"`

	// design-tool-node
	Tool     string `json:"tool,omitempty" yaml:"tool,omitempty"`
	Document string `json:"document,omitempty" yaml:"document,omitempty"`
	NodeID   string `json:"nodeId,omitempty" yaml:"nodeId,omitempty"`

	// story-entry
	StoryID string `json:"storyId,omitempty" yaml:"storyId,omitempty"`
}

// Location returns a human-readable locator for display in messages
func (s ComponentSource) Location() string {
	switch s.Kind {
	case SourceFrameworkComponent:
		if s.Line > 0 {
			return fmt.Sprintf("%s:%d", s.FilePath, s.Line)
		}
		return s.FilePath
	case SourceDesignToolNode:
		return fmt.Sprintf("%s#%s", s.Document, s.NodeID)
	case SourceStoryEntry:
		return fmt.Sprintf("%s[%s]", s.FilePath, s.StoryID)
	case SourceTokenFile, SourceTokenDesignTool:
		return s.FilePath
	default:
		return s.FilePath
	}
}

// File returns the path portion of the locator without any line information
func (s ComponentSource) File() string {
	switch s.Kind {
	case SourceFrameworkComponent, SourceStoryEntry:
		return s.FilePath
	case SourceDesignToolNode:
		return s.Document
	case SourceTokenFile, SourceTokenDesignTool:
		return s.FilePath
	default:
		return s.FilePath
	}
}

// identityKey returns the stable string that, combined with an entity name,
// defines the entity's deterministic id. It must not change between scans of
// an unchanged entity, so it excludes line numbers.
func (s ComponentSource) identityKey() string {
	switch s.Kind {
	case SourceFrameworkComponent:
		return fmt.Sprintf("%s|%s|%s", s.Kind, s.Framework, s.FilePath)
	case SourceDesignToolNode:
		return fmt.Sprintf("%s|%s|%s|%s", s.Kind, s.Tool, s.Document, s.NodeID)
	case SourceStoryEntry:
		return fmt.Sprintf("%s|%s|%s", s.Kind, s.FilePath, s.StoryID)
	case SourceTokenFile, SourceTokenDesignTool:
		return fmt.Sprintf("%s|%s", s.Kind, s.FilePath)
	default:
		return fmt.Sprintf("%s|%s", s.Kind, s.FilePath)
	}
}

// TokenSource locates where a design token was scanned from
type TokenSource struct {
	Kind     SourceKind `json:"kind" yaml:"kind"`
	FilePath string     `json:"filePath,omitempty" yaml:"filePath,omitempty"`
	Tool     string     `json:"tool,omitempty" yaml:"tool,omitempty"`
	Document string     `json:"document,omitempty" yaml:"document,omitempty"`
}

// Location returns a human-readable locator for display in messages
func (s TokenSource) Location() string {
	switch s.Kind {
	case SourceTokenDesignTool:
		if s.Document != "" {
			return fmt.Sprintf("%s (%s)", s.Document, s.Tool)
		}
		return s.Tool
	case SourceTokenFile:
		return s.FilePath
	default:
		return s.FilePath
	}
}

func (s TokenSource) identityKey() string {
	switch s.Kind {
	case SourceTokenDesignTool:
		return fmt.Sprintf("%s|%s|%s", s.Kind, s.Tool, s.Document)
	case SourceTokenFile:
		return fmt.Sprintf("%s|%s", s.Kind, s.FilePath)
	default:
		return fmt.Sprintf("%s|%s", s.Kind, s.FilePath)
	}
}
