// Package docsgen generates the per-subsystem and combined OpenAPI documents
// for the AIHub backend. It resolves each subsystem's route table through a
// provider registry, assembles documents from the tables, and writes both
// encodings to disk; one broken subsystem never aborts the run.
package docsgen

import (
	"fmt"
	"strings"
)

// Subsystem is one functional API area: its provider name (also the output
// file stem), the URL prefix its routes are mounted under, and the tags
// attached to every operation drawn from its route table.
type Subsystem struct {
	Name   string
	Prefix string
	Tags   []string
}

// Output defaults and document metadata.
const (
	DefaultOutputDir   = "docs/api/openapi"
	DefaultCombinedDir = "docs/api/combined"
	CombinedStem       = "openapi"
	SpecVersion        = "1.0.0"

	combinedTitle       = "AIHub - Complete API"
	combinedDescription = "Complete API specification covering all AIHub subsystems"
)

// subsystems is the compiled-in generation order. The order is observable:
// paths in the combined document group by it.
var subsystems = []Subsystem{
	{Name: "chats", Prefix: "/api/v1/chats", Tags: []string{"chats"}},
	{Name: "notes", Prefix: "/api/v1/notes", Tags: []string{"notes"}},
	{Name: "models", Prefix: "/api/v1/models", Tags: []string{"models"}},
	{Name: "knowledge", Prefix: "/api/v1/knowledge", Tags: []string{"knowledge"}},
	{Name: "prompts", Prefix: "/api/v1/prompts", Tags: []string{"prompts"}},
	{Name: "tools", Prefix: "/api/v1/tools", Tags: []string{"tools"}},
	{Name: "memories", Prefix: "/api/v1/memories", Tags: []string{"memories"}},
	{Name: "folders", Prefix: "/api/v1/folders", Tags: []string{"folders"}},
	{Name: "groups", Prefix: "/api/v1/groups", Tags: []string{"groups"}},
	{Name: "files", Prefix: "/api/v1/files", Tags: []string{"files"}},
	{Name: "functions", Prefix: "/api/v1/functions", Tags: []string{"functions"}},
	{Name: "evaluations", Prefix: "/api/v1/evaluations", Tags: []string{"evaluations"}},
	{Name: "users", Prefix: "/api/v1/users", Tags: []string{"users"}},
	{Name: "auths", Prefix: "/api/v1/auths", Tags: []string{"auths"}},
	{Name: "configs", Prefix: "/api/v1/configs", Tags: []string{"configs"}},
	{Name: "audio", Prefix: "/api/v1/audio", Tags: []string{"audio"}},
	{Name: "retrieval", Prefix: "/api/v1/retrieval", Tags: []string{"retrieval"}},
	{Name: "images", Prefix: "/api/v1/images", Tags: []string{"images"}},
	{Name: "tasks", Prefix: "/api/v1/tasks", Tags: []string{"tasks"}},
	{Name: "pipelines", Prefix: "/api/v1/pipelines", Tags: []string{"pipelines"}},
	{Name: "channels", Prefix: "/api/v1/channels", Tags: []string{"channels"}},
	{Name: "utils", Prefix: "/api/v1/utils", Tags: []string{"utils"}},
	{Name: "ollama", Prefix: "/ollama", Tags: []string{"ollama"}},
	{Name: "openai", Prefix: "/openai", Tags: []string{"openai"}},
}

// Subsystems returns the compiled-in subsystem list in generation order.
func Subsystems() []Subsystem {
	out := make([]Subsystem, len(subsystems))
	copy(out, subsystems)
	return out
}

func subsystemTitle(name string) string {
	return fmt.Sprintf("AIHub - %s API", capitalize(name))
}

func subsystemDescription(name string) string {
	return fmt.Sprintf("API specification for the %s subsystem", name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// validateSubsystems rejects a malformed list. This is the one fatal
// condition in a run; everything downstream recovers per subsystem.
func validateSubsystems(specs []Subsystem) error {
	seen := make(map[string]struct{}, len(specs))
	for i, s := range specs {
		if s.Name == "" {
			return fmt.Errorf("subsystem %d: empty name", i)
		}
		if s.Prefix == "" || !strings.HasPrefix(s.Prefix, "/") {
			return fmt.Errorf("subsystem %q: prefix must start with /", s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("subsystem %q: duplicate name", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}
