package apilint

import (
	"fmt"

	"github.com/daveshanley/vacuum/model"
	"go.yaml.in/yaml/v4"
)

// VacuumFunctions returns the convention checks as vacuum rule functions, so
// a vacuum ruleset can run them alongside the stock OpenAPI rules.
func VacuumFunctions() map[string]model.RuleFunction {
	return map[string]model.RuleFunction{
		"checkOperationTags":    &fnOperationTags{},
		"checkOperationID":      &fnOperationID{},
		"checkOperationSummary": &fnOperationSummary{},
	}
}

// === yaml/v4 node helpers (vacuum hands over v4 nodes) ===

func yGet(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func yOpID(op *yaml.Node) string {
	if n := yGet(op, "operationId"); n != nil {
		return n.Value
	}
	return ""
}

func forEachOp(root *yaml.Node, fn func(path, method string, op *yaml.Node)) {
	paths := yGet(root, "paths")
	if paths == nil {
		return
	}
	for i := 0; i < len(paths.Content)-1; i += 2 {
		pathKey := paths.Content[i].Value
		pathItem := paths.Content[i+1]
		if pathItem.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j < len(pathItem.Content)-1; j += 2 {
			method := pathItem.Content[j].Value
			if httpMethods[method] {
				fn(pathKey, method, pathItem.Content[j+1])
			}
		}
	}
}

func rootNode(nodes []*yaml.Node) *yaml.Node {
	if len(nodes) == 0 {
		return nil
	}
	n := nodes[0]
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

func makeResult(msg, path, ruleID string, node *yaml.Node, ctx model.RuleFunctionContext) model.RuleFunctionResult {
	return model.RuleFunctionResult{
		Message:   msg,
		Path:      path,
		RuleId:    ruleID,
		StartNode: node,
		EndNode:   node,
		Rule:      ctx.Rule,
	}
}

// checkOperationTags: every operation must carry a non-empty tags list.
type fnOperationTags struct{}

func (f *fnOperationTags) GetSchema() model.RuleFunctionSchema {
	return model.RuleFunctionSchema{Name: "checkOperationTags"}
}
func (f *fnOperationTags) GetCategory() string { return model.CategoryOperations }

func (f *fnOperationTags) RunRule(nodes []*yaml.Node, ctx model.RuleFunctionContext) []model.RuleFunctionResult {
	root := rootNode(nodes)
	if root == nil {
		return nil
	}
	var results []model.RuleFunctionResult
	forEachOp(root, func(path, method string, op *yaml.Node) {
		tags := yGet(op, "tags")
		if tags == nil || len(tags.Content) == 0 {
			results = append(results, makeResult(
				fmt.Sprintf("operation %s %s has no tags", method, path),
				fmt.Sprintf("$.paths.%s.%s", path, method),
				"check-operation-tags", op, ctx))
		}
	})
	return results
}

// checkOperationID: operationId must be present and unique.
type fnOperationID struct{}

func (f *fnOperationID) GetSchema() model.RuleFunctionSchema {
	return model.RuleFunctionSchema{Name: "checkOperationID"}
}
func (f *fnOperationID) GetCategory() string { return model.CategoryOperations }

func (f *fnOperationID) RunRule(nodes []*yaml.Node, ctx model.RuleFunctionContext) []model.RuleFunctionResult {
	root := rootNode(nodes)
	if root == nil {
		return nil
	}
	var results []model.RuleFunctionResult
	seen := map[string]bool{}
	forEachOp(root, func(path, method string, op *yaml.Node) {
		id := yOpID(op)
		switch {
		case id == "":
			results = append(results, makeResult(
				fmt.Sprintf("operation %s %s is missing operationId", method, path),
				fmt.Sprintf("$.paths.%s.%s", path, method),
				"check-operation-id", op, ctx))
		case seen[id]:
			results = append(results, makeResult(
				fmt.Sprintf("duplicate operationId %q", id),
				fmt.Sprintf("$.paths.%s.%s.operationId", path, method),
				"check-operation-id", op, ctx))
		default:
			seen[id] = true
		}
	})
	return results
}

// checkOperationSummary: every operation should carry a summary.
type fnOperationSummary struct{}

func (f *fnOperationSummary) GetSchema() model.RuleFunctionSchema {
	return model.RuleFunctionSchema{Name: "checkOperationSummary"}
}
func (f *fnOperationSummary) GetCategory() string { return model.CategoryOperations }

func (f *fnOperationSummary) RunRule(nodes []*yaml.Node, ctx model.RuleFunctionContext) []model.RuleFunctionResult {
	root := rootNode(nodes)
	if root == nil {
		return nil
	}
	var results []model.RuleFunctionResult
	forEachOp(root, func(path, method string, op *yaml.Node) {
		if n := yGet(op, "summary"); n == nil || n.Value == "" {
			name := yOpID(op)
			if name == "" {
				name = method + " " + path
			}
			results = append(results, makeResult(
				fmt.Sprintf("operation %q has no summary", name),
				fmt.Sprintf("$.paths.%s.%s", path, method),
				"check-operation-summary", op, ctx))
		}
	})
	return results
}
