package table

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ToAST converts the Table to an AST ArrayDataNode.
// This is useful for integration with other Shape parsers.
//
// The first element is the title record; each following element is a row.
// Every record is an *ast.ArrayDataNode of *ast.LiteralNode whose value is a
// string, int64 or float64 matching the cell variant.
func (t *Table) ToAST() (*ast.ArrayDataNode, error) {
	records := make([]ast.SchemaNode, 0, len(t.rows)+1)

	if len(t.titles) > 0 {
		titleNodes := make([]ast.SchemaNode, len(t.titles))
		for i, title := range t.titles {
			titleNodes[i] = ast.NewLiteralNode(title, ast.ZeroPosition())
		}
		records = append(records, ast.NewArrayDataNode(titleNodes, ast.ZeroPosition()))
	}

	for _, row := range t.rows {
		cellNodes := make([]ast.SchemaNode, len(row))
		for i, cell := range row {
			cellNodes[i] = ast.NewLiteralNode(cell.Interface(), ast.ZeroPosition())
		}
		records = append(records, ast.NewArrayDataNode(cellNodes, ast.ZeroPosition()))
	}

	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// FromAST creates a Table from an AST ArrayDataNode shaped like the output of
// ToAST: a title record of string literals followed by row records.
//
// Literal values map to cells by Go type: string to String, int64 or int to
// Integer, float64 to Float. Row records must match the title count.
func FromAST(node ast.SchemaNode, settings Settings) (*Table, error) {
	t, err := New(settings)
	if err != nil {
		return nil, err
	}

	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	for i, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record %d to be *ast.ArrayDataNode, got %T", i, elem)
		}

		cells := make([]Value, 0, recordNode.Len())
		for j, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field %d of record %d to be *ast.LiteralNode, got %T", j, i, fieldNode)
			}
			v, err := literalValue(literalNode.Value())
			if err != nil {
				return nil, fmt.Errorf("record %d, field %d: %w", i, j, err)
			}
			cells = append(cells, v)
		}

		if i == 0 {
			titles := make([]string, len(cells))
			for j, c := range cells {
				title, err := c.AsString()
				if err != nil {
					return nil, fmt.Errorf("title %d: %w", j, err)
				}
				titles[j] = title
			}
			t.SetTitles(titles)
			continue
		}

		if err := t.AddRow(cells); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return t, nil
}

// literalValue maps an AST literal value to a cell.
func literalValue(v interface{}) (Value, error) {
	switch x := v.(type) {
	case string:
		return StringValue(x), nil
	case int64:
		return IntegerValue(x), nil
	case int:
		return IntegerValue(int64(x)), nil
	case float64:
		return FloatValue(x), nil
	default:
		return Value{}, fmt.Errorf("unsupported literal value %T", v)
	}
}
