package table_test

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-table/pkg/table"
)

func TestToAST(t *testing.T) {
	tbl := mustParse(t, "name,age,score\nAlice,30,9.5\n", table.DefaultSettings().WithAutoDeriveType(true))

	node, err := tbl.ToAST()
	if err != nil {
		t.Fatalf("ToAST() error: %v", err)
	}
	if node.Len() != 2 {
		t.Fatalf("ToAST() has %d records, want 2", node.Len())
	}

	row, ok := node.Elements()[1].(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("record 1 is %T", node.Elements()[1])
	}
	want := []interface{}{"Alice", int64(30), 9.5}
	for i, w := range want {
		lit, ok := row.Elements()[i].(*ast.LiteralNode)
		if !ok {
			t.Fatalf("field %d is %T", i, row.Elements()[i])
		}
		if lit.Value() != w {
			t.Errorf("field %d = %#v, want %#v", i, lit.Value(), w)
		}
	}
}

func TestFromAST_RoundTrip(t *testing.T) {
	settings := table.DefaultSettings().WithAutoDeriveType(true)
	src := mustParse(t, "a,b,c\nx,1,2.5\ny,-3,0.0\n", settings)

	node, err := src.ToAST()
	if err != nil {
		t.Fatal(err)
	}
	dst, err := table.FromAST(node, settings)
	if err != nil {
		t.Fatalf("FromAST() error: %v", err)
	}

	want, _ := src.Format()
	got, _ := dst.Format()
	if got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestFromAST_Errors(t *testing.T) {
	lit := func(v interface{}) ast.SchemaNode { return ast.NewLiteralNode(v, ast.ZeroPosition()) }
	rec := func(fields ...ast.SchemaNode) ast.SchemaNode { return ast.NewArrayDataNode(fields, ast.ZeroPosition()) }
	doc := func(records ...ast.SchemaNode) ast.SchemaNode { return ast.NewArrayDataNode(records, ast.ZeroPosition()) }

	tests := []struct {
		name string
		node ast.SchemaNode
	}{
		{"not an array", lit("x")},
		{"record not an array", doc(lit("x"))},
		{"field not a literal", doc(rec(rec()))},
		{"numeric title", doc(rec(lit(int64(1))))},
		{"unsupported literal", doc(rec(lit("a")), rec(lit(true)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := table.FromAST(tt.node, table.DefaultSettings()); err == nil {
				t.Error("FromAST() should fail")
			}
		})
	}

	_, err := table.FromAST(doc(rec(lit("a"), lit("b")), rec(lit("1"))), table.DefaultSettings())
	if !errors.Is(err, table.ErrRange) {
		t.Errorf("short record: error = %v, want ErrRange", err)
	}
}
