package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"quill/internal/ast"
	"quill/internal/source"
)

// ASTOpts tunes the tree dump. TypeOf, when set, annotates every
// expression with its checked type.
type ASTOpts struct {
	PathMode PathMode
	BaseDir  string
	TypeOf   func(ast.ExprID) string
}

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	TypeName string          `json:"type_name,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTPretty prints the file as a box-drawn tree.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet, opts ASTOpts) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}
	header := "File"
	if fs != nil && int(file.Span.File) < fs.Len() {
		header = formatPath(fs.Get(file.Span.File), opts.PathMode, opts.BaseDir)
	}
	root := &treeNode{label: fmt.Sprintf("%s (span: %s)", header, formatSpan(file.Span, fs))}
	for i, stmtID := range file.Stmts {
		root.children = append(root.children, buildStmtNode(builder, stmtID, fs, i, opts))
	}
	return writeTree(w, root)
}

// FormatASTSExpr prints one S-expression per statement.
func FormatASTSExpr(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}
	for _, stmtID := range file.Stmts {
		if _, err := fmt.Fprintln(w, builder.StmtSExpr(stmtID)); err != nil {
			return err
		}
	}
	return nil
}

func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID, opts ASTOpts) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}
	output := ASTNodeOutput{Type: "File", Span: file.Span}
	for _, stmtID := range file.Stmts {
		output.Children = append(output.Children, stmtJSON(builder, stmtID, opts))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildStmtNode(builder *ast.Builder, stmtID ast.StmtID, fs *source.FileSet, idx int, opts ASTOpts) *treeNode {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return &treeNode{label: fmt.Sprintf("Stmt[%d]: <nil>", idx)}
	}
	node := &treeNode{label: fmt.Sprintf("Stmt[%d]: %s (span: %s)", idx, stmt.Kind, formatSpan(stmt.Span, fs))}
	switch stmt.Kind {
	case ast.StmtLet:
		let, _ := builder.Stmts.Let(stmtID)
		node.children = append(node.children, &treeNode{label: "Name: " + builder.Name(let.Name)})
		if let.Type.IsValid() {
			node.children = append(node.children, &treeNode{label: "Type: " + builder.TypeString(let.Type)})
		}
		value := buildExprNode(builder, let.Value, fs, opts)
		value.label = "Value: " + value.label
		node.children = append(node.children, value)
	case ast.StmtPrint:
		pr, _ := builder.Stmts.Print(stmtID)
		value := buildExprNode(builder, pr.Value, fs, opts)
		value.label = "Value: " + value.label
		node.children = append(node.children, value)
	}
	return node
}

func buildExprNode(builder *ast.Builder, id ast.ExprID, fs *source.FileSet, opts ASTOpts) *treeNode {
	if !id.IsValid() {
		return &treeNode{label: "_"}
	}
	expr := builder.Exprs.Get(id)
	if expr == nil {
		return &treeNode{label: "<nil>"}
	}
	node := &treeNode{label: expr.Kind.String()}
	switch expr.Kind {
	case ast.ExprNumber:
		num, _ := builder.Exprs.Number(id)
		node.label += " " + num.Raw
	case ast.ExprString:
		lit, _ := builder.Exprs.StringLit(id)
		node.label += " " + strconv.Quote(lit.Value)
	case ast.ExprIdent:
		ident, _ := builder.Exprs.Ident(id)
		node.label += " " + builder.Name(ident.Name)
	case ast.ExprBinary:
		bin, _ := builder.Exprs.Binary(id)
		node.label += " " + bin.Op.String()
		node.children = append(node.children,
			buildExprNode(builder, bin.Left, fs, opts),
			buildExprNode(builder, bin.Right, fs, opts))
	case ast.ExprUnary:
		un, _ := builder.Exprs.Unary(id)
		node.label += " " + un.Op.String()
		node.children = append(node.children, buildExprNode(builder, un.Operand, fs, opts))
	case ast.ExprSlice:
		sl, _ := builder.Exprs.Slice(id)
		if sl.Index {
			node.label = "Index"
		}
		node.children = append(node.children, buildExprNode(builder, sl.Subject, fs, opts))
		start := buildExprNode(builder, sl.Start, fs, opts)
		start.label = "Start: " + start.label
		node.children = append(node.children, start)
		if !sl.Index {
			end := buildExprNode(builder, sl.End, fs, opts)
			end.label = "End: " + end.label
			node.children = append(node.children, end)
		}
	case ast.ExprMethodCall:
		call, _ := builder.Exprs.MethodCall(id)
		node.label += " ." + builder.Name(call.Name)
		node.children = append(node.children, buildExprNode(builder, call.Subject, fs, opts))
		for i, arg := range call.Args {
			child := buildExprNode(builder, arg, fs, opts)
			child.label = fmt.Sprintf("Arg[%d]: %s", i, child.label)
			node.children = append(node.children, child)
		}
	case ast.ExprList:
		list, _ := builder.Exprs.List(id)
		node.label += fmt.Sprintf(" (%d)", len(list.Elems))
		for _, elem := range list.Elems {
			node.children = append(node.children, buildExprNode(builder, elem, fs, opts))
		}
	}
	if opts.TypeOf != nil {
		node.label += " : " + opts.TypeOf(id)
	}
	return node
}

func stmtJSON(builder *ast.Builder, stmtID ast.StmtID, opts ASTOpts) ASTNodeOutput {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return ASTNodeOutput{Type: "Stmt"}
	}
	out := ASTNodeOutput{Type: "Stmt", Kind: stmt.Kind.String(), Span: stmt.Span}
	switch stmt.Kind {
	case ast.StmtLet:
		let, _ := builder.Stmts.Let(stmtID)
		out.Text = builder.Name(let.Name)
		if let.Type.IsValid() {
			out.TypeName = builder.TypeString(let.Type)
		}
		out.Children = []ASTNodeOutput{exprJSON(builder, let.Value, opts)}
	case ast.StmtPrint:
		pr, _ := builder.Stmts.Print(stmtID)
		out.Children = []ASTNodeOutput{exprJSON(builder, pr.Value, opts)}
	}
	return out
}

func exprJSON(builder *ast.Builder, id ast.ExprID, opts ASTOpts) ASTNodeOutput {
	expr := builder.Exprs.Get(id)
	if !id.IsValid() || expr == nil {
		return ASTNodeOutput{Type: "Expr", Kind: "None"}
	}
	out := ASTNodeOutput{Type: "Expr", Kind: expr.Kind.String(), Span: expr.Span}
	if opts.TypeOf != nil {
		out.TypeName = opts.TypeOf(id)
	}
	add := func(ids ...ast.ExprID) {
		for _, child := range ids {
			out.Children = append(out.Children, exprJSON(builder, child, opts))
		}
	}
	switch expr.Kind {
	case ast.ExprNumber:
		num, _ := builder.Exprs.Number(id)
		out.Text = num.Raw
	case ast.ExprString:
		lit, _ := builder.Exprs.StringLit(id)
		out.Text = lit.Value
	case ast.ExprIdent:
		ident, _ := builder.Exprs.Ident(id)
		out.Text = builder.Name(ident.Name)
	case ast.ExprBinary:
		bin, _ := builder.Exprs.Binary(id)
		out.Text = bin.Op.String()
		add(bin.Left, bin.Right)
	case ast.ExprUnary:
		un, _ := builder.Exprs.Unary(id)
		out.Text = un.Op.String()
		add(un.Operand)
	case ast.ExprSlice:
		sl, _ := builder.Exprs.Slice(id)
		if sl.Index {
			out.Kind = "Index"
			add(sl.Subject, sl.Start)
		} else {
			add(sl.Subject, sl.Start, sl.End)
		}
	case ast.ExprMethodCall:
		call, _ := builder.Exprs.MethodCall(id)
		out.Text = builder.Name(call.Name)
		add(call.Subject)
		add(call.Args...)
	case ast.ExprList:
		list, _ := builder.Exprs.List(id)
		add(list.Elems...)
	}
	return out
}

func writeTree(w io.Writer, root *treeNode) error {
	if _, err := fmt.Fprintln(w, root.label); err != nil {
		return err
	}
	return writeChildren(w, root.children, "")
}

func writeChildren(w io.Writer, children []*treeNode, prefix string) error {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label); err != nil {
			return err
		}
		if err := writeChildren(w, child.children, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && int(span.File) < fs.Len() {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
