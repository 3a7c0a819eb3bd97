package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestNoSecretsInFormatCalls scans the binding packages for RPC passwords or
// Tor auth secrets flowing into fmt/log style calls. Credentials belong in
// requests to the engine, never in a formatted message; logging code must use
// logging.Redacted instead.
func TestNoSecretsInFormatCalls(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg,
		"github.com/citadel-tech/coinswap-ffi/pkg/coinswap",
		"github.com/citadel-tech/coinswap-ffi/pkg/coinswap/logging",
	)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}
				if !isFormatCall(obj.Pkg().Path(), obj.Name()) {
					return true
				}

				for _, arg := range call.Args {
					if name, ok := secretName(arg); ok {
						pos := fset.Position(arg.Pos())
						findings = append(findings, fmt.Sprintf(
							"%s: %s passed to %s.%s", pos, name, obj.Pkg().Path(), obj.Name()))
					}
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("secret logging policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func isFormatCall(pkgPath, name string) bool {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Errorf", "Printf", "Sprintf", "Fprintf", "Print", "Sprint", "Println":
			return true
		}
	case "log":
		switch name {
		case "Printf", "Print", "Println", "Fatalf", "Panicf":
			return true
		}
	case "log/slog":
		switch name {
		case "Debug", "Info", "Warn", "Error", "String", "Any":
			return true
		}
	}
	return false
}

// secretName reports whether the expression is an identifier or field access
// whose name marks it as credential material.
func secretName(expr ast.Expr) (string, bool) {
	var name string
	switch e := expr.(type) {
	case *ast.Ident:
		name = e.Name
	case *ast.SelectorExpr:
		name = e.Sel.Name
	case *ast.StarExpr:
		return secretName(e.X)
	default:
		return "", false
	}
	lower := strings.ToLower(name)
	if strings.Contains(lower, "password") || strings.Contains(lower, "passphrase") {
		return name, true
	}
	return "", false
}
