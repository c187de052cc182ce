//go:build ignore

// This program generates tuple.go, declaring tuple types up to
// arity maxArity.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxArity = 5

func main() {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by generate.go. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package tuple\n\n")
	fmt.Fprintf(&buf, "import \"fmt\"\n")
	for n := 0; n <= maxArity; n++ {
		genType(&buf, n)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated source: %v", err)
	}
	if err := os.WriteFile("tuple.go", src, 0o666); err != nil {
		log.Fatal(err)
	}
}

// genType writes the declaration of the arity-n tuple type
// and its methods.
func genType(buf *bytes.Buffer, n int) {
	params := typeParams(n)
	t := typeName(n)

	fmt.Fprintf(buf, "\n// T%d holds a tuple of %d values.\n", n, n)
	if n == 0 {
		fmt.Fprintf(buf, "type T0 struct{}\n")
	} else {
		fmt.Fprintf(buf, "type T%d[%s any] struct {\n", n, strings.Join(params, ", "))
		for _, p := range params {
			fmt.Fprintf(buf, "\t%s %s\n", p, p)
		}
		fmt.Fprintf(buf, "}\n")
	}

	args := make([]string, n)
	fields := make([]string, n)
	verbs := make([]string, n)
	for i, p := range params {
		args[i] = strings.ToLower(p)
		fields[i] = "t." + p
		verbs[i] = "%v"
	}

	fmt.Fprintf(buf, "\n// MkT%d returns a tuple holding the given values.\n", n)
	if n == 0 {
		fmt.Fprintf(buf, "func MkT0() T0 {\n\treturn T0{}\n}\n")
	} else {
		decls := make([]string, n)
		for i, p := range params {
			decls[i] = args[i] + " " + p
		}
		fmt.Fprintf(buf, "func MkT%d[%s any](%s) %s {\n", n, strings.Join(params, ", "), strings.Join(decls, ", "), t)
		fmt.Fprintf(buf, "\treturn %s{%s}\n}\n", t, strings.Join(args, ", "))
	}

	fmt.Fprintf(buf, "\n// Get returns the tuple's values.\n")
	switch n {
	case 0:
		fmt.Fprintf(buf, "func (t T0) Get() {\n\treturn\n}\n")
	case 1:
		fmt.Fprintf(buf, "func (t %s) Get() %s {\n\treturn %s\n}\n", t, params[0], fields[0])
	default:
		fmt.Fprintf(buf, "func (t %s) Get() (%s) {\n\treturn %s\n}\n", t, strings.Join(params, ", "), strings.Join(fields, ", "))
	}

	fmt.Fprintf(buf, "\n// String returns the tuple's values formatted as \"(v0, v1, ...)\".\n")
	fmt.Fprintf(buf, "func (t %s) String() string {\n", t)
	if n == 0 {
		fmt.Fprintf(buf, "\treturn \"()\"\n}\n")
	} else {
		fmt.Fprintf(buf, "\treturn fmt.Sprintf(\"(%s)\", %s)\n}\n", strings.Join(verbs, ", "), strings.Join(fields, ", "))
	}
}

// typeName returns the full instantiated type name for arity n,
// such as "T2[A, B]".
func typeName(n int) string {
	if n == 0 {
		return "T0"
	}
	return fmt.Sprintf("T%d[%s]", n, strings.Join(typeParams(n), ", "))
}

// typeParams returns the type parameter names for arity n.
func typeParams(n int) []string {
	params := make([]string, n)
	for i := range params {
		params[i] = string(rune('A' + i))
	}
	return params
}
