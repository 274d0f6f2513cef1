package output

import (
	"bytes"
	"context"
	"testing"
)

func TestWithPrinter(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)

	p := FromContext(ctx)
	p.Printf("%d paths\n", 2)
	p.Println("/a")

	if got := buf.String(); got != "2 paths\n/a\n" {
		t.Errorf("output = %q", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	if err := p.JSON(map[string]int{"token_limit": 500000}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	want := "{\n  \"token_limit\": 500000\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("JSON output = %q, want %q", got, want)
	}
}
