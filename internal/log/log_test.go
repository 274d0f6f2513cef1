package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestVerbosef(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, false, false)
	l.Verbosef("probing %s", "/tmp")
	if buf.Len() != 0 {
		t.Errorf("Verbosef printed without verbose mode: %q", buf.String())
	}

	l = New(&buf, true, false)
	l.Verbosef("probing %s", "/tmp")
	if got := buf.String(); got != "probing /tmp\n" {
		t.Errorf("Verbosef output = %q", got)
	}
}

func TestQuietSuppresses(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true, true)

	l.Printf("info\n")
	l.Println("info")
	l.Verbosef("trace")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote: %q", buf.String())
	}

	l.Errorf("boom: %v", 42)
	if !strings.Contains(buf.String(), "error: boom: 42") {
		t.Errorf("Errorf suppressed in quiet mode: %q", buf.String())
	}
}

func TestFromContextDefault(t *testing.T) {
	l := FromContext(context.Background())
	// Must not panic and must swallow output.
	l.Printf("ignored")
	l.Verbosef("ignored")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false, false))

	FromContext(ctx).Println("hello")
	if got := buf.String(); got != "hello\n" {
		t.Errorf("Println output = %q", got)
	}
}
