package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunArithmetic(t *testing.T) {
	cases := []struct {
		op, a, b, want string
	}{
		{"+", "2", "3", "5"},
		{"-", "10", "4", "6"},
		{"*", "123456789", "987654321", "121932631112635269"},
		{"/", "100000000000000000000", "999983", "100001700028900"},
		{"%", "-5", "3", "-2"},
	}
	for _, c := range cases {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-op", c.op, "-quiet", c.a, c.b}, &stdout, &stderr)
		if code != 0 {
			t.Fatalf("op=%s: exit code %d, stderr=%s", c.op, code, stderr.String())
		}
		if got := strings.TrimSpace(stdout.String()); got != c.want {
			t.Errorf("op=%s: got %q, want %q", c.op, got, c.want)
		}
	}
}

func TestRunRejectsMalformedOperand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-quiet", "5", "abc"}, &stdout, &stderr)
	if code == 0 {
		t.Fatal("expected a non-zero exit code for a malformed operand")
	}
}

func TestRunRejectsWrongArgCount(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-quiet", "5"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("got exit code %d, want 2", code)
	}
}

func TestRunUnsupportedOperator(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-op", "^", "-quiet", "2", "3"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("got exit code %d, want 1", code)
	}
}
