package admincli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  admin@corp.io \n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Email", &out)
	if err != nil || got != "admin@corp.io" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if out.String() != "Email\n> " {
		t.Fatalf("unexpected prompt %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Name?", &out)
	if err == nil {
		t.Fatal("expected EOF error")
	}
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()

	readPassword = func(int) ([]byte, error) { return []byte("secret1"), nil }
	var out bytes.Buffer
	pw, err := GetPassword("Password", &out)
	if err != nil || string(pw) != "secret1" {
		t.Fatalf("got %q, err=%v", pw, err)
	}
	if out.String() != "Password: \n" {
		t.Fatalf("unexpected prompt %q", out.String())
	}

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	if _, err := GetPassword("Password", &out); err == nil {
		t.Fatal("expected error")
	}
}
