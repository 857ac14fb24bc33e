package mailer

import (
	"strings"
	"testing"
)

func TestBuildMIMEMessageValidation(t *testing.T) {
	cases := []struct {
		name string
		e    Email
	}{
		{"no recipient", Email{From: "a@b.c", Subject: "s", TextBody: "t"}},
		{"no from", Email{To: []string{"x@y.z"}, Subject: "s", TextBody: "t"}},
		{"no subject", Email{From: "a@b.c", To: []string{"x@y.z"}, TextBody: "t"}},
		{"no body", Email{From: "a@b.c", To: []string{"x@y.z"}, Subject: "s"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := buildMIMEMessage(tc.e, "test"); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBuildMIMEMessageTextOnly(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		FromName: "Reverse",
		From:     "no-reply@reverse-eg.com",
		To:       []string{"jo@example.com"},
		Subject:  "Your order shipped",
		TextBody: "It is on the way.",
	}, "reverse-eg.com")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"From: Reverse <no-reply@reverse-eg.com>",
		"To: jo@example.com",
		"Content-Type: text/plain; charset=UTF-8",
		"It is on the way.",
		"Message-ID: <",
		"@reverse-eg.com>",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q", want)
		}
	}
	if strings.Contains(raw, "multipart/alternative") {
		t.Error("text-only message should not be multipart")
	}
}

func TestBuildMIMEMessageMultipart(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		From:     "no-reply@reverse-eg.com",
		To:       []string{"jo@example.com"},
		Subject:  "Hello",
		TextBody: "plain",
		HTMLBody: "<p>rich</p>",
	}, "reverse-eg.com")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(raw, "multipart/alternative") {
		t.Fatal("expected multipart message")
	}
	if !strings.Contains(raw, "text/plain") || !strings.Contains(raw, "text/html") {
		t.Error("multipart message missing a part")
	}
	if !strings.Contains(raw, "plain") || !strings.Contains(raw, "<p>rich</p>") {
		t.Error("multipart message missing body content")
	}
}

func TestBuildMIMEMessageEncodesNonASCIISubject(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		From:     "no-reply@reverse-eg.com",
		To:       []string{"jo@example.com"},
		Subject:  "طلبك وصل",
		TextBody: "t",
	}, "reverse-eg.com")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(raw, "=?utf-8?q?") {
		t.Error("non-ascii subject not RFC2047 encoded")
	}
}

func TestAllRecipients(t *testing.T) {
	e := Email{
		To:  []string{"a@x.y"},
		Cc:  []string{"b@x.y"},
		Bcc: []string{"c@x.y"},
	}
	got := e.AllRecipients()
	if len(got) != 3 {
		t.Fatalf("AllRecipients = %v", got)
	}
}
