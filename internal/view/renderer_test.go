package view

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderer_Index(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().Render(&buf, "index.html", IndexData{Status: "運行中"}, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `<strong id="status">運行中</strong>`) {
		t.Errorf("status not rendered: %s", buf.String())
	}
}

func TestRenderer_EscapesStatus(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().Render(&buf, "index.html", IndexData{Status: "<script>"}, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Error("status must be HTML-escaped")
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().Render(&buf, "missing.html", nil, nil); err == nil {
		t.Error("expected error for unknown template")
	}
}
