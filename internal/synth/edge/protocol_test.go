package edge

import (
	"encoding/binary"
	"strings"
	"testing"
)

func TestBuildSSML(t *testing.T) {
	ssml := buildSSML("안녕하세요", "ko-KR-SunHiNeural")

	if !strings.Contains(ssml, "xml:lang='ko-KR'") {
		t.Errorf("SSML missing locale: %s", ssml)
	}
	if !strings.Contains(ssml, "<voice name='ko-KR-SunHiNeural'>안녕하세요</voice>") {
		t.Errorf("SSML missing voice element: %s", ssml)
	}
}

func TestBuildSSML_EscapesText(t *testing.T) {
	ssml := buildSSML("a<b>&'\"", "ko-KR-SunHiNeural")

	if strings.Contains(ssml, "<b>") {
		t.Errorf("SSML contains unescaped markup: %s", ssml)
	}
	if !strings.Contains(ssml, "a&lt;b&gt;&amp;&apos;&quot;") {
		t.Errorf("SSML text not escaped as expected: %s", ssml)
	}
}

func TestLocaleFromVoice(t *testing.T) {
	tests := []struct {
		voice string
		want  string
	}{
		{"ko-KR-SunHiNeural", "ko-KR"},
		{"en-US-AriaNeural", "en-US"},
		{"ko-KR", "ko-KR"},
		{"weird", "weird"},
	}

	for _, tt := range tests {
		if got := localeFromVoice(tt.voice); got != tt.want {
			t.Errorf("localeFromVoice(%q) = %q, want %q", tt.voice, got, tt.want)
		}
	}
}

func TestMessagePath(t *testing.T) {
	msg := "X-RequestId:abc\r\nPath:turn.end\r\n\r\n{}"
	if got := messagePath(msg); got != "turn.end" {
		t.Errorf("messagePath = %q, want turn.end", got)
	}

	if got := messagePath("no headers here"); got != "" {
		t.Errorf("messagePath on headerless message = %q, want empty", got)
	}
}

func TestParseBinaryFrame(t *testing.T) {
	header := "X-RequestId:abc\r\nPath:audio\r\n"
	payload := []byte{0xff, 0xf3, 0x01, 0x02}

	frame := make([]byte, 2)
	binary.BigEndian.PutUint16(frame, uint16(len(header)))
	frame = append(frame, header...)
	frame = append(frame, payload...)

	path, got, err := parseBinaryFrame(frame)
	if err != nil {
		t.Fatalf("parseBinaryFrame failed: %v", err)
	}
	if path != "audio" {
		t.Errorf("path = %q, want audio", path)
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %v, want %v", got, payload)
	}
}

func TestParseBinaryFrame_TooShort(t *testing.T) {
	if _, _, err := parseBinaryFrame([]byte{0x01}); err == nil {
		t.Error("expected error for frame shorter than length prefix")
	}
}

func TestParseBinaryFrame_BadHeaderLength(t *testing.T) {
	frame := []byte{0xff, 0xff, 'x'}
	if _, _, err := parseBinaryFrame(frame); err == nil {
		t.Error("expected error when header length exceeds frame size")
	}
}
