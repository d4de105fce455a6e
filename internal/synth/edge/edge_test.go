package edge

import (
	"context"
	"encoding/binary"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/koreanquiz/speechgen/internal/synth"
)

func TestNew_Defaults(t *testing.T) {
	engine, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	info := engine.VoiceInfo()
	if info.Voice != DefaultVoice {
		t.Errorf("Voice = %q, want %q", info.Voice, DefaultVoice)
	}
	if info.Locale != "ko-KR" {
		t.Errorf("Locale = %q, want ko-KR", info.Locale)
	}
	if info.Format != outputFormat {
		t.Errorf("Format = %q, want %q", info.Format, outputFormat)
	}
	if !info.IsOnline {
		t.Error("IsOnline = false, want true")
	}
}

func TestNew_RejectsNegativeRate(t *testing.T) {
	if _, err := New(Config{RequestsPerMinute: -5}); err == nil {
		t.Error("expected error for negative requests per minute")
	}
}

func TestSynthesize_EmptyText(t *testing.T) {
	engine, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = engine.Synthesize(context.Background(), "")
	if !errors.Is(err, synth.ErrEmptyText) {
		t.Errorf("err = %v, want ErrEmptyText", err)
	}
}

func TestSynthesize_TextTooLong(t *testing.T) {
	engine, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	long := strings.Repeat("가", 1000) // 3000 bytes of UTF-8
	_, err = engine.Synthesize(context.Background(), long)
	if !errors.Is(err, synth.ErrTextTooLong) {
		t.Errorf("err = %v, want ErrTextTooLong", err)
	}
}

// fakeService speaks the read-aloud protocol: it consumes the
// speech.config and ssml frames, then streams audio frames followed by
// turn.end.
func fakeService(t *testing.T, audio [][]byte) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		// speech.config frame
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Errorf("read config frame: %v", err)
			return
		}
		if messagePath(string(data)) != "speech.config" {
			t.Errorf("first frame path = %q, want speech.config", messagePath(string(data)))
		}

		// ssml frame
		_, data, err = conn.ReadMessage()
		if err != nil {
			t.Errorf("read ssml frame: %v", err)
			return
		}
		if messagePath(string(data)) != "ssml" {
			t.Errorf("second frame path = %q, want ssml", messagePath(string(data)))
		}

		header := "X-RequestId:test\r\nPath:audio\r\n"
		for _, chunk := range audio {
			frame := make([]byte, 2)
			binary.BigEndian.PutUint16(frame, uint16(len(header)))
			frame = append(frame, header...)
			frame = append(frame, chunk...)
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				t.Errorf("write audio frame: %v", err)
				return
			}
		}

		end := "X-RequestId:test\r\nPath:turn.end\r\n\r\n{}"
		if err := conn.WriteMessage(websocket.TextMessage, []byte(end)); err != nil {
			t.Errorf("write turn.end: %v", err)
		}
	}))
}

func testEngine(t *testing.T, srv *httptest.Server) *Engine {
	t.Helper()

	engine, err := New(Config{
		Timeout:           5 * time.Second,
		RequestsPerMinute: 6000, // effectively unthrottled for tests
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	engine.endpoint = "ws" + strings.TrimPrefix(srv.URL, "http")
	return engine
}

func TestSynthesize_CollectsAudioFrames(t *testing.T) {
	srv := fakeService(t, [][]byte{[]byte("part-one-"), []byte("part-two")})
	defer srv.Close()

	engine := testEngine(t, srv)

	audio, err := engine.Synthesize(context.Background(), "안녕하세요")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(audio) != "part-one-part-two" {
		t.Errorf("audio = %q, want concatenated frames", audio)
	}
}

func TestSynthesize_NoAudio(t *testing.T) {
	srv := fakeService(t, nil)
	defer srv.Close()

	engine := testEngine(t, srv)

	_, err := engine.Synthesize(context.Background(), "안녕")
	if !errors.Is(err, synth.ErrNoAudio) {
		t.Errorf("err = %v, want ErrNoAudio", err)
	}
}

func TestSynthesize_ServiceUnreachable(t *testing.T) {
	srv := fakeService(t, nil)
	srv.Close() // nothing listening anymore

	engine := testEngine(t, srv)

	if _, err := engine.Synthesize(context.Background(), "안녕"); err == nil {
		t.Error("expected error when service is unreachable")
	}
}
