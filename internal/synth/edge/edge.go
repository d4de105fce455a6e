// Package edge implements speech synthesis against the Microsoft Edge
// read-aloud service. It speaks the same websocket protocol the Edge
// browser uses, so no API key is required.
package edge

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/koreanquiz/speechgen/internal/synth"
	"golang.org/x/time/rate"
)

const (
	trustedClientToken = "6A5AA1D4EAFF4E9FB37E23D68491D6F4"

	wssEndpoint = "wss://speech.platform.bing.com/consumer/speech/synthesize/" +
		"readaloud/edge/v1?TrustedClientToken=" + trustedClientToken

	wssOrigin = "chrome-extension://jdiccldimpdaibmpdkjnbmckianbfold"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36 Edg/122.0.0.0"

	// The service streams MP3; the store writes the bytes verbatim.
	outputFormat = "audio-24khz-48kbitrate-mono-mp3"

	// The endpoint rejects very long SSML payloads.
	maxTextSize = 2000

	defaultTimeout           = 30 * time.Second
	defaultRequestsPerMinute = 50
)

// Config holds configuration for the Edge engine.
type Config struct {
	// Voice identifier - defaults to DefaultVoice
	Voice string

	// Timeout per synthesis request - defaults to 30s
	Timeout time.Duration

	// Rate limit requests per minute to stay friendly to the free
	// endpoint (defaults to 50)
	RequestsPerMinute int
}

// DefaultVoice is the Korean neural voice the learning app was recorded
// with.
const DefaultVoice = "ko-KR-SunHiNeural"

// Engine synthesizes speech via the Edge read-aloud websocket service.
// One connection is dialed per request; the service closes the stream
// after each turn anyway.
type Engine struct {
	voice    string
	timeout  time.Duration
	endpoint string

	rateLimiter *rate.Limiter
	dialer      *websocket.Dialer
}

// New creates a new Edge TTS engine.
func New(config Config) (*Engine, error) {
	if config.Voice == "" {
		config.Voice = DefaultVoice
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	if config.RequestsPerMinute == 0 {
		config.RequestsPerMinute = defaultRequestsPerMinute
	}
	if config.RequestsPerMinute < 1 {
		return nil, fmt.Errorf("requests per minute must be positive, got %d", config.RequestsPerMinute)
	}

	return &Engine{
		voice:       config.Voice,
		timeout:     config.Timeout,
		endpoint:    wssEndpoint,
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RequestsPerMinute)), 1),
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}, nil
}

// Synthesize converts text to MP3 audio using the Edge service.
func (e *Engine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, synth.ErrEmptyText
	}
	if len(text) > maxTextSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", synth.ErrTextTooLong, len(text), maxTextSize)
	}

	// Pace requests to avoid being blocked
	if err := e.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	conn, err := e.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Edge TTS service: %w", err)
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	_ = conn.SetReadDeadline(deadline)
	_ = conn.SetWriteDeadline(deadline)

	if err := e.sendConfig(conn); err != nil {
		return nil, fmt.Errorf("failed to send speech config: %w", err)
	}

	requestID := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := e.sendSSML(conn, requestID, text); err != nil {
		return nil, fmt.Errorf("failed to send synthesis request: %w", err)
	}

	audio, err := readAudio(conn)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, synth.ErrNoAudio
	}
	return audio, nil
}

// VoiceInfo returns the engine's voice and output format.
func (e *Engine) VoiceInfo() synth.VoiceInfo {
	return synth.VoiceInfo{
		Voice:    e.voice,
		Locale:   localeFromVoice(e.voice),
		Format:   outputFormat,
		IsOnline: true,
	}
}

// Close releases resources held by the engine. Connections are per
// request, so there is nothing persistent to tear down.
func (e *Engine) Close() error {
	return nil
}

func (e *Engine) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	header.Set("Origin", wssOrigin)
	header.Set("User-Agent", userAgent)

	conn, resp, err := e.dialer.DialContext(ctx, e.endpoint, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("handshake rejected with HTTP %d: %w", resp.StatusCode, err)
		}
		return nil, err
	}
	return conn, nil
}

func (e *Engine) sendConfig(conn *websocket.Conn) error {
	msg := "X-Timestamp:" + messageTimestamp() + "\r\n" +
		"Content-Type:application/json; charset=utf-8\r\n" +
		"Path:speech.config\r\n\r\n" +
		`{"context":{"synthesis":{"audio":{"metadataoptions":` +
		`{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"false"},` +
		`"outputFormat":"` + outputFormat + `"}}}}`
	return conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

func (e *Engine) sendSSML(conn *websocket.Conn, requestID, text string) error {
	msg := "X-RequestId:" + requestID + "\r\n" +
		"Content-Type:application/ssml+xml\r\n" +
		"X-Timestamp:" + messageTimestamp() + "\r\n" +
		"Path:ssml\r\n\r\n" +
		buildSSML(text, e.voice)
	return conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

// readAudio collects binary audio frames until the service signals
// turn.end.
func readAudio(conn *websocket.Conn) ([]byte, error) {
	var audio []byte

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("stream read failed: %w", err)
		}

		switch msgType {
		case websocket.TextMessage:
			if messagePath(string(data)) == "turn.end" {
				return audio, nil
			}

		case websocket.BinaryMessage:
			path, payload, err := parseBinaryFrame(data)
			if err != nil {
				return nil, err
			}
			if path == "audio" {
				audio = append(audio, payload...)
			}
		}
	}
}

// Ensure Engine implements the Synthesizer interface
var _ synth.Synthesizer = (*Engine)(nil)
