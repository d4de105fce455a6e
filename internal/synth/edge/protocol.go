package edge

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// ssmlEscaper covers the characters the service rejects inside SSML text.
var ssmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// buildSSML wraps text in the minimal SSML document the service expects
// for a single fixed voice.
func buildSSML(text, voice string) string {
	return fmt.Sprintf(
		"<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='%s'>"+
			"<voice name='%s'>%s</voice></speak>",
		localeFromVoice(voice), voice, ssmlEscaper.Replace(text))
}

// localeFromVoice extracts the BCP-47 locale from a voice identifier, e.g.
// "ko-KR-SunHiNeural" -> "ko-KR".
func localeFromVoice(voice string) string {
	parts := strings.SplitN(voice, "-", 3)
	if len(parts) < 2 {
		return voice
	}
	return parts[0] + "-" + parts[1]
}

// messageTimestamp formats the X-Timestamp header the service expects on
// every outgoing frame.
func messageTimestamp() string {
	return time.Now().UTC().Format("Mon Jan 02 2006 15:04:05 GMT+0000 (Coordinated Universal Time)")
}

// messagePath extracts the Path header from a text frame.
func messagePath(msg string) string {
	for _, line := range strings.Split(msg, "\r\n") {
		if v, ok := strings.CutPrefix(line, "Path:"); ok {
			return strings.TrimSpace(v)
		}
		if line == "" {
			break
		}
	}
	return ""
}

// parseBinaryFrame splits a binary frame into its Path header value and
// payload. Binary frames carry a big-endian uint16 header length followed
// by the header block and the payload.
func parseBinaryFrame(data []byte) (path string, payload []byte, err error) {
	if len(data) < 2 {
		return "", nil, fmt.Errorf("binary frame too short: %d bytes", len(data))
	}

	headerLen := int(binary.BigEndian.Uint16(data[:2]))
	if 2+headerLen > len(data) {
		return "", nil, fmt.Errorf("binary frame header length %d exceeds frame size %d", headerLen, len(data))
	}

	header := string(data[2 : 2+headerLen])
	return messagePath(header), data[2+headerLen:], nil
}
