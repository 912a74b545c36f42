package assistant

import (
	"context"
	"time"
)

// ChatMessage is one turn of conversational history.
type ChatMessage struct {
	Role    string `msgpack:"role" json:"role"` // "system", "user", "assistant"
	Content string `msgpack:"content" json:"content"`
}

// ChatModel generates a free-form reply from the running conversation.
// Implementations own their model choice and bounds.
type ChatModel interface {
	Reply(ctx context.Context, history []ChatMessage) (string, error)
}

// Searcher performs a web search for the extracted query, typically by
// opening the user's browser.
type Searcher interface {
	Search(ctx context.Context, query string) error
}

// Diagnostics is a host health snapshot.
type Diagnostics struct {
	BatteryPercent string
	BatteryStatus  string
	CPUUsage       string
	CPUTemp        string
	RAMPercent     float64
	RAMUsage       string
	DiskUsage      string
}

// DiagnosticsProvider reads the host health snapshot.
type DiagnosticsProvider interface {
	Diagnostics(ctx context.Context) (*Diagnostics, error)
}

// Player plays and stops local audio files.
type Player interface {
	Play(ctx context.Context, file string) error
	Stop(ctx context.Context) error
}

// Transcriber converts captured audio to text. Speech capture itself
// lives outside this module; front ends plug their engine in here.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Synthesizer renders a spoken reply from text.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// WakeWordDetector reports when the wake word is heard on the audio
// stream. Detect blocks until detection, stream end, or ctx cancel.
type WakeWordDetector interface {
	Detect(ctx context.Context) (time.Time, error)
}
