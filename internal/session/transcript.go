package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// LineListener reads one utterance per line. Listen returns "" when no line
// arrives within the poll interval so idle sessions can expire.
type LineListener struct {
	r    io.Reader
	poll time.Duration

	once  sync.Once
	lines chan string
	err   error
}

// NewLineListener creates a listener over r. A zero poll uses DefaultPollInterval.
func NewLineListener(r io.Reader, poll time.Duration) *LineListener {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &LineListener{r: r, poll: poll, lines: make(chan string)}
}

func (ll *LineListener) Listen(ctx context.Context) (string, error) {
	ll.once.Do(func() { go ll.scan() })

	timer := time.NewTimer(ll.poll)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return "", nil
	case line, ok := <-ll.lines:
		if !ok {
			if ll.err != nil {
				return "", ll.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (ll *LineListener) scan() {
	defer close(ll.lines)
	sc := bufio.NewScanner(ll.r)
	for sc.Scan() {
		ll.lines <- sc.Text()
	}
	ll.err = sc.Err()
}

// WriterSpeaker prints replies with a label, one per block.
type WriterSpeaker struct {
	w     io.Writer
	label string
}

func NewWriterSpeaker(w io.Writer, label string) *WriterSpeaker {
	return &WriterSpeaker{w: w, label: label}
}

func (ws *WriterSpeaker) Speak(ctx context.Context, text string) error {
	_, err := fmt.Fprintf(ws.w, "%s: %s\n", ws.label, text)
	return err
}
