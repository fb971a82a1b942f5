// Package transcript holds the ordered record of a session.
// Appending assigns sequence numbers under exclusive access; entries are
// immutable afterwards. No deletion or mutation operation exists.
package transcript

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"turn-chat/domain"
)

// Transcript is an append-only log of accepted messages.
// Sequence numbers are contiguous starting at 1.
// Safe for concurrent use by both connection workers.
type Transcript struct {
	mu      sync.Mutex
	entries []domain.Message
}

func New() *Transcript {
	return &Transcript{}
}

// Append assigns the next sequence number and stores the entry.
// Sequence assignment and storage happen under the same critical section,
// so a snapshot can never observe a half-appended message.
func (t *Transcript) Append(sender domain.Participant, text string, delivered bool) domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := domain.Message{
		ID:        uuid.New(),
		Seq:       uint64(len(t.entries)) + 1,
		Sender:    sender,
		Text:      text,
		Delivered: delivered,
		CreatedAt: time.Now(),
	}
	t.entries = append(t.entries, msg)
	return msg
}

// Snapshot returns an ordered copy for final reporting.
func (t *Transcript) Snapshot() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.Message, len(t.entries))
	copy(out, t.entries)
	return out
}

// MarkUndelivered clears the delivery flag of an existing entry after a
// forward that failed post-append. The text, sender and sequence of an
// entry never change.
func (t *Transcript) MarkUndelivered(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq == 0 || seq > uint64(len(t.entries)) {
		return
	}
	t.entries[seq-1].Delivered = false
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// RenderPlain writes the conversation in the classic dump format,
// one "#NNN [DEPT] text" line per entry.
func (t *Transcript) RenderPlain(w io.Writer) {
	for _, m := range t.Snapshot() {
		fmt.Fprintf(w, "#%03d [%s] %s\n", m.Seq, m.Sender, m.Text)
	}
}

// RenderTable writes the conversation as an aligned table for operators.
func (t *Transcript) RenderTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Seq", "Sender", "Text", "Delivered", "At"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk(lo.Map(t.Snapshot(), func(m domain.Message, _ int) []string {
		return []string{
			fmt.Sprintf("%03d", m.Seq),
			m.Sender.String(),
			m.Text,
			strconv.FormatBool(m.Delivered),
			m.CreatedAt.Format(time.TimeOnly),
		}
	}))
	table.Render()
}
