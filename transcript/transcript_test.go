package transcript

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"turn-chat/domain"
)

func TestTranscript_AppendAssignsContiguousSequences(t *testing.T) {
	tr := New()

	m1 := tr.Append(domain.DeptRH, "Olá TI", true)
	m2 := tr.Append(domain.DeptTI, "Oi RH", true)

	require.Equal(t, uint64(1), m1.Seq)
	require.Equal(t, uint64(2), m2.Seq)
	require.Equal(t, 2, tr.Len())
}

func TestTranscript_ConcurrentAppendsStayContiguous(t *testing.T) {
	tr := New()

	const perSide = 50
	var wg sync.WaitGroup
	for _, dept := range []domain.Participant{domain.DeptRH, domain.DeptTI} {
		wg.Add(1)
		go func(d domain.Participant) {
			defer wg.Done()
			for i := 0; i < perSide; i++ {
				tr.Append(d, "x", true)
			}
		}(dept)
	}
	wg.Wait()

	snap := tr.Snapshot()
	require.Len(t, snap, 2*perSide)
	for i, m := range snap {
		require.Equal(t, uint64(i+1), m.Seq, "sequence must be 1..N without gaps")
	}
}

func TestTranscript_MarkUndelivered(t *testing.T) {
	tr := New()
	m := tr.Append(domain.DeptRH, "tem alguém?", true)

	tr.MarkUndelivered(m.Seq)

	snap := tr.Snapshot()
	require.False(t, snap[0].Delivered)
	require.Equal(t, "tem alguém?", snap[0].Text, "only the delivery flag changes")

	// Out-of-range sequences are ignored.
	tr.MarkUndelivered(0)
	tr.MarkUndelivered(99)
	require.Len(t, tr.Snapshot(), 1)
}

func TestTranscript_SnapshotIsACopy(t *testing.T) {
	tr := New()
	tr.Append(domain.DeptRH, "original", true)

	snap := tr.Snapshot()
	snap[0].Text = "tampered"

	require.Equal(t, "original", tr.Snapshot()[0].Text)
}

func TestTranscript_RenderPlain(t *testing.T) {
	tr := New()
	tr.Append(domain.DeptRH, "Olá TI", true)
	tr.Append(domain.DeptTI, "Oi RH", false)

	var buf bytes.Buffer
	tr.RenderPlain(&buf)

	require.Equal(t, "#001 [RH] Olá TI\n#002 [TI] Oi RH\n", buf.String())
}

func TestTranscript_RenderTableContainsEntries(t *testing.T) {
	tr := New()
	tr.Append(domain.DeptRH, "Olá TI", true)

	var buf bytes.Buffer
	tr.RenderTable(&buf)

	out := buf.String()
	require.Contains(t, out, "001")
	require.Contains(t, out, "RH")
	require.Contains(t, out, "Olá TI")
	require.Contains(t, out, "true")
}
