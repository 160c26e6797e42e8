package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpVerdict(t *testing.T) {
	var buf bytes.Buffer
	SetAuditWriter(&buf)
	EnableVerdictDump(false)
	defer SetAuditWriter(nil)

	DumpVerdict("005930", "Graham", "BUY", 0.9, []AuditSection{{Title: "REASONING", Body: "7/7 criteria met"}})

	out := buf.String()
	assert.Contains(t, out, "[VERDICT][005930][Graham]")
	assert.Contains(t, out, "action=BUY conviction=0.9")
	assert.NotContains(t, out, "criteria met")
}

func TestDumpVerdict_Verbose(t *testing.T) {
	var buf bytes.Buffer
	SetAuditWriter(&buf)
	EnableVerdictDump(true)
	defer func() {
		EnableVerdictDump(false)
		SetAuditWriter(nil)
	}()

	DumpVerdict("005930", "Soros", "HOLD", 0.35, []AuditSection{
		{Title: "REASONING", Body: "cycle stage INCEPTION"},
		{Title: "", Body: "extra"},
	})

	out := buf.String()
	assert.Contains(t, out, "--- REASONING ---")
	assert.Contains(t, out, "cycle stage INCEPTION")
	assert.Contains(t, out, "--- CONTENT ---")
}

func TestDumpVerdict_NoWriterIsNoop(t *testing.T) {
	SetAuditWriter(nil)
	assert.NotPanics(t, func() {
		DumpVerdict("005930", "Graham", "BUY", 0.9, nil)
	})
}
