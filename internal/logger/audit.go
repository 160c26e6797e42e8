package logger

import (
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
)

// 审计日志：把每个 persona 的判定（action/conviction/criteria/reasoning）
// 原样落到独立 writer，供外部观测方查账。与主日志分开，默认关闭。

var (
	auditMu      sync.Mutex
	auditLog     *log.Logger
	auditVerbose bool
)

func SetAuditWriter(w io.Writer) {
	auditMu.Lock()
	defer auditMu.Unlock()
	if w == nil {
		auditLog = nil
		return
	}
	auditLog = log.New(w, "", log.LstdFlags)
}

// EnableVerdictDump 控制是否附带完整 reasoning 文本。
func EnableVerdictDump(enabled bool) {
	auditMu.Lock()
	auditVerbose = enabled
	auditMu.Unlock()
}

type AuditSection struct {
	Title string
	Body  string
}

// DumpVerdict 记录一次 persona 判定。reasoning 仅在 verbose 时输出。
func DumpVerdict(symbol, persona, action string, conviction float64, sections []AuditSection) {
	auditMu.Lock()
	lg := auditLog
	verbose := auditVerbose
	auditMu.Unlock()
	if lg == nil {
		return
	}
	var b strings.Builder
	b.WriteString("[VERDICT]")
	b.WriteString("[")
	b.WriteString(symbol)
	b.WriteString("][")
	b.WriteString(persona)
	b.WriteString("]\n")
	b.WriteString("action=")
	b.WriteString(action)
	b.WriteString(" conviction=")
	b.WriteString(strconv.FormatFloat(conviction, 'f', -1, 64))
	b.WriteString("\n")
	if verbose {
		for _, sec := range sections {
			t := strings.TrimSpace(sec.Title)
			if t == "" {
				t = "CONTENT"
			}
			b.WriteString("--- ")
			b.WriteString(t)
			b.WriteString(" ---\n")
			b.WriteString(sec.Body)
			if !strings.HasSuffix(sec.Body, "\n") {
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("=====\n")
	lg.Print(b.String())
}
