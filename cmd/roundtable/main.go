package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"roundtable/internal/config"
	"roundtable/internal/engine"
	"roundtable/internal/logger"
	"roundtable/internal/market"
)

// 一次性评估入口：读取快照+历史序列文件，跑一轮共识并输出 JSON。
// 常驻进程（行情订阅、下单）在外部系统里，不在本仓库。

type inputFile struct {
	Snapshot market.Snapshot `json:"snapshot"`
	Candles  []market.Candle `json:"candles"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <snapshot.json>", filepath.Base(os.Args[0]))
	}

	cfgPath := os.Getenv("ROUNDTABLE_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("读取配置失败: %v", err)
	}
	logFile, err := setupLogOutput(cfg.App.LogPath)
	if err != nil {
		log.Fatalf("初始化日志文件失败: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.App.LogLevel)
	if cfg.App.AuditLogPath != "" {
		auditFile, err := os.OpenFile(cfg.App.AuditLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("初始化审计日志失败: %v", err)
		}
		defer auditFile.Close()
		logger.SetAuditWriter(auditFile)
		logger.EnableVerdictDump(cfg.App.VerdictDump)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("读取输入失败: %v", err)
	}
	var input inputFile
	if err := json.Unmarshal(raw, &input); err != nil {
		log.Fatalf("解析输入失败: %v", err)
	}
	if input.Snapshot.Symbol == "" {
		log.Fatalf("输入缺少 snapshot.symbol")
	}

	eng, err := engine.New(cfg)
	if err != nil {
		log.Fatalf("初始化引擎失败: %v", err)
	}
	eng.UpdateMarketData(input.Snapshot.Symbol, input.Snapshot, input.Candles)

	res, err := eng.Evaluate(context.Background(), input.Snapshot.Symbol)
	if err != nil {
		log.Fatalf("评估失败: %v", err)
	}
	thesis, err := eng.Thesis(input.Snapshot.Symbol)
	if err != nil {
		log.Fatalf("论点推导失败: %v", err)
	}

	out := map[string]any{
		"consensus": res,
		"thesis": map[string]any{
			"stage":                thesis.CycleStage.String(),
			"conviction":           thesis.Conviction,
			"asymmetry_ratio":      thesis.AsymmetryRatio,
			"is_valid_entry":       thesis.IsValidEntry(),
			"recommended_position": thesis.RecommendedPosition,
			"prediction":           thesis.Prediction,
		},
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("输出失败: %v", err)
	}
	fmt.Fprintln(os.Stderr, "done")
}

func setupLogOutput(path string) (*os.File, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	dir := filepath.Dir(trimmed)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	mw := io.MultiWriter(os.Stdout, file)
	log.SetOutput(mw)
	logger.SetOutput(mw)
	return file, nil
}
