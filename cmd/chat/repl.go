package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/memory"
)

const (
	banner = "🇻🇳 Trợ lý du lịch Việt Nam\n" +
		"Hỏi về ẩm thực, địa điểm, lịch trình, khách sạn hoặc thời tiết.\n" +
		"Gõ 'lịch sử' để xem tóm tắt, 'xóa' để bắt đầu lại, 'thoát' để kết thúc."
	prompt  = "\n👤 Bạn: "
	answer  = "\n🤖 Trợ lý:\n%s\n"
	goodbye = "👋 Tạm biệt! Chúc bạn có chuyến đi vui vẻ!"
	cleared = "🧹 Đã xóa lịch sử hội thoại."
)

var (
	quitCommands    = []string{"quit", "exit", "thoát"}
	historyCommands = []string{"history", "lịch sử"}
	clearCommands   = []string{"clear", "xóa"}
)

// assistant is the part of the orchestrator the terminal drives.
type assistant interface {
	ProcessQuery(ctx context.Context, sessionID, query string) (orchestrator.Reply, error)
	Summary(ctx context.Context, sessionID string) (string, error)
	ClearHistory(ctx context.Context, sessionID string) error
}

type repl struct {
	uc        assistant
	sessionID string
	in        io.Reader
	out       io.Writer
}

// run reads lines until EOF, a quit command or ctx cancellation.
func (r *repl) run(ctx context.Context) {
	fmt.Fprintln(r.out, banner)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if ctx.Err() != nil || !scanner.Scan() {
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, goodbye)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		cmd := strings.ToLower(line)
		switch {
		case line == "":
			fmt.Fprintln(r.out, orchestrator.MsgEmptyQuery)
		case slices.Contains(quitCommands, cmd):
			fmt.Fprintln(r.out, goodbye)
			return
		case slices.Contains(historyCommands, cmd):
			fmt.Fprintln(r.out, r.summary(ctx))
		case slices.Contains(clearCommands, cmd):
			if err := r.uc.ClearHistory(ctx, r.sessionID); err != nil && !errors.Is(err, memory.ErrSessionNotFound) {
				fmt.Fprintln(r.out, orchestrator.MsgInternalError)
				continue
			}
			fmt.Fprintln(r.out, cleared)
		default:
			reply, err := r.uc.ProcessQuery(ctx, r.sessionID, line)
			if err != nil && reply.Text == "" {
				fmt.Fprintln(r.out, orchestrator.MsgInternalError)
				continue
			}
			fmt.Fprintf(r.out, answer, reply.Text)
		}
	}
}

func (r *repl) summary(ctx context.Context) string {
	s, err := r.uc.Summary(ctx, r.sessionID)
	if errors.Is(err, memory.ErrSessionNotFound) {
		return memory.SummaryEmpty
	}
	if err != nil {
		return orchestrator.MsgInternalError
	}
	return s
}
