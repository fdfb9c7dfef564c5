package hook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AutoGuard/autoguard/internal/logger"
	"github.com/AutoGuard/autoguard/internal/rules"
	"github.com/AutoGuard/autoguard/internal/types"
)

var log = logger.New("hook")

// maxRequestSize bounds how much stdin the runner will read. Hook payloads
// are small; anything larger is malformed and gets truncated, which at worst
// fails JSON decoding and degrades to allow.
const maxRequestSize = 1 << 20

// Runner evaluates one hook request. It reads the request from in and, when
// the command is blocked, writes the decision to out.
type Runner struct {
	engine *rules.Engine
	in     io.Reader
	out    io.Writer
}

// NewRunner creates a runner over the given streams.
func NewRunner(engine *rules.Engine, in io.Reader, out io.Writer) *Runner {
	return &Runner{engine: engine, in: in, out: out}
}

// Run processes a single hook invocation. This is the fail-open boundary:
// panics are recovered and errors are logged, never propagated, so the
// caller can unconditionally exit zero.
func (r *Runner) Run() {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("recovered from panic, allowing command: %v", rec)
		}
	}()

	if err := r.evaluate(); err != nil {
		log.Warn("hook error, allowing command: %v", err)
	}
}

func (r *Runner) evaluate() error {
	data, err := io.ReadAll(io.LimitReader(r.in, maxRequestSize))
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to decode request: %w", err)
	}

	if req.ToolName != toolShell {
		log.Trace("ignoring tool %q", req.ToolName)
		return nil
	}

	cmd := req.ToolInput.Command
	if cmd == "" {
		return nil
	}

	res := r.engine.Classify(cmd)
	if !res.Matched {
		log.Trace("allowed: %q", cmd)
		return nil
	}

	log.Info("blocked %s/%s: %q", res.Category, res.RuleName, cmd)

	resp := Response{Decision: types.DecisionBlock, Reason: res.Message}
	if err := json.NewEncoder(r.out).Encode(resp); err != nil {
		return fmt.Errorf("failed to write decision: %w", err)
	}
	return nil
}
