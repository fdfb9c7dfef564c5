// Package hook implements the PreToolUse protocol: a JSON request on stdin
// describing the tool call about to run, and an optional JSON decision on
// stdout. Emitting nothing allows the call; emitting a block decision stops
// it with a reason the agent can read.
//
// The guard is advisory, not load-bearing: every failure inside the hook
// degrades to allow, and the process always exits zero. A crashing or
// misconfigured guard must never take the agent offline.
package hook

import (
	"github.com/AutoGuard/autoguard/internal/types"
)

// toolShell is the only tool this guard inspects. Requests for any other
// tool pass through untouched.
const toolShell = "Bash"

// Request is the hook payload delivered on stdin.
type Request struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
}

// ToolInput carries the fields of the tool call. Only the shell command is
// inspected; unknown fields are ignored.
type ToolInput struct {
	Command string `json:"command"`
}

// Response is the decision written to stdout when a command is blocked.
type Response struct {
	Decision types.Decision `json:"decision"`
	Reason   string         `json:"reason"`
}
