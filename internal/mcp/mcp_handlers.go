package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/huangsam/gradebook/core"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
// mu serializes access to the roster file, since each mutation is a load-modify-save.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
	mu      sync.Mutex
}

func (h *toolHandler) handleListStudents(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	students, err := core.GetStudentList(core.WithQuiet(ctx), h.baseCfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load roster: %v", err)), nil
	}
	return jsonResult(students)
}

func (h *toolHandler) handleGetStudent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	detail, err := core.GetStudentDetail(core.WithQuiet(ctx), h.baseCfg, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	return jsonResult(detail)
}

func (h *toolHandler) handleGetSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	summaries, _, err := core.GetSummaryResults(core.WithQuiet(ctx), h.baseCfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}
	return jsonResult(summaries)
}

func (h *toolHandler) handleAddGrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, subject, err := requireNameAndSubject(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw := request.GetFloat("grade", math.NaN())
	if math.IsNaN(raw) {
		return mcp.NewToolResultError("grade is required"), nil
	}
	if raw != math.Trunc(raw) {
		return mcp.NewToolResultError(fmt.Sprintf("grade must be an integer, got %v", raw)), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	line, err := core.AddGrade(core.WithQuiet(ctx), h.baseCfg, name, subject, int(raw))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("add grade failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s / %s: %s", name, subject, line)), nil
}

func (h *toolHandler) handleSetWeight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, subject, err := requireNameAndSubject(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	weight := request.GetFloat("weight", math.NaN())
	if math.IsNaN(weight) {
		return mcp.NewToolResultError("weight is required"), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	line, graded, err := core.SetWeight(core.WithQuiet(ctx), h.baseCfg, name, subject, weight)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("set weight failed: %v", err)), nil
	}
	text := fmt.Sprintf("%s / %s: %s", name, subject, line)
	if !graded {
		text += " (not saved until the subject has a grade)"
	}
	return mcp.NewToolResultText(text), nil
}

// requireNameAndSubject reads the two string arguments shared by the mutation tools.
func requireNameAndSubject(request mcp.CallToolRequest) (string, string, error) {
	name := request.GetString("name", "")
	if name == "" {
		return "", "", errors.New("name is required")
	}
	subject := request.GetString("subject", "")
	if subject == "" {
		return "", "", errors.New("subject is required")
	}
	return name, subject, nil
}

// jsonResult wraps data as indented JSON text.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
