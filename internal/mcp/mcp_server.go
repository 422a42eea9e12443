// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Gradebook MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Gradebook Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: list_students ---
	s.AddTool(mcp.NewTool("list_students",
		mcp.WithDescription("List every student in the roster with the number of graded subjects."),
	), h.handleListStudents)

	// --- 2. Tool: get_student ---
	s.AddTool(mcp.NewTool("get_student",
		mcp.WithDescription("Show per-subject grades, averages and weights of one student."),
		mcp.WithString("name", mcp.Description("Student name (case-insensitive)."), mcp.Required()),
	), h.handleGetStudent)

	// --- 3. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Summarize every student: overall and weighted average, subject count, highest and lowest grade."),
	), h.handleGetSummary)

	// --- 4. Tool: add_grade ---
	s.AddTool(mcp.NewTool("add_grade",
		mcp.WithDescription("Record a grade between 0 and 100 for a student and subject."),
		mcp.WithString("name", mcp.Description("Student name. A new student is created if needed."), mcp.Required()),
		mcp.WithString("subject", mcp.Description("Subject name."), mcp.Required()),
		mcp.WithNumber("grade", mcp.Description("Integer grade between 0 and 100."), mcp.Required()),
	), h.handleAddGrade)

	// --- 5. Tool: set_weight ---
	s.AddTool(mcp.NewTool("set_weight",
		mcp.WithDescription("Set the weight of a subject used by the weighted average."),
		mcp.WithString("name", mcp.Description("Existing student name."), mcp.Required()),
		mcp.WithString("subject", mcp.Description("Subject name."), mcp.Required()),
		mcp.WithNumber("weight", mcp.Description("Positive weight, 1.0 by default."), mcp.Required()),
	), h.handleSetWeight)

	return s
}

// StartMCPServer starts the Gradebook MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
