// Package tools регистрирует MCP инструменты калькулятора сложного процента.
package tools

import (
	"context"
	"fmt"

	"github.com/cloud-ru/firefly-go/internal/calculations"
	"github.com/cloud-ru/firefly-go/internal/logging"
	"github.com/cloud-ru/firefly-go/internal/models"
	"github.com/cloud-ru/firefly-go/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Названия инструментов
const (
	CompoundInterestTool   = "compound_interest"
	MonthlyProjectionTool  = "monthly_projection"
	CompareFrequenciesTool = "compare_frequencies"
)

// ServerName имя MCP сервера
const ServerName = "firefly"

// NewServer создает MCP сервер со всеми инструментами
func NewServer(svc *service.Service, version string, logger *logging.Logger) *mcp.Server {
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.WithComponent(logging.ComponentMCP)

	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, nil)
	mcp.AddTool(server, compoundInterestTool(), CompoundInterestHandler(svc, logger))
	mcp.AddTool(server, monthlyProjectionTool(), MonthlyProjectionHandler(svc, logger))
	mcp.AddTool(server, compareFrequenciesTool(), CompareFrequenciesHandler(svc, logger))
	return server
}

func compoundInterestTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        CompoundInterestTool,
		Description: "Calculates compound interest growth with optional monthly or annual contributions and returns a yearly breakdown",
	}
}

func monthlyProjectionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        MonthlyProjectionTool,
		Description: "Builds a month-by-month balance and invested-amount series for charting",
	}
}

func compareFrequenciesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        CompareFrequenciesTool,
		Description: "Compares the final amount of one scenario under daily, monthly and annual compounding",
	}
}

// CompoundInterestHandler обрабатывает запрос на расчет сложного процента
func CompoundInterestHandler(svc *service.Service, logger *logging.Logger) mcp.ToolHandlerFor[models.CalculateRequest, models.CalculateResponse] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, req models.CalculateRequest) (*mcp.CallToolResult, models.CalculateResponse, error) {
		ctx = logging.WithContext(ctx, logger.With(logging.FieldOperation, CompoundInterestTool))

		res, err := svc.CalculateRequest(ctx, req)
		if err != nil {
			return nil, models.CalculateResponse{}, toolError(err)
		}
		return nil, models.NewCalculateResponse(res), nil
	}
}

// MonthlyProjectionHandler обрабатывает запрос на помесячную проекцию
func MonthlyProjectionHandler(svc *service.Service, logger *logging.Logger) mcp.ToolHandlerFor[models.CalculateRequest, models.ProjectionResponse] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, req models.CalculateRequest) (*mcp.CallToolResult, models.ProjectionResponse, error) {
		ctx = logging.WithContext(ctx, logger.With(logging.FieldOperation, MonthlyProjectionTool))

		points, err := svc.ProjectRequest(ctx, req)
		if err != nil {
			return nil, models.ProjectionResponse{}, toolError(err)
		}
		return nil, models.NewProjectionResponse(points), nil
	}
}

// CompareFrequenciesHandler обрабатывает запрос на сравнение частот капитализации
func CompareFrequenciesHandler(svc *service.Service, logger *logging.Logger) mcp.ToolHandlerFor[models.CalculateRequest, calculations.FrequencyComparison] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, req models.CalculateRequest) (*mcp.CallToolResult, calculations.FrequencyComparison, error) {
		ctx = logging.WithContext(ctx, logger.With(logging.FieldOperation, CompareFrequenciesTool))

		cmp, err := svc.CompareRequest(ctx, req)
		if err != nil {
			return nil, calculations.FrequencyComparison{}, toolError(err)
		}
		return nil, *cmp, nil
	}
}

func toolError(err error) error {
	if service.IsValidationError(err) {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return err
}
