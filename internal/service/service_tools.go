// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/models"
)

// DefaultTools is the dashboard catalogue, free tools first.
var DefaultTools = []models.Tool{
	{Name: "Basic Analytics", Description: "View simple charts and data analytics for your transactions"},
	{Name: "Data Export", Description: "Export your transaction data in CSV format"},
	{Name: "Card Management", Description: "Manage your payment cards and settings"},
	{Name: "Advanced Analytics", Description: "Get detailed insights with advanced filtering and visualization", Premium: true},
	{Name: "Real-time Monitoring", Description: "Monitor transactions and events in real time", Premium: true},
	{Name: "Security Dashboard", Description: "Manage security settings and view security logs", Premium: true},
	{Name: "API Integration", Description: "Connect to third-party services via our API", Premium: true},
	{Name: "Custom Reports", Description: "Create and schedule custom financial reports", Premium: true},
	{Name: "Batch Processing", Description: "Process multiple transactions at once", Premium: true},
	{Name: "Alert Management", Description: "Set up custom alerts for important events", Premium: true},
	{Name: "Workflow Automation", Description: "Create automated workflows for repetitive tasks", Premium: true},
	{Name: "Performance Optimizer", Description: "Optimize your payment processing for speed and efficiency", Premium: true},
}

const (
	titlePremiumTool = "Premium Tool"
	bodyPremiumTool  = "Start your free trial to access this feature"
	bodyToolLoading  = "Tool is loading..."
)

type toolService struct {
	tools    []models.Tool
	premium  PremiumChecker
	notifier Notifier
	clock    Clock

	logger *logger.Logger
}

// NewToolService builds a ToolService over tools. A nil tools slice selects
// [DefaultTools].
func NewToolService(tools []models.Tool, premium PremiumChecker, notifier Notifier, clock Clock, logger *logger.Logger) ToolService {
	if tools == nil {
		tools = DefaultTools
	}

	return &toolService{
		tools:    tools,
		premium:  premium,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

func (s *toolService) ListTools(ctx context.Context) []models.ToolAccess {
	unlocked := s.premium.CanAccessPremium()

	out := make([]models.ToolAccess, 0, len(s.tools))
	for _, tool := range s.tools {
		out = append(out, models.ToolAccess{
			Tool:   tool,
			Locked: tool.Premium && !unlocked,
		})
	}
	return out
}

func (s *toolService) LaunchTool(ctx context.Context, name string) error {
	log := logger.FromContextOr(ctx, s.logger)

	tool, ok := s.find(name)
	if !ok {
		log.Debug().Str("tool", name).Msg("unknown tool")
		return fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}

	if tool.Premium && !s.premium.CanAccessPremium() {
		log.Info().Str("tool", name).Msg("premium tool is locked")
		s.notify(ctx, titlePremiumTool, bodyPremiumTool)
		return ErrPremiumRequired
	}

	log.Info().Str("tool", name).Msg("launching tool")
	s.notify(ctx, "Launching "+tool.Name, bodyToolLoading)
	return nil
}

func (s *toolService) find(name string) (models.Tool, bool) {
	for _, tool := range s.tools {
		if tool.Name == name {
			return tool, true
		}
	}
	return models.Tool{}, false
}

func (s *toolService) notify(ctx context.Context, title, body string) {
	s.notifier.Notify(ctx, models.Notification{
		Title:    title,
		Body:     body,
		Severity: models.SeverityInfo,
		At:       s.clock.Now(),
	})
}
