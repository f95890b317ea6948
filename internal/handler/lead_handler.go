package handler

import (
	"storefront-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LeadHandler struct {
	service service.LeadService
}

func NewLeadHandler(s service.LeadService) *LeadHandler {
	return &LeadHandler{service: s}
}

// SubmitLead
// POST /leads
func (h *LeadHandler) SubmitLead(c *fiber.Ctx) error {
	var req service.SubmitLeadRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidJSON(c)
		}
	}

	lead, err := h.service.SubmitLead(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "id": lead.ID})
}

// GetLeads
// GET /leads
func (h *LeadHandler) GetLeads(c *fiber.Ctx) error {
	leads, err := h.service.ListLeads(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(leads)
}
