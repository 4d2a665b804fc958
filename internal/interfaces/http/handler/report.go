package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	reportapp "github.com/koperasi/backend/internal/application/report"
	"github.com/koperasi/backend/internal/domain/report"
)

// ReportHandler exposes the financial report lifecycle over HTTP
type ReportHandler struct {
	BaseHandler
	service *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// identity extracts the authenticated cooperative and actor, replying 401 on
// failure. The bool result tells the caller whether to continue.
func (h *ReportHandler) identity(c *gin.Context) (cooperativeID, actorID uuid.UUID, ok bool) {
	cooperativeID, err := getCooperativeID(c)
	if err != nil || cooperativeID == uuid.Nil {
		h.Unauthorized(c, "Invalid cooperative")
		return uuid.Nil, uuid.Nil, false
	}
	actorID, err = getActorID(c)
	if err != nil || actorID == uuid.Nil {
		h.Unauthorized(c, "Invalid user")
		return uuid.Nil, uuid.Nil, false
	}
	return cooperativeID, actorID, true
}

func (h *ReportHandler) reportID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid report ID")
		return uuid.Nil, false
	}
	return id, true
}

// ValidateReport runs the consistency validators against a report payload
// without persisting anything
func (h *ReportHandler) ValidateReport(c *gin.Context) {
	cooperativeID, _, ok := h.identity(c)
	if !ok {
		return
	}

	var input report.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Validate(c.Request.Context(), cooperativeID, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// CreateReport creates a new draft report from a validated payload
func (h *ReportHandler) CreateReport(c *gin.Context) {
	cooperativeID, actorID, ok := h.identity(c)
	if !ok {
		return
	}

	var input report.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateReport(c.Request.Context(), cooperativeID, actorID, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetReport returns a single report with its line items
func (h *ReportHandler) GetReport(c *gin.Context) {
	cooperativeID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.reportID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetReport(c.Request.Context(), cooperativeID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListReports returns a paginated list of report summaries
func (h *ReportHandler) ListReports(c *gin.Context) {
	cooperativeID, _, ok := h.identity(c)
	if !ok {
		return
	}

	var filter reportapp.ReportListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.ListReports(c.Request.Context(), cooperativeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// UpdateReport replaces the payload of a draft report
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	cooperativeID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.reportID(c)
	if !ok {
		return
	}

	var input report.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateReport(c.Request.Context(), cooperativeID, id, input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteReport removes a draft report
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	cooperativeID, _, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.reportID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteReport(c.Request.Context(), cooperativeID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// SubmitReport moves a draft report into review
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	cooperativeID, actorID, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.reportID(c)
	if !ok {
		return
	}

	resp, err := h.service.SubmitReport(c.Request.Context(), cooperativeID, id, actorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// ApproveReport approves a submitted report
func (h *ReportHandler) ApproveReport(c *gin.Context) {
	cooperativeID, actorID, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.reportID(c)
	if !ok {
		return
	}

	resp, err := h.service.ApproveReport(c.Request.Context(), cooperativeID, id, actorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// RejectReport rejects a submitted report with a mandatory reason
func (h *ReportHandler) RejectReport(c *gin.Context) {
	cooperativeID, actorID, ok := h.identity(c)
	if !ok {
		return
	}
	id, ok := h.reportID(c)
	if !ok {
		return
	}

	var req reportapp.RejectReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.RejectReport(c.Request.Context(), cooperativeID, id, actorID, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
