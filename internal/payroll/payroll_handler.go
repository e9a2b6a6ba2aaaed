package payroll

import (
	"net/http"

	"github.com/KinzixInfotech/edutemp-sub017/internal/middleware"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	// asyncByDefault queues computations when the request does not say.
	asyncByDefault bool
}

func NewHandler(service Service, asyncByDefault ...bool) *Handler {
	h := &Handler{service: service}
	if len(asyncByDefault) > 0 {
		h.asyncByDefault = asyncByDefault[0]
	}
	return h
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString(middleware.CtxEmployeeID)
	if actorID == "" {
		actorID = c.GetString(middleware.CtxUserID)
	}
	return actorID
}

func (h *Handler) CreatePeriod(c *gin.Context) {
	var req CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, created, err := h.service.CreateOrGetPeriod(c.Request.Context(), c.GetString(middleware.CtxSchoolID), getActorID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) ListPeriods(c *gin.Context) {
	var filter PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BindError(c, err)
		return
	}
	filter.Normalize()

	resp, total, err := h.service.ListPeriods(c.Request.Context(), c.GetString(middleware.CtxSchoolID), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, filter.Page, filter.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetPeriod(c *gin.Context) {
	resp, err := h.service.GetPeriod(c.Request.Context(), c.GetString(middleware.CtxSchoolID), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Compute(c *gin.Context) {
	opts := ComputeOptions{Async: h.asyncByDefault}
	if err := c.ShouldBindQuery(&opts); err != nil {
		response.BindError(c, err)
		return
	}

	ctx := c.Request.Context()
	schoolID := c.GetString(middleware.CtxSchoolID)

	if opts.Async {
		resp, err := h.service.RequestCompute(ctx, schoolID, c.Param("id"), getActorID(c))
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusAccepted, resp, nil)
		return
	}

	resp, err := h.service.ComputePeriod(ctx, schoolID, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	resp, err := h.service.Submit(c.Request.Context(), c.GetString(middleware.CtxSchoolID), c.Param("id"), getActorID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.GetString(middleware.CtxSchoolID), c.Param("id"), getActorID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), c.GetString(middleware.CtxSchoolID), c.Param("id"), getActorID(c), req.Remarks)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	resp, err := h.service.MarkPaid(c.Request.Context(), c.GetString(middleware.CtxSchoolID), c.Param("id"), getActorID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListItems(c *gin.Context) {
	resp, err := h.service.ListItems(c.Request.Context(), c.GetString(middleware.CtxSchoolID), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAuditLogs(c *gin.Context) {
	resp, err := h.service.ListAuditLogs(c.Request.Context(), c.GetString(middleware.CtxSchoolID), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPayslip(c *gin.Context) {
	resp, err := h.service.GetPayslip(c.Request.Context(), c.GetString(middleware.CtxSchoolID), c.Param("id"), c.Param("employee_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
