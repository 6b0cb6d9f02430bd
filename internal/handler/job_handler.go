package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/constant"
	"cruise-booking-api/internal/dto"
	"cruise-booking-api/internal/model"
	"cruise-booking-api/internal/service"
	"cruise-booking-api/internal/utils"
)

type JobHandler struct {
	svc *service.JobService
}

func NewJobHandler(svc *service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsTypeError))
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// List serves the public job board: open jobs only.
func (h *JobHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	jobs, total, err := h.svc.List(c.Request.Context(), model.JobStatusOpen, c.Query("kw"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"items": jobs, "total": total}))
}

// AdminList allows filtering by any status.
func (h *JobHandler) AdminList(c *gin.Context) {
	page, pageSize := pageParams(c)
	jobs, total, err := h.svc.List(c.Request.Context(), c.Query("status"), c.Query("kw"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"items": jobs, "total": total}))
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	j, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	if j == nil {
		c.JSON(http.StatusNotFound, utils.Error(constant.CodeNotFound))
		return
	}
	c.JSON(http.StatusOK, utils.Success(j))
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsTypeError))
		return
	}
	j, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(j))
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsTypeError))
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		c.JSON(http.StatusInternalServerError, utils.CustomError(constant.CodeInternalError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

// Apply is the public application intake.
func (h *JobHandler) Apply(c *gin.Context) {
	var req dto.CreateApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsTypeError))
		return
	}
	a, err := h.svc.Apply(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(a))
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	page, pageSize := pageParams(c)
	jobID, _ := strconv.ParseUint(c.Query("job_id"), 10, 64)
	apps, total, err := h.svc.ListApplications(c.Request.Context(), jobID, c.Query("status"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"items": apps, "total": total}))
}

func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsTypeError))
		return
	}
	if err := h.svc.UpdateApplicationStatus(c.Request.Context(), id, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}

func (h *JobHandler) SaveJob(c *gin.Context) {
	var req dto.SaveJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ValidationErrorFields(err); fields != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeInvalidParams, fields))
			return
		}
		c.JSON(http.StatusBadRequest, utils.Error(constant.CodeParamsTypeError))
		return
	}
	sj, err := h.svc.SaveJob(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(sj))
}

func (h *JobHandler) ListSavedJobs(c *gin.Context) {
	profileID, err := strconv.ParseUint(c.Query("profile_id"), 10, 64)
	if err != nil || profileID == 0 {
		c.JSON(http.StatusBadRequest, utils.ErrorWithData(constant.CodeMissingParams,
			gin.H{"missing": []string{"profile_id"}}))
		return
	}
	items, err := h.svc.ListSavedJobs(c.Request.Context(), profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"items": items}))
}

func (h *JobHandler) UnsaveJob(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.UnsaveJob(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error(constant.CodeInternalError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(nil))
}
