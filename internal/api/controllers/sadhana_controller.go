package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"sadhana/internal/models/request_models"
	"sadhana/internal/services"
	"sadhana/pkg/utils"
)

type SadhanaController struct {
	sadhanaService services.SadhanaServiceInterface
}

func NewSadhanaController(sadhanaService services.SadhanaServiceInterface) *SadhanaController {
	return &SadhanaController{
		sadhanaService: sadhanaService,
	}
}

func (s *SadhanaController) Add(c *gin.Context) {
	var req request_models.SadhanaEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.sadhanaService.Add(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Sadhana entry added successfully")
}

func (s *SadhanaController) Entries(c *gin.Context) {
	entries, err := s.sadhanaService.Entries(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Entries fetched successfully")
}

func (s *SadhanaController) Update(c *gin.Context) {
	var req request_models.SadhanaEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.sadhanaService.Update(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Sadhana entry updated successfully")
}

func (s *SadhanaController) Delete(c *gin.Context) {
	var req request_models.SadhanaDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.sadhanaService.Delete(c.Request.Context(), req.Email, req.EntryDate); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Sadhana entry deleted successfully")
}

// ByMonth godoc
// @Summary Paginated monthly practice entries
// @Description Fixed page size of 10, newest entry first
// @Tags Sadhana
// @Produce json
// @Param id query string true "Devotee id"
// @Param year query string true "Year (YYYY)"
// @Param month query string true "Month (1-12)"
// @Param page query int false "Page, default 1"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/sadhana/by-email [get]
func (s *SadhanaController) ByMonth(c *gin.Context) {
	id := c.Query("id")
	year := c.Query("year")
	month := c.Query("month")
	if id == "" || year == "" || month == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing id, month, or year")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
		return
	}

	result, err := s.sadhanaService.ByMonth(c.Request.Context(), id, year, month, page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Entries fetched successfully")
}

func (s *SadhanaController) ByDate(c *gin.Context) {
	entries, err := s.sadhanaService.ByDate(c.Request.Context(), c.Param("id"), c.Param("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Entries fetched successfully")
}
