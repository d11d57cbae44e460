package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"sadhana/internal/models/request_models"
	"sadhana/internal/services"
	"sadhana/pkg/utils"
)

type DevoteeController struct {
	devoteeService services.DevoteeServiceInterface
}

func NewDevoteeController(devoteeService services.DevoteeServiceInterface) *DevoteeController {
	return &DevoteeController{
		devoteeService: devoteeService,
	}
}

// ListVisible godoc
// @Summary List devotees visible to the caller
// @Description Admin sees all, counsellor their caseload, user their own profile. type=Name forces the own-profile lookup.
// @Tags Devotees
// @Produce json
// @Param userId query string true "Caller email, or ALL"
// @Param type query string false "Name for own-profile mode"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/devotees [get]
func (d *DevoteeController) ListVisible(c *gin.Context) {
	email := c.Query("userId")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	devotees, err := d.devoteeService.ListVisible(c.Request.Context(), email, c.Query("type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, devotees, "Devotees fetched successfully")
}

func (d *DevoteeController) Create(c *gin.Context) {
	var req request_models.DevoteeRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if path, ok := d.savePhoto(c); ok {
		req.Photo = path
	}

	devotee, err := d.devoteeService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": devotee.ID}, "Devotee created successfully")
}

func (d *DevoteeController) Update(c *gin.Context) {
	var req request_models.DevoteeRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// A freshly uploaded file wins over the photo form value; with neither,
	// the service keeps the stored photo.
	if path, ok := d.savePhoto(c); ok {
		req.Photo = path
	}

	updated, err := d.devoteeService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"updated": updated}, "")
}

func (d *DevoteeController) Delete(c *gin.Context) {
	deleted, err := d.devoteeService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": deleted}, "")
}

// BulkCreate godoc
// @Summary Batch-create devotees with paired accounts
// @Description Inserts all devotees and a default-password user account per row with an email, atomically
// @Tags Devotees
// @Accept json
// @Produce json
// @Param request body request_models.BulkDevoteesRequest true "Devotee batch"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/devotees/bulk [post]
func (d *DevoteeController) BulkCreate(c *gin.Context) {
	var req request_models.BulkDevoteesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid data format")
		return
	}

	count, err := d.devoteeService.BulkCreate(c.Request.Context(), req.Devotees)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"count": count}, "Bulk upload successful")
}

func (d *DevoteeController) ListFacilitators(c *gin.Context) {
	facilitators, err := d.devoteeService.ListFacilitators(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, facilitators, "Counsellors fetched successfully")
}

func (d *DevoteeController) Caseload(c *gin.Context) {
	email := c.Query("user_id")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing user_id (email)")
		return
	}

	caseload, err := d.devoteeService.Caseload(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, caseload, "Devotees fetched successfully")
}

func (d *DevoteeController) InitiatedName(c *gin.Context) {
	name, err := d.devoteeService.InitiatedName(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"initiated_name": name}, "")
}

// savePhoto stores an uploaded photo part under the uploads dir with a
// timestamped name and returns the relative path persisted on the record.
func (d *DevoteeController) savePhoto(c *gin.Context) (string, bool) {
	file, err := c.FormFile("photo")
	if err != nil {
		return "", false
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", false
	}

	return "/uploads/" + name, true
}
