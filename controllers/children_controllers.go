package controllers

import (
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yultimate/dto"
	"yultimate/errors"
	"yultimate/middleware"
	"yultimate/response"
	"yultimate/services"
	"yultimate/validator"
)

type ChildController struct {
	children *services.ChildService
	imports  *services.ImportService
	maxBytes int64
}

func NewChildController(children *services.ChildService, imports *services.ImportService, maxBytes int64) ChildController {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return ChildController{children: children, imports: imports, maxBytes: maxBytes}
}

// GetChildren godoc
// @Summary   List children, optionally fuzzy-matched by name
// @Tags      children
// @Produce   json
// @Security  BearerAuth
// @Param     q  query  string  false  "name search"
// @Success   200  {array}  models.Child
// @Router    /api/children [get]
func (ctrl ChildController) GetChildren(c *gin.Context) {
	ctx := c.Request.Context()
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		children, err := ctrl.children.Search(ctx, q)
		if err != nil {
			response.FromError(c, err, "Failed to fetch children")
			return
		}
		response.Success(c, children)
		return
	}

	children, err := ctrl.children.List(ctx)
	if err != nil {
		response.FromError(c, err, "Failed to fetch children")
		return
	}
	response.Success(c, children)
}

// CreateChild godoc
// @Summary   Create a child
// @Tags      children
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      dto.CreateChildRequest  true  "child"
// @Success   201   {object}  models.Child
// @Failure   400   {object}  response.ErrorBody
// @Router    /api/children [post]
func (ctrl ChildController) CreateChild(c *gin.Context) {
	var req dto.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, validator.BindingError(err), "Failed to create child")
		return
	}

	child, err := ctrl.children.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, "Failed to create child")
		return
	}
	response.Created(c, child)
}

// ImportChildren godoc
// @Summary   Import children from a CSV file
// @Tags      children
// @Accept    multipart/form-data
// @Produce   json
// @Security  BearerAuth
// @Param     file  formData  file  true  "CSV with firstName,lastName,dateOfBirth,siteId"
// @Success   200   {object}  dto.ImportResult
// @Failure   400   {object}  response.ErrorBody
// @Router    /api/children/import [post]
func (ctrl ChildController) ImportChildren(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctrl.maxBytes+(1<<20))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			response.BadRequest(c, "CSV file is too large")
			return
		}
		response.BadRequest(c, "CSV file is required")
		return
	}
	if fileHeader.Size > ctrl.maxBytes {
		response.BadRequest(c, "CSV file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.FromError(c, errors.InvalidFormat("Unreadable upload", err), "Import failed")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, ctrl.maxBytes+1))
	if err != nil {
		response.FromError(c, errors.InvalidFormat("Unreadable upload", err), "Import failed")
		return
	}
	if int64(len(data)) > ctrl.maxBytes {
		response.BadRequest(c, "CSV file is too large")
		return
	}

	identity, _ := middleware.CurrentIdentity(c)
	result, err := ctrl.imports.Run(c.Request.Context(), fileHeader.Filename, data, identity.UserID)
	if err != nil {
		response.FromError(c, err, "Import failed")
		return
	}
	response.Success(c, result)
}

// GetImports godoc
// @Summary   List CSV import runs
// @Tags      children
// @Produce   json
// @Security  BearerAuth
// @Param     page   query  int  false  "page"
// @Param     limit  query  int  false  "page size"
// @Success   200  {object}  response.Paginated
// @Router    /api/children/imports [get]
func (ctrl ChildController) GetImports(c *gin.Context) {
	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid pagination")
		return
	}
	page.Normalize()

	logs, total, err := ctrl.imports.History(c.Request.Context(), page)
	if err != nil {
		response.FromError(c, err, "Failed to fetch imports")
		return
	}
	response.SuccessWithPagination(c, logs, page.Page, page.Limit, total)
}
