package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Theijiii/plms-sys-sub005/internal/middleware"
	"github.com/Theijiii/plms-sys-sub005/internal/service"
	"github.com/Theijiii/plms-sys-sub005/internal/verify"
)

// VerificationHandler handles identity verification endpoints.
type VerificationHandler struct {
	verifications service.VerificationService
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(verifications service.VerificationService) *VerificationHandler {
	return &VerificationHandler{verifications: verifications}
}

// Submit handles POST /api/v1/verifications. The request is multipart: the
// declared identity fields plus the document image under "file".
func (h *VerificationHandler) Submit(c *gin.Context) {
	applicantID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	declared := verify.DeclaredIdentity{
		FirstName:  c.PostForm("first_name"),
		LastName:   c.PostForm("last_name"),
		MiddleName: c.PostForm("middle_name"),
		IDNumber:   c.PostForm("id_number"),
		IDType:     c.PostForm("id_type"),
	}
	if birthdateStr := c.PostForm("birthdate"); birthdateStr != "" {
		birthdate, parseErr := time.Parse("2006-01-02", birthdateStr)
		if parseErr != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_BIRTHDATE", "birthdate must be YYYY-MM-DD")
			return
		}
		declared.Birthdate = &birthdate
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	out, err := h.verifications.Submit(c.Request.Context(), service.SubmitInput{
		ApplicantID:    applicantID,
		ApplicantEmail: middleware.GetEmail(c),
		ApplicantName:  middleware.GetName(c),
		Declared:       declared,
		File: service.FileUploadInput{
			UploadedBy: applicantID,
			File:       file,
			Header:     header,
		},
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{
		"attempt_id": out.Attempt.ID,
		"file_id":    out.Attempt.FileID,
		"valid":      out.Valid,
		"reasons":    out.Reasons,
		"report":     out.Report,
	})
}

// Get handles GET /api/v1/verifications/:id
func (h *VerificationHandler) Get(c *gin.Context) {
	callerID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	attemptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid attempt ID")
		return
	}

	attempt, err := h.verifications.GetByID(c.Request.Context(), callerID, middleware.GetRole(c), attemptID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, attempt)
}

// ListMine handles GET /api/v1/verifications (the caller's own attempts).
func (h *VerificationHandler) ListMine(c *gin.Context) {
	applicantID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	offset, limit := parsePagination(c)
	attempts, total, err := h.verifications.ListByApplicant(c.Request.Context(), applicantID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, attempts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListAll handles GET /api/v1/verifications/all (staff only).
func (h *VerificationHandler) ListAll(c *gin.Context) {
	offset, limit := parsePagination(c)
	attempts, total, err := h.verifications.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, attempts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportCSV handles GET /api/v1/verifications/export (staff only).
func (h *VerificationHandler) ExportCSV(c *gin.Context) {
	filename := fmt.Sprintf("verification-attempts-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.verifications.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers and partial rows may already be written; log and abort.
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] CSV export failed: %v", requestID, err)
		c.Abort()
	}
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return offset, limit
}
