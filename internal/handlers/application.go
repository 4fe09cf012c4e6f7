package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirehub-dev/hirehub/internal/models"
	"github.com/hirehub-dev/hirehub/internal/store"
	"github.com/hirehub-dev/hirehub/internal/types"
	"github.com/hirehub-dev/hirehub/internal/utils"
)

type ApplicationHandler struct {
	listings     store.JobListingRepository
	employees    store.EmployeeRepository
	applications store.JobApplicationRepository
	statuses     store.ApplicationStatusRepository
}

func NewApplicationHandler(
	listings store.JobListingRepository,
	employees store.EmployeeRepository,
	applications store.JobApplicationRepository,
	statuses store.ApplicationStatusRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		listings:     listings,
		employees:    employees,
		applications: applications,
		statuses:     statuses,
	}
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

// Apply submits an application for the calling employee. At most one
// application exists per (listing, employee) pair; a repeat call is a 400.
func (h *ApplicationHandler) Apply(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	listingID, err := strconv.ParseUint(ctx.Param("listing_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	listing, err := h.listings.GetByID(uint(listingID))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job listing does not exist"})
		} else {
			log.Printf("Failed to fetch job listing: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job listing"})
		}
		return
	}

	employee, err := h.employees.GetByUserID(userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee does not exist"})
		} else {
			log.Printf("Failed to fetch employee: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		}
		return
	}

	applied, err := h.statuses.GetByCode(models.StatusApplied)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Application status does not exist"})
		} else {
			log.Printf("Failed to fetch application status: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application status"})
		}
		return
	}

	application, created, err := h.applications.GetOrCreate(listing.ID, employee.ID, applied.ID)

	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Job application already exists for this job listing"})
			return
		}
		log.Printf("Failed to create job application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job application"})
		return
	}

	if !created {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Job application already exists for this job listing"})
		return
	}

	application, err = h.applications.GetByID(application.ID)

	if err != nil {
		log.Printf("Failed to fetch job application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job application"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewJobApplicationResponse(*application))
}

// ListForListing returns the applications for a listing, hiding those already
// rejected.
func (h *ApplicationHandler) ListForListing(ctx *gin.Context) {
	listingID, err := strconv.ParseUint(ctx.Param("listing_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	listing, err := h.listings.GetByID(uint(listingID))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job listing does not exist"})
		} else {
			log.Printf("Failed to fetch job listing: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job listing"})
		}
		return
	}

	applications, err := h.applications.ListByListing(listing.ID, models.StatusRejected)

	if err != nil {
		log.Printf("Failed to list job applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job applications"})
		return
	}

	ctx.JSON(http.StatusOK, applicationResponses(applications))
}

// ListMine returns every application submitted by the calling employee.
func (h *ApplicationHandler) ListMine(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	employee, err := h.employees.GetByUserID(userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee does not exist"})
		} else {
			log.Printf("Failed to fetch employee: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		}
		return
	}

	applications, err := h.applications.ListByEmployee(employee.ID)

	if err != nil {
		log.Printf("Failed to list job applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job applications"})
		return
	}

	ctx.JSON(http.StatusOK, applicationResponses(applications))
}

// UpdateStatus sets an application's status. Only the employer owning the
// application's listing may call it; the status must be one of the four
// enumerated codes.
func (h *ApplicationHandler) UpdateStatus(ctx *gin.Context) {
	employer, err := utils.GetCurrentEmployer(ctx)

	if err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Employer account required"})
		return
	}

	applicationID, err := strconv.ParseUint(ctx.Param("application_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	application, err := h.applications.GetByID(uint(applicationID))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job application does not exist"})
		} else {
			log.Printf("Failed to fetch job application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job application"})
		}
		return
	}

	if application.JobListing.EmployerID != employer.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to update this application"})
		return
	}

	var req UpdateApplicationStatusRequest

	if err := ctx.BindJSON(&req); err != nil || req.Status == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Status field is required in the request data"})
		return
	}

	if !models.IsValidStatusCode(req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value '" + req.Status + "'"})
		return
	}

	status, err := h.statuses.GetByCode(req.Status)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value '" + req.Status + "'"})
		} else {
			log.Printf("Failed to fetch application status: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application status"})
		}
		return
	}

	if err := h.applications.SetStatus(application, status.ID); err != nil {
		log.Printf("Failed to update application status: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewJobApplicationResponse(*application))
}

// Withdraw deletes an application; only the applicant may withdraw it.
func (h *ApplicationHandler) Withdraw(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	applicationID, err := strconv.ParseUint(ctx.Param("application_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	application, err := h.applications.GetByID(uint(applicationID))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job application does not exist"})
		} else {
			log.Printf("Failed to fetch job application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job application"})
		}
		return
	}

	if application.Employee.UserID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to withdraw this application"})
		return
	}

	if err := h.applications.Delete(application); err != nil {
		log.Printf("Failed to delete job application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job application"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func applicationResponses(applications []models.JobApplication) []types.JobApplicationResponse {
	responses := make([]types.JobApplicationResponse, 0, len(applications))

	for _, application := range applications {
		responses = append(responses, types.NewJobApplicationResponse(application))
	}

	return responses
}
