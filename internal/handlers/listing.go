package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hirehub-dev/hirehub/internal/models"
	"github.com/hirehub-dev/hirehub/internal/store"
	"github.com/hirehub-dev/hirehub/internal/types"
	"github.com/hirehub-dev/hirehub/internal/utils"
)

type ListingHandler struct {
	listings store.JobListingRepository
}

func NewListingHandler(listings store.JobListingRepository) *ListingHandler {
	return &ListingHandler{listings: listings}
}

type CreateJobListingRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Location    string          `json:"location" binding:"required"`
	Salary      decimal.Decimal `json:"salary" binding:"required"`
}

type UpdateJobListingRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Location    *string          `json:"location"`
	Salary      *decimal.Decimal `json:"salary"`
}

// Browse lists every listing, optionally narrowed by equality filters on
// title, location, company and salary. Open to anonymous callers.
func (h *ListingHandler) Browse(ctx *gin.Context) {
	var filters store.ListingFilters

	filters.Title = ctx.Query("title")
	filters.Location = ctx.Query("location")

	if company := ctx.Query("company"); company != "" {
		companyID, err := strconv.ParseUint(company, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company filter"})
			return
		}
		id := uint(companyID)
		filters.EmployerID = &id
	}

	if salary := ctx.Query("salary"); salary != "" {
		amount, err := decimal.NewFromString(salary)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid salary filter"})
			return
		}
		filters.Salary = &amount
	}

	listings, err := h.listings.Filter(filters)

	if err != nil {
		log.Printf("Failed to filter job listings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job listings"})
		return
	}

	ctx.JSON(http.StatusOK, listingResponses(listings))
}

// ListOwn returns the listings owned by the calling employer.
func (h *ListingHandler) ListOwn(ctx *gin.Context) {
	employer, err := utils.GetCurrentEmployer(ctx)

	if err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Employer account required"})
		return
	}

	listings, err := h.listings.ListByEmployer(employer.ID)

	if err != nil {
		log.Printf("Failed to list job listings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job listings"})
		return
	}

	ctx.JSON(http.StatusOK, listingResponses(listings))
}

// Create posts a new listing. Ownership is force-set to the calling employer,
// overriding anything the client supplies.
func (h *ListingHandler) Create(ctx *gin.Context) {
	employer, err := utils.GetCurrentEmployer(ctx)

	if err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Employer account required"})
		return
	}

	var req CreateJobListingRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing := models.JobListing{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		EmployerID:  employer.ID,
	}

	if err := h.listings.Create(&listing); err != nil {
		log.Printf("Failed to create job listing: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job listing"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewJobListingResponse(listing))
}

// Update partially edits a listing; only its owning employer may call it.
func (h *ListingHandler) Update(ctx *gin.Context) {
	employer, err := utils.GetCurrentEmployer(ctx)

	if err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Employer account required"})
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

	if listing.EmployerID != employer.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to update this job listing"})
		return
	}

	var req UpdateJobListingRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := h.listings.Update(listing, updates); err != nil {
		log.Printf("Failed to update job listing: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job listing"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewJobListingResponse(*listing))
}

func listingResponses(listings []models.JobListing) []types.JobListingResponse {
	responses := make([]types.JobListingResponse, 0, len(listings))

	for _, listing := range listings {
		responses = append(responses, types.NewJobListingResponse(listing))
	}

	return responses
}
