package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirehub-dev/hirehub/internal/models"
	"github.com/hirehub-dev/hirehub/internal/store"
	"github.com/hirehub-dev/hirehub/internal/types"
	"github.com/hirehub-dev/hirehub/internal/utils"
)

type ProfileHandler struct {
	employees store.EmployeeRepository
	employers store.EmployerRepository
}

func NewProfileHandler(employees store.EmployeeRepository, employers store.EmployerRepository) *ProfileHandler {
	return &ProfileHandler{employees: employees, employers: employers}
}

type CreateEmployeeProfileRequest struct {
	Name              string `json:"name" binding:"required"`
	YearsOfExperience *int   `json:"years_of_experience" binding:"required,gte=0"`
	University        string `json:"university"`
	Degree            string `json:"degree"`
	Resume            string `json:"resume"`
	Email             string `json:"email" binding:"required,email"`
}

type UpdateEmployeeProfileRequest struct {
	Name              *string `json:"name"`
	YearsOfExperience *int    `json:"years_of_experience" binding:"omitempty,gte=0"`
	University        *string `json:"university"`
	Degree            *string `json:"degree"`
	Resume            *string `json:"resume"`
	Email             *string `json:"email" binding:"omitempty,email"`
}

type CreateEmployerProfileRequest struct {
	CompanyName        string `json:"company_name" binding:"required"`
	CompanyDescription string `json:"company_description"`
	Email              string `json:"email" binding:"required,email"`
}

type UpdateEmployerProfileRequest struct {
	CompanyName        *string `json:"company_name"`
	CompanyDescription *string `json:"company_description"`
	Email              *string `json:"email" binding:"omitempty,email"`
}

// CreateEmployeeProfile creates the caller's employee profile. The owning user
// is taken from the token, never from the body.
func (h *ProfileHandler) CreateEmployeeProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateEmployeeProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.employees.GetByUserID(userID); err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Employee profile already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Failed to check existing employee profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	employee := models.Employee{
		UserID:            userID,
		Name:              req.Name,
		YearsOfExperience: *req.YearsOfExperience,
		University:        req.University,
		Degree:            req.Degree,
		Resume:            req.Resume,
		Email:             req.Email,
	}

	if err := h.employees.Create(&employee); err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Employee profile already exists"})
			return
		}
		log.Printf("Failed to create employee profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewEmployeeResponse(employee))
}

// UpdateEmployeeProfile partially updates the caller's existing profile;
// absent fields are left unchanged.
func (h *ProfileHandler) UpdateEmployeeProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	employee, err := h.employees.GetByUserID(userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee profile does not exist"})
		} else {
			log.Printf("Failed to fetch employee profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var req UpdateEmployeeProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.YearsOfExperience != nil {
		updates["years_of_experience"] = *req.YearsOfExperience
	}

	if req.University != nil {
		updates["university"] = *req.University
	}

	if req.Degree != nil {
		updates["degree"] = *req.Degree
	}

	if req.Resume != nil {
		updates["resume"] = *req.Resume
	}

	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := h.employees.Update(employee, updates); err != nil {
		log.Printf("Failed to update employee profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewEmployeeResponse(*employee))
}

func (h *ProfileHandler) CreateEmployerProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateEmployerProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.employers.GetByUserID(userID); err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Employer profile already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Failed to check existing employer profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	employer := models.Employer{
		UserID:             userID,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Email:              req.Email,
	}

	if err := h.employers.Create(&employer); err != nil {
		if errors.Is(err, store.ErrConflict) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Employer profile already exists"})
			return
		}
		log.Printf("Failed to create employer profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewEmployerResponse(employer))
}

func (h *ProfileHandler) UpdateEmployerProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	employer, err := h.employers.GetByUserID(userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Employer profile does not exist"})
		} else {
			log.Printf("Failed to fetch employer profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var req UpdateEmployerProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})

	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}

	if req.CompanyDescription != nil {
		updates["company_description"] = *req.CompanyDescription
	}

	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := h.employers.Update(employer, updates); err != nil {
		log.Printf("Failed to update employer profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewEmployerResponse(*employer))
}
