package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hirehub-dev/hirehub/internal/middleware"
	"github.com/hirehub-dev/hirehub/internal/models"
	"github.com/hirehub-dev/hirehub/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	user, ok := value.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return user, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// GetCurrentEmployer returns the Employer record stashed by RequireEmployer.
func GetCurrentEmployer(ctx *gin.Context) (models.Employer, error) {
	value, exists := ctx.Get(types.ContextEmployerKey)

	if !exists {
		return models.Employer{}, fmt.Errorf("Employer not in context")
	}

	employer, ok := value.(models.Employer)

	if !ok {
		return models.Employer{}, fmt.Errorf("Invalid employer type in context")
	}

	return employer, nil
}
