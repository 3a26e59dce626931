package utils

import (
	"errors"
	"strconv"

	"github.com/beyazservis/servis-go/types"
	"github.com/gin-gonic/gin"
)

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id64, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return uint(id64), nil
}

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}

	return claims, nil
}
