package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"yultimate/errors"
)

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Validation("Invalid " + name)
	}
	return uint(id), nil
}
