package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryStr(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}

func queryInt(c *gin.Context, name string) *int {
	if v, ok := c.GetQuery(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func queryFloat(c *gin.Context, name string) *float64 {
	if v, ok := c.GetQuery(name); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}

func queryIntDefault(c *gin.Context, name string, fallback int) int {
	if p := queryInt(c, name); p != nil {
		return *p
	}
	return fallback
}
