package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParamError reports a query parameter that could not be coerced to its type.
type ParamError struct {
	Name  string
	Value string
	Type  string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s parameter %q: expected %s", e.Name, e.Value, e.Type)
}

func (e *ParamError) HTTPStatus() int { return http.StatusBadRequest }

// queryInt and queryBool trim the raw value and return def when it is
// absent or blank. Integers are limited to 32 bits.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	value := strings.TrimSpace(raw)
	if value == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, &ParamError{Name: name, Value: raw, Type: "integer"}
	}
	return int(v), nil
}

func queryBool(c *gin.Context, name string, def bool) (bool, error) {
	raw := c.Query(name)
	value := strings.TrimSpace(raw)
	if value == "" {
		return def, nil
	}
	v, ok := parseBool(value)
	if !ok {
		return false, &ParamError{Name: name, Value: raw, Type: "boolean"}
	}
	return v, nil
}

// parseBool accepts true/on/yes/1 and false/off/no/0 in any case.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "on", "yes", "1":
		return true, true
	case "false", "off", "no", "0":
		return false, true
	}
	return false, false
}
