package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"user-discovery-service/internal/discovery"
	"user-discovery-service/internal/logging"
	"user-discovery-service/internal/middleware"
)

const (
	defaultDiscoverLimit    = 20
	defaultSuggestionsLimit = 5
	defaultFriendsLimit     = 100
	defaultOthersLimit      = 100
)

// DiscoverHandler forwards discovery requests to the discovery Service and
// returns its payload unmodified. Failures are handed to the error middleware.
type DiscoverHandler struct {
	Service discovery.Service
	Logger  logging.Logger
}

func (h *DiscoverHandler) Discover(c *gin.Context) {
	userID := c.Param("userId")

	limit, err := queryInt(c, "limit", defaultDiscoverLimit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		_ = c.Error(err)
		return
	}
	suggestionsOnly, err := queryBool(c, "suggestionsOnly", false)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Logger.Info("discover users request", requestFields(c, map[string]any{
		"userId":          userID,
		"limit":           limit,
		"offset":          offset,
		"suggestionsOnly": suggestionsOnly,
	}))

	resp, err := h.Service.DiscoverUsers(c.Request.Context(), userID, limit, offset, suggestionsOnly)
	if err != nil {
		_ = c.Error(err)
		return
	}
	writeRaw(c, []byte(resp))
}

// Suggestions is Discover with offset 0 and suggestionsOnly forced on.
func (h *DiscoverHandler) Suggestions(c *gin.Context) {
	userID := c.Param("userId")

	limit, err := queryInt(c, "limit", defaultSuggestionsLimit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Logger.Info("get suggested users request", requestFields(c, map[string]any{
		"userId": userID,
		"limit":  limit,
	}))

	resp, err := h.Service.DiscoverUsers(c.Request.Context(), userID, limit, 0, true)
	if err != nil {
		_ = c.Error(err)
		return
	}
	writeRaw(c, []byte(resp))
}

func (h *DiscoverHandler) AllUserData(c *gin.Context) {
	userID := c.Param("userId")

	friendsLimit, err := queryInt(c, "friendsLimit", defaultFriendsLimit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	othersLimit, err := queryInt(c, "othersLimit", defaultOthersLimit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Logger.Info("get all user data request", requestFields(c, map[string]any{
		"userId":       userID,
		"friendsLimit": friendsLimit,
		"othersLimit":  othersLimit,
	}))

	resp, err := h.Service.GetAllUserData(c.Request.Context(), userID, friendsLimit, othersLimit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	writeRaw(c, []byte(resp))
}

// requestFields adds the request id and, when auth is enabled, the
// authenticated caller to fields.
func requestFields(c *gin.Context, fields map[string]any) map[string]any {
	fields[logging.FieldRequestID] = middleware.RequestIDFromContext(c)
	if callerID, ok := middleware.UserIDFromContext(c); ok {
		fields["callerId"] = callerID
	}
	return fields
}

func writeRaw(c *gin.Context, body []byte) {
	if len(body) == 0 {
		body = []byte("null")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
