package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/pokemon-arena/internal/constants"
	"github.com/ericogr/pokemon-arena/internal/game"
	"github.com/ericogr/pokemon-arena/internal/logging"
)

// statusFor maps an orchestrator error kind to its HTTP status.
func statusFor(kind game.ErrorKind) int {
	switch kind {
	case game.KindSessionNotFound:
		return http.StatusNotFound
	case game.KindInvalidAction:
		return http.StatusBadRequest
	case game.KindConflict, game.KindSessionTerminated:
		return http.StatusConflict
	case game.KindValidation:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"error": kind, "message": reason}. Errors
// outside the closed set are logged and reported as internal.
func writeError(c *gin.Context, err error) {
	var ge *game.Error
	if !errors.As(err, &ge) {
		logging.Error("request failed", err, logging.Fields{constants.LogFieldPath: c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}
	status := statusFor(ge.Kind)
	if status == http.StatusInternalServerError {
		logging.Error("battle engine fault", err, logging.Fields{constants.LogFieldBattleID: ge.SessionID})
		c.JSON(status, gin.H{constants.JSONKeyError: string(ge.Kind), constants.JSONKeyMessage: constants.ErrInternal})
		return
	}
	c.JSON(status, gin.H{constants.JSONKeyError: string(ge.Kind), constants.JSONKeyMessage: ge.Reason})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyMessage: msg})
}

// normalizeTimestamps recursively renames GORM timestamp keys from CamelCase
// (CreatedAt, UpdatedAt, DeletedAt) to snake_case keys so clients
// consistently receive snake_case timestamps.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		for from, to := range map[string]string{"ID": "id", "CreatedAt": "created_at", "UpdatedAt": "updated_at", "DeletedAt": "deleted_at"} {
			if val, ok := vv[from]; ok {
				vv[to] = val
				delete(vv, from)
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeTimestamps marshals v into JSON, decodes it back into
// generic values and normalizes the gorm model keys to snake_case.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}
