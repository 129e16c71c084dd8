package assistant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/doctor/server/internal/assistant"
	apierrors "codeberg.org/doctor/server/internal/errors"
	"codeberg.org/doctor/server/internal/logger"
	"codeberg.org/doctor/server/internal/prompt"
	"codeberg.org/doctor/server/internal/sessions"
)

// GenerateHandler godoc
// @Summary Run a generation action
// @Description Builds the prompt for the action, calls the model and returns the rendered result.
// @Description Blank code skips the action. A failed model call is returned as result text starting with "Error: ".
// @Tags assistant
// @Accept json
// @Produce json
// @Param action path string true "docs, dependencies or hardcoding"
// @Param request body GenerateRequest true "Generation request"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/assistant/{action} [post]
func GenerateHandler(assist *assistant.Assistant, sessionMgr *sessions.Manager, modelName string, action prompt.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		depth, err := prompt.ParseDepth(req.Depth)
		if err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		session, created := sessionMgr.Resolve(req.SessionID)
		if created && req.SessionID != "" {
			logger.Debug("replaced unknown session", "requested", req.SessionID, "session_id", session.ID)
		}

		out, err := assist.Run(c.Request.Context(), session, assistant.Request{
			Action:   action,
			Language: prompt.Language(req.Language),
			Depth:    depth,
			Code:     req.Code,
		})
		if err != nil {
			if errors.Is(err, assistant.ErrLanguageRequired) || errors.Is(err, prompt.ErrUnknownLanguage) {
				apierrors.ValidationError(c, err)
				return
			}

			apierrors.InternalError(c, "failed to run action", err)
			return
		}

		resp := GenerateResponse{
			SessionID: session.ID,
			Skipped:   out == nil,
			Result:    out,
			Model:     modelName,
		}

		if out != nil {
			if out.Failed {
				logger.Warn("model call failed",
					"action", action,
					"session_id", session.ID,
					"model", modelName,
					"error", out.Err,
				)
			}

			if out.Download != nil {
				resp.Downloads = []assistant.Download{*out.Download}
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// DocumentationHandler godoc
// @Summary Download the latest documentation
// @Description Returns documentation.md for the session when documentation was generated, otherwise an empty result.
// @Tags assistant
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} GenerateResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/assistant/documentation [get]
func DocumentationHandler(assist *assistant.Assistant, sessionMgr *sessions.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessionMgr.Get(c.Query("session_id"))
		if err != nil {
			apierrors.SessionNotFound(c)
			return
		}

		out, err := assist.Run(c.Request.Context(), session, assistant.Request{Action: prompt.DownloadDocs})
		if err != nil {
			apierrors.InternalError(c, "failed to load documentation", err)
			return
		}

		resp := GenerateResponse{
			SessionID: session.ID,
			Skipped:   out == nil,
			Result:    out,
		}

		if out != nil && out.Download != nil {
			resp.Downloads = []assistant.Download{*out.Download}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// OptionsHandler godoc
// @Summary List input options
// @Tags assistant
// @Produce json
// @Success 200 {object} OptionsResponse
// @Router /api/v1/options [get]
func OptionsHandler(labels assistant.Labels) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := OptionsResponse{
			DefaultDepth: string(prompt.DefaultDepth),
			Instructions: labels.Instructions,
		}

		for _, l := range prompt.Languages() {
			resp.Languages = append(resp.Languages, string(l))
		}

		for _, d := range prompt.Depths() {
			resp.Depths = append(resp.Depths, string(d))
		}

		c.JSON(http.StatusOK, resp)
	}
}
