package http

import (
	"github.com/gin-gonic/gin"

	"delete-on-check/pkg/response"
)

// List godoc
// @Summary     List documents
// @Description Returns every document in the vault, the open buffers and the active document.
// @Tags        Documents
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Content godoc
// @Summary     Get document content
// @Description Returns the open buffer for path, or the file on disk when no buffer is open. Without path the active document is returned.
// @Tags        Documents
// @Produce     json
// @Param       path query string false "Vault-relative document path"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/content [GET]
func (h *handler) Content(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processContentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Content(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Content: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Open godoc
// @Summary     Open a document
// @Description Loads a document from the vault into a buffer.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body pathReq true "Document path"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/open [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPathReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Open(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Open: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Activate godoc
// @Summary     Activate a document
// @Description Makes a document the active one, opening it first if needed.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body pathReq true "Document path"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/activate [POST]
func (h *handler) Activate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPathReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Activate(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Activate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Close godoc
// @Summary     Close a document
// @Description Drops the buffer without saving it.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body pathReq true "Document path"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/documents/close [POST]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPathReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Close(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Close: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Edit godoc
// @Summary     Edit a document
// @Description Replaces the text between from and to in an open buffer. Positions are zero-based.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body editReq true "Range replacement"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/documents/edit [POST]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Edit(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// SetContent godoc
// @Summary     Replace document content
// @Description Replaces the whole text of an open buffer.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body setContentReq true "New content"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/documents/content [PUT]
func (h *handler) SetContent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetContentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetContent(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SetContent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Save godoc
// @Summary     Save a document
// @Description Writes an open buffer back to the vault.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body pathReq true "Document path"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/save [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPathReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Save(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Sweep godoc
// @Summary     Sweep the vault
// @Description Removes checked tasks from every document carrying the marker.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       dry_run query bool false "Report without writing"
// @Success     200 {object} sweepResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/sweep [POST]
func (h *handler) Sweep(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSweepReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Sweep(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sweep: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSweepResp(output))
}
